package common

// Lerp blends a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp bounds v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
