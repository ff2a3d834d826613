package common

import "github.com/jakecoffman/cp"

// Direction returns the unit vector pointing from a to b and the distance
// between them. Coincident points yield a zero vector.
func Direction(from, to cp.Vector) (cp.Vector, float64) {
	d := to.Sub(from)
	length := d.Length()
	if length == 0 {
		return cp.Vector{}, 0
	}
	return d.Mult(1 / length), length
}

// Unit normalizes v, leaving the zero vector untouched.
func Unit(v cp.Vector) cp.Vector {
	length := v.Length()
	if length == 0 {
		return cp.Vector{}
	}
	return v.Mult(1 / length)
}

// Dist is the euclidean distance between two points.
func Dist(a, b cp.Vector) float64 {
	return b.Sub(a).Length()
}
