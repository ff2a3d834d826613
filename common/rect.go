package common

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports strict overlap; touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
