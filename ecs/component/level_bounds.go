package component

import "github.com/jakecoffman/cp"

// LevelBounds stores the world-space size of the current level.
type LevelBounds struct {
	Width  float64
	Height float64
}

// Clamp keeps a w by h box anchored at pos inside the level.
func (b *LevelBounds) Clamp(pos cp.Vector, w, h float64) cp.Vector {
	if b == nil {
		return pos
	}
	pos.X = max(0, min(pos.X, b.Width-w))
	pos.Y = max(0, min(pos.Y, b.Height-h))
	return pos
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
