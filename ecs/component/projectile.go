package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/zompocalypse/common"
)

// Projectile is a straight-line shot. Pos is the top-left of a Size square.
type Projectile struct {
	Pos      cp.Vector
	Dir      cp.Vector
	Speed    float64
	Damage   float64
	Size     float64
	Traveled float64
	MaxRange float64
	Active   bool
}

// NewProjectile normalizes dir; a zero direction leaves the shot stationary.
func NewProjectile(origin, dir cp.Vector, speed, damage, size, maxRange float64) *Projectile {
	return &Projectile{
		Pos:      origin,
		Dir:      common.Unit(dir),
		Speed:    speed,
		Damage:   damage,
		Size:     size,
		MaxRange: maxRange,
		Active:   true,
	}
}

// Advance moves the projectile and deactivates it once it has travelled
// strictly farther than MaxRange.
func (p *Projectile) Advance(dt float64) {
	if p == nil || !p.Active {
		return
	}
	step := p.Dir.Mult(p.Speed * dt)
	p.Pos = p.Pos.Add(step)
	p.Traveled += step.Length()
	if p.Traveled > p.MaxRange {
		p.Active = false
	}
}

func (p *Projectile) Bounds() common.Rect {
	return common.Rect{X: p.Pos.X, Y: p.Pos.Y, Width: p.Size, Height: p.Size}
}

var ProjectileComponent = NewComponent[Projectile]()
