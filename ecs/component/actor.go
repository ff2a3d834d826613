package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/zompocalypse/common"
)

// Actor is the body shared by the player, zombies and bosses. Pos is the
// top-left corner of the actor's bounds.
type Actor struct {
	Pos         cp.Vector
	Vel         cp.Vector
	Width       float64
	Height      float64
	Speed       float64
	FacingRight bool
}

func (a *Actor) Bounds() common.Rect {
	return common.Rect{X: a.Pos.X, Y: a.Pos.Y, Width: a.Width, Height: a.Height}
}

func (a *Actor) Center() cp.Vector {
	x, y := a.Bounds().Center()
	return cp.Vector{X: x, Y: y}
}

// Body lets components embedding an actor satisfy Movable.
func (a *Actor) Body() *Actor {
	return a
}

// Stop zeroes the velocity.
func (a *Actor) Stop() {
	a.Vel = cp.Vector{}
}

// Movable is anything that owns an actor body.
type Movable interface {
	Body() *Actor
}

var ActorComponent = NewComponent[Actor]()
