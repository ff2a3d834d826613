package system

import (
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
)

// BoundsSystem clamps actors back inside the world. The player is held to the
// level bounds, enemies to the extent of the grid.
type BoundsSystem struct {
	roster *Roster
}

func NewBoundsSystem(roster *Roster) *BoundsSystem {
	return &BoundsSystem{roster: roster}
}

func (s *BoundsSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}

	lvl, ok := levelOf(w)
	if !ok {
		return
	}

	if ps, ok := playerOf(w); ok {
		clampBody(ps.actor, lvl.bounds)
	}

	gridBounds := &component.LevelBounds{
		Width:  float64(lvl.grid.Width) * lvl.grid.TileSize,
		Height: float64(lvl.grid.Height) * lvl.grid.TileSize,
	}
	for _, e := range s.roster.Enemies {
		actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
		if !ok {
			continue
		}
		clampBody(actor, gridBounds)
	}
}

func clampBody(m component.Movable, b *component.LevelBounds) {
	body := m.Body()
	body.Pos = b.Clamp(body.Pos, body.Width, body.Height)
}
