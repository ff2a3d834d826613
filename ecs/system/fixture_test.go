package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/ecs/entity"
	"github.com/milk9111/zompocalypse/prefabs"
)

type fixture struct {
	w      *ecs.World
	roster *Roster
	combat *Combat
	tuning *prefabs.Tuning
	player ecs.Entity
	level  ecs.Entity
}

func loadTuning(t *testing.T) prefabs.Tuning {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)
	return tuning
}

// newFixture builds a world on grid with the player's top-left at playerPos
// and wave 1 pending.
func newFixture(t *testing.T, grid *component.Grid, playerPos cp.Vector) *fixture {
	t.Helper()
	tuning := loadTuning(t)

	w := ecs.NewWorld()
	bounds := component.LevelBounds{
		Width:  float64(grid.Width) * grid.TileSize,
		Height: float64(grid.Height) * grid.TileSize,
	}
	level, err := entity.NewLevel(w, grid, bounds,
		component.Wave{Number: 1, Required: tuning.Waves.Quota(1)},
		component.Session{Phase: component.PhasePlaying, FinalWave: tuning.Game.FinalWave},
	)
	require.NoError(t, err)

	player, err := entity.NewPlayer(w, tuning.Player, playerPos)
	require.NoError(t, err)

	roster := &Roster{}
	return &fixture{
		w:      w,
		roster: roster,
		combat: NewCombat(roster, nil),
		tuning: &tuning,
		player: player,
		level:  level,
	}
}

func (f *fixture) zombie(t *testing.T, pos cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewZombie(f.w, f.tuning.Zombie, 1, pos)
	require.NoError(t, err)
	f.roster.Enemies = append(f.roster.Enemies, e)
	return e
}

func (f *fixture) boss(t *testing.T, pos cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewBoss(f.w, f.tuning.Boss, pos)
	require.NoError(t, err)
	f.roster.Enemies = append(f.roster.Enemies, e)
	return e
}

func (f *fixture) actor(t *testing.T, e ecs.Entity) *component.Actor {
	t.Helper()
	a, ok := ecs.Get(f.w, e, component.ActorComponent.Kind())
	require.True(t, ok)
	return a
}

func (f *fixture) health(t *testing.T, e ecs.Entity) *component.Health {
	t.Helper()
	h, ok := ecs.Get(f.w, e, component.HealthComponent.Kind())
	require.True(t, ok)
	return h
}

func (f *fixture) enemy(t *testing.T, e ecs.Entity) *component.Enemy {
	t.Helper()
	en, ok := ecs.Get(f.w, e, component.EnemyComponent.Kind())
	require.True(t, ok)
	return en
}

func (f *fixture) path(t *testing.T, e ecs.Entity) *component.Path {
	t.Helper()
	p, ok := ecs.Get(f.w, e, component.PathComponent.Kind())
	require.True(t, ok)
	return p
}

func (f *fixture) playerComp(t *testing.T) *component.Player {
	t.Helper()
	p, ok := ecs.Get(f.w, f.player, component.PlayerComponent.Kind())
	require.True(t, ok)
	return p
}

func (f *fixture) intent(t *testing.T) *component.Intent {
	t.Helper()
	in, ok := ecs.Get(f.w, f.player, component.IntentComponent.Kind())
	require.True(t, ok)
	return in
}

func (f *fixture) wave(t *testing.T) *component.Wave {
	t.Helper()
	wave, ok := ecs.Get(f.w, f.level, component.WaveComponent.Kind())
	require.True(t, ok)
	return wave
}

func (f *fixture) finishDeaths(t *testing.T) {
	t.Helper()
	for _, e := range f.roster.Enemies {
		if d, ok := ecs.Get(f.w, e, component.DeathSequenceComponent.Kind()); ok && d.Started {
			d.Finished = true
		}
	}
}

func countEvents(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, evt := range events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}
