package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/prefabs"
)

type countingSystem struct {
	calls  int
	lastDT float64
}

func (s *countingSystem) Update(_ *ecs.World, dt float64) {
	s.calls++
	s.lastDT = dt
}

func newTestLevel(t *testing.T, opts ...LevelOption) *Level {
	t.Helper()
	l, err := NewLevel(openGrid(40, 23), loadTuning(t), opts...)
	require.NoError(t, err)
	return l
}

func levelWave(t *testing.T, l *Level) *component.Wave {
	t.Helper()
	_, wave, ok := ecs.First(l.World(), component.WaveComponent.Kind())
	require.True(t, ok)
	return wave
}

func levelPlayer(t *testing.T, l *Level) *component.Player {
	t.Helper()
	p, ok := ecs.Get(l.World(), l.Player(), component.PlayerComponent.Kind())
	require.True(t, ok)
	return p
}

func hasEvent(events []ecs.Event, typ ecs.EventType) bool {
	return countEvents(events, typ) > 0
}

func TestNewLevel(t *testing.T) {
	l := newTestLevel(t)

	body, ok := ecs.Get(l.World(), l.Player(), component.ActorComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 640, Y: 360}, body.Pos)

	assert.Equal(t, Summary{
		Wave:       1,
		Required:   10,
		Phase:      component.PhasePlaying,
		Health:     100,
		MaxHealth:  100,
		Lives:      3,
		Stamina:    100,
		MaxStamina: 100,
		Weapon:     "Melee",
	}, l.Summary())
}

func TestNewLevelRejects(t *testing.T) {
	tuning := loadTuning(t)

	_, err := NewLevel(nil, tuning)
	assert.ErrorIs(t, err, component.ErrNilComponent)

	tuning.Game.MaxTickDelta = 0
	_, err = NewLevel(openGrid(40, 23), tuning)
	assert.ErrorIs(t, err, prefabs.ErrInvalidSpec)
}

func TestLevelUpdateClampsDelta(t *testing.T) {
	clock := &countingSystem{}
	l := newTestLevel(t, WithPresentation(clock))
	l.SetIntent(component.Intent{Right: true})

	l.Update(1.0)

	body, _ := ecs.Get(l.World(), l.Player(), component.ActorComponent.Kind())
	assert.InDelta(t, 640+60*0.033, body.Pos.X, 1e-9)
	assert.Equal(t, uint64(1), l.Ticks())
	assert.Equal(t, 1, clock.calls)
	assert.InDelta(t, 0.033, clock.lastDT, 1e-12)

	assert.Equal(t, 1, l.Wave().Spawned, "first zombie spawns on the first tick")
	assert.True(t, hasEvent(l.Events(), EventEnemySpawned))
}

func TestLevelGameOver(t *testing.T) {
	l := newTestLevel(t)
	levelPlayer(t, l).Lives = 0

	l.Update(tick)
	assert.Equal(t, component.PhaseGameOver, l.Phase())
	assert.True(t, l.Over())
	assert.True(t, hasEvent(l.Events(), EventGameOver))

	l.Update(tick)
	assert.Equal(t, uint64(1), l.Ticks(), "a finished level stops ticking")
}

func TestLevelWaveClearedRefillsAndAdvances(t *testing.T) {
	l := newTestLevel(t)
	wave := levelWave(t, l)
	wave.Spawned = wave.Required
	player := levelPlayer(t, l)
	player.Ammo["bullet"] = 0

	l.Update(tick)
	assert.Equal(t, component.PhaseWaveCleared, l.Phase())
	assert.True(t, hasEvent(l.Events(), EventWaveComplete))

	l.Update(tick)
	assert.Equal(t, component.PhasePlaying, l.Phase())
	assert.Equal(t, 2, wave.Number)
	assert.Equal(t, 15, wave.Required)
	assert.Equal(t, 10, player.Ammo["bullet"])
	assert.True(t, hasEvent(l.Events(), EventWaveStarted))
}

func TestLevelFinalWaveWins(t *testing.T) {
	l := newTestLevel(t)
	wave := levelWave(t, l)
	wave.Number = 5
	wave.Required = 1
	wave.Spawned = 1

	l.Update(tick)

	assert.Equal(t, component.PhaseWon, l.Phase())
	assert.True(t, l.Over())
	assert.True(t, hasEvent(l.Events(), EventWon))
}

func TestLevelApplyTuningWaitsForNextWave(t *testing.T) {
	l := newTestLevel(t)

	tuning := l.Tuning()
	tuning.Zombie.Health.Base = 40
	require.NoError(t, l.ApplyTuning(tuning))
	assert.InDelta(t, 20, l.Tuning().Zombie.Health.Base, 1e-9)

	l.StartNextWave()
	assert.InDelta(t, 40, l.Tuning().Zombie.Health.Base, 1e-9)
	assert.Equal(t, 2, l.Wave().Number)

	tuning.Waves.SpawnAttempts = 0
	assert.ErrorIs(t, l.ApplyTuning(tuning), prefabs.ErrInvalidSpec)
}

func TestLevelApplyTuningKeepsGameSettings(t *testing.T) {
	l := newTestLevel(t)
	before := l.Tuning().Game

	tuning := l.Tuning()
	tuning.Game.WorldWidth = before.WorldWidth * 2
	tuning.Game.TileSize = before.TileSize * 2
	tuning.Zombie.Health.Base = 40
	require.NoError(t, l.ApplyTuning(tuning))

	l.StartNextWave()
	assert.Equal(t, before, l.Tuning().Game)
	assert.InDelta(t, 40, l.Tuning().Zombie.Health.Base, 1e-9)
}

func TestLevelIsDeterministicForSeed(t *testing.T) {
	run := func(seed uint64) []cp.Vector {
		l := newTestLevel(t, WithSeed(seed))
		for range 200 {
			l.Update(tick)
		}
		var out []cp.Vector
		for _, e := range l.Roster().Enemies {
			body, ok := ecs.Get(l.World(), e, component.ActorComponent.Kind())
			require.True(t, ok)
			out = append(out, body.Pos)
		}
		return out
	}

	first := run(9)
	require.NotEmpty(t, first)
	assert.Equal(t, first, run(9))
}

func TestBoundsClampsPlayerAndEnemies(t *testing.T) {
	f := newFixture(t, openGrid(40, 22), cp.Vector{X: 700, Y: 100})
	bounds, ok := ecs.Get(f.w, f.level, component.LevelBoundsComponent.Kind())
	require.True(t, ok)
	bounds.Width = 640
	z := f.zombie(t, cp.Vector{X: 1300, Y: -20})

	NewBoundsSystem(f.roster).Update(f.w, tick)

	assert.Equal(t, cp.Vector{X: 608, Y: 100}, f.actor(t, f.player).Pos)
	assert.Equal(t, cp.Vector{X: 1248, Y: 0}, f.actor(t, z).Pos, "enemies are held to the grid")
}
