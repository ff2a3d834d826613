package system

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/zompocalypse/common"
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
)

var center = cp.Vector{X: 640, Y: 360}

func (f *fixture) waves(seed uint64) *WaveSystem {
	return NewWaveSystem(f.roster, f.tuning, rand.New(rand.NewPCG(seed, seed)), nil)
}

func TestWaveCompletesOnceQuotaSpawnedAndCleared(t *testing.T) {
	f := newFixture(t, openGrid(40, 22), center)
	waves := f.waves(7)
	enemies := NewEnemySystem(f.roster, f.combat, nil)
	wave := f.wave(t)
	require.Equal(t, 10, wave.Required)

	for range 10 {
		waves.Update(f.w, 2.0)
	}
	assert.Equal(t, 10, wave.Spawned)
	assert.Len(t, f.roster.Enemies, 10)

	waves.Update(f.w, 2.0)
	assert.Equal(t, 10, wave.Spawned, "never spawns past the quota")
	assert.False(t, wave.Complete, "enemies are still alive")

	for _, e := range f.roster.Enemies {
		require.True(t, f.combat.DamageEnemy(f.w, e, 1000, f.player))
	}
	enemies.Update(f.w, tick)
	waves.Update(f.w, tick)
	assert.False(t, wave.Complete, "dead enemies stay on the roster until their death sequence ends")

	f.finishDeaths(t)
	enemies.Update(f.w, tick)
	require.Empty(t, f.roster.Enemies)
	waves.Update(f.w, tick)
	assert.True(t, wave.Complete)
	assert.Equal(t, 1, countEvents(f.w.Events().Drain(), EventWaveComplete))

	waves.StartNextWave(f.w)
	assert.Equal(t, 2, wave.Number)
	assert.Equal(t, 15, wave.Required)
	assert.Zero(t, wave.Spawned)
	assert.False(t, wave.Complete)
	assert.Equal(t, 1, countEvents(f.w.Events().Drain(), EventWaveStarted))
}

func TestSpawnKeepsSafeDistance(t *testing.T) {
	g := openGrid(40, 22)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < 20; x++ {
			g.SetBlocked(component.Cell{X: x, Y: y}, true)
		}
	}
	f := newFixture(t, g, center)
	waves := f.waves(11)

	for range 10 {
		e, ok := waves.Spawn(f.w)
		require.True(t, ok)
		pos := f.actor(t, e).Pos
		assert.True(t, g.IsWalkable(pos.X, pos.Y), "spawned on blocked terrain at %v", pos)
		assert.GreaterOrEqual(t, common.Dist(pos, center), 200.0)
	}

	_, ok := waves.Spawn(f.w)
	assert.False(t, ok, "quota reached")
}

func TestSpawnFallsBackWhenNoSafePointExists(t *testing.T) {
	g := openGrid(10, 10)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.SetBlocked(component.Cell{X: x, Y: y}, true)
		}
	}
	f := newFixture(t, g, cp.Vector{X: 100, Y: 100})

	_, ok := f.waves(3).Spawn(f.w)
	assert.True(t, ok)
	assert.Equal(t, 1, f.wave(t).Spawned)
	assert.Len(t, f.roster.Enemies, 1)
}

func TestBossWaveSpawnsSingleBoss(t *testing.T) {
	f := newFixture(t, openGrid(40, 22), center)
	waves := f.waves(5)
	wave := f.wave(t)
	wave.Number = 4

	waves.StartNextWave(f.w)
	require.Equal(t, 5, wave.Number)
	assert.Equal(t, 1, wave.Required)

	e, ok := waves.Spawn(f.w)
	require.True(t, ok)
	assert.Equal(t, component.EnemyBoss, f.enemy(t, e).Kind)
	assert.InDelta(t, 1000, f.health(t, e).Current, 1e-9)
	assert.False(t, ecs.Has(f.w, e, component.PathComponent.Kind()))

	_, ok = waves.Spawn(f.w)
	assert.False(t, ok)
	assert.Len(t, f.roster.Enemies, 1)
	assert.Equal(t, 1, countEvents(f.w.Events().Drain(), EventBossSpawned))
}

func TestZombiesScaleWithWave(t *testing.T) {
	tests := []struct {
		wave     int
		health   float64
		speed    float64
		damage   float64
		required int
	}{
		{wave: 1, health: 20, speed: 50, damage: 10, required: 10},
		{wave: 2, health: 25, speed: 60, damage: 12, required: 15},
		{wave: 4, health: 35, speed: 80, damage: 16, required: 25},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("wave_%d", tc.wave), func(t *testing.T) {
			f := newFixture(t, openGrid(40, 22), center)
			waves := f.waves(1)
			f.wave(t).Number = tc.wave - 1
			waves.StartNextWave(f.w)
			assert.Equal(t, tc.required, f.wave(t).Required)

			e, ok := waves.Spawn(f.w)
			require.True(t, ok)
			assert.InDelta(t, tc.health, f.health(t, e).Max, 1e-9)
			assert.InDelta(t, tc.speed, f.actor(t, e).Speed, 1e-9)
			assert.InDelta(t, tc.damage, f.enemy(t, e).Damage, 1e-9)
		})
	}
}

func TestSpawnIsDeterministicForSeed(t *testing.T) {
	positions := func(seed uint64) []cp.Vector {
		f := newFixture(t, openGrid(40, 22), center)
		waves := f.waves(seed)
		var out []cp.Vector
		for range 5 {
			e, ok := waves.Spawn(f.w)
			require.True(t, ok)
			out = append(out, f.actor(t, e).Pos)
		}
		return out
	}

	assert.Equal(t, positions(42), positions(42))
	assert.NotEqual(t, positions(42), positions(43))
}
