package prefabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuningEmbedded(t *testing.T) {
	tuning, err := LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 32.0, tuning.Game.TileSize)
	assert.Equal(t, 5, tuning.Game.FinalWave)
	assert.Equal(t, 3, tuning.Player.Lives)
	assert.Equal(t, 10, tuning.Player.Ammo["bullet"])
	require.Len(t, tuning.Player.Weapons, 2)
	assert.Equal(t, WeaponKindRanged, tuning.Player.Weapons[1].Kind)
	assert.Equal(t, 1000.0, tuning.Boss.Health)
	assert.Equal(t, 5, tuning.Waves.BossWave)
}

func TestScaledAt(t *testing.T) {
	hp := Scaled{Base: 20, PerWave: 5}
	tests := []struct {
		wave int
		want float64
	}{
		{0, 20},
		{1, 20},
		{2, 25},
		{4, 35},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, hp.At(tc.wave), "wave %d", tc.wave)
	}
}

func TestWaveQuota(t *testing.T) {
	spec := WaveSpec{BaseQuota: 10, QuotaPerWave: 5, BossWave: 5}
	assert.Equal(t, 10, spec.Quota(1))
	assert.Equal(t, 15, spec.Quota(2))
	assert.Equal(t, 25, spec.Quota(4))
	assert.Equal(t, 1, spec.Quota(5))
	assert.Equal(t, 35, spec.Quota(6))
}

func TestValidateRejects(t *testing.T) {
	base, err := LoadTuning()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero_tile", func(t *Tuning) { t.Game.TileSize = 0 }},
		{"no_lives", func(t *Tuning) { t.Player.Lives = 0 }},
		{"no_weapons", func(t *Tuning) { t.Player.Weapons = nil }},
		{"bad_kind", func(t *Tuning) { t.Player.Weapons = []WeaponSpec{{Name: "Bow", Kind: "bow"}} }},
		{"ranged_without_ammo", func(t *Tuning) {
			t.Player.Weapons = []WeaponSpec{{Name: "Gun", Kind: WeaponKindRanged}}
		}},
		{"no_spawn_attempts", func(t *Tuning) { t.Waves.SpawnAttempts = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tuning := base
			tuning.Player.Weapons = append([]WeaponSpec(nil), base.Player.Weapons...)
			tc.mutate(&tuning)
			assert.ErrorIs(t, tuning.Validate(), ErrInvalidSpec)
		})
	}
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "zombie.yaml", cleanPrefabPath("prefabs/zombie.yaml"))
	assert.Equal(t, "zombie.yaml", cleanPrefabPath("zombie.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))
}

func TestIsSpecFile(t *testing.T) {
	assert.True(t, isSpecFile("prefabs/boss.yaml"))
	assert.True(t, isSpecFile("x.YML"))
	assert.False(t, isSpecFile("map1.txt"))
}
