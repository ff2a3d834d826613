package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/zompocalypse/ecs/component"
)

func TestPlayerMovement(t *testing.T) {
	walled := openGrid(40, 22)
	for y := 0; y < walled.Height; y++ {
		walled.SetBlocked(component.Cell{X: 10, Y: y}, true)
	}

	tests := []struct {
		name   string
		grid   *component.Grid
		start  cp.Vector
		intent component.Intent
		want   cp.Vector
	}{
		{"walk_right", openGrid(40, 22), cp.Vector{X: 300, Y: 300}, component.Intent{Right: true}, cp.Vector{X: 330, Y: 300}},
		{"walk_up_left", openGrid(40, 22), cp.Vector{X: 300, Y: 300}, component.Intent{Up: true, Left: true}, cp.Vector{X: 270, Y: 270}},
		{"sprint_down", openGrid(40, 22), cp.Vector{X: 300, Y: 300}, component.Intent{Down: true, Sprint: true}, cp.Vector{X: 300, Y: 400}},
		{"wall_blocks_x_only", walled, cp.Vector{X: 280, Y: 300}, component.Intent{Right: true, Down: true}, cp.Vector{X: 280, Y: 330}},
		{"off_grid_is_blocked", openGrid(40, 22), cp.Vector{X: 5, Y: 5}, component.Intent{Left: true, Up: true}, cp.Vector{X: 5, Y: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.grid, tc.start)
			*f.intent(t) = tc.intent

			NewPlayerSystem(f.combat, nil).Update(f.w, 0.5)

			pos := f.actor(t, f.player).Pos
			assert.InDelta(t, tc.want.X, pos.X, 1e-9)
			assert.InDelta(t, tc.want.Y, pos.Y, 1e-9)
		})
	}
}

func TestPlayerStamina(t *testing.T) {
	f := newFixture(t, openGrid(40, 22), cp.Vector{X: 300, Y: 300})
	players := NewPlayerSystem(f.combat, nil)
	p := f.playerComp(t)
	in := f.intent(t)

	*in = component.Intent{Right: true, Sprint: true}
	players.Update(f.w, 0.5)
	assert.InDelta(t, 85, p.Stamina, 1e-9)
	assert.InDelta(t, 1, p.RegenTimer, 1e-9)

	*in = component.Intent{Right: true}
	players.Update(f.w, 0.5)
	players.Update(f.w, 0.5)
	assert.InDelta(t, 85, p.Stamina, 1e-9, "no regen during the delay")

	players.Update(f.w, 0.5)
	assert.InDelta(t, 95, p.Stamina, 1e-9)
	players.Update(f.w, 0.5)
	assert.InDelta(t, 100, p.Stamina, 1e-9, "capped at max")

	p.Stamina = 0
	*in = component.Intent{Right: true, Sprint: true}
	players.Update(f.w, 0.5)
	assert.InDelta(t, 60, f.actor(t, f.player).Speed, 1e-9, "exhausted players walk")
}

func TestPlayerMeleeCooldown(t *testing.T) {
	f := newFixture(t, openGrid(40, 22), cp.Vector{X: 300, Y: 300})
	players := NewPlayerSystem(f.combat, nil)
	z := f.zombie(t, cp.Vector{X: 320, Y: 300})
	*f.intent(t) = component.Intent{Attack: true}

	players.Update(f.w, tick)
	assert.InDelta(t, 5, f.health(t, z).Current, 1e-9)
	assert.InDelta(t, 0.5-tick, f.playerComp(t).AttackTimer, 1e-9)

	players.Update(f.w, tick)
	assert.InDelta(t, 5, f.health(t, z).Current, 1e-9, "cooling down")

	f.playerComp(t).AttackTimer = 0
	players.Update(f.w, tick)
	assert.Equal(t, component.EnemyDead, f.enemy(t, z).State)
}

func TestPlayerRangedNeedsAmmo(t *testing.T) {
	f := newFixture(t, openGrid(40, 22), cp.Vector{X: 300, Y: 300})
	players := NewPlayerSystem(f.combat, nil)
	p := f.playerComp(t)
	p.Ammo["bullet"] = 1
	*f.intent(t) = component.Intent{SwitchRanged: true, Attack: true, Aim: cp.Vector{X: 600, Y: 316}}

	players.Update(f.w, tick)
	require.Len(t, f.roster.Projectiles, 1)
	assert.Equal(t, "Gun", p.CurrentWeapon().Name)
	assert.Zero(t, p.Ammo["bullet"])
	assert.True(t, f.actor(t, f.player).FacingRight)

	p.AttackTimer = 0
	players.Update(f.w, tick)
	assert.Len(t, f.roster.Projectiles, 1, "empty magazine")
	assert.Zero(t, p.Ammo["bullet"])

	*f.intent(t) = component.Intent{SwitchMelee: true}
	players.Update(f.w, tick)
	assert.Equal(t, "Melee", p.CurrentWeapon().Name)
}

func TestPlayerTimers(t *testing.T) {
	f := newFixture(t, openGrid(40, 22), cp.Vector{X: 300, Y: 300})
	p := f.playerComp(t)
	p.InvulnerableTimer = 0.1

	NewPlayerSystem(f.combat, nil).Update(f.w, 0.5)

	assert.Zero(t, p.InvulnerableTimer)
	assert.False(t, p.Invulnerable())
	assert.InDelta(t, -0.5, p.AttackTimer, 1e-9)
}

func TestDeadPlayerDoesNotMove(t *testing.T) {
	f := newFixture(t, openGrid(40, 22), cp.Vector{X: 300, Y: 300})
	f.health(t, f.player).Current = 0
	*f.intent(t) = component.Intent{Right: true}

	NewPlayerSystem(f.combat, nil).Update(f.w, 0.5)

	body := f.actor(t, f.player)
	assert.Equal(t, cp.Vector{X: 300, Y: 300}, body.Pos)
	assert.Equal(t, cp.Vector{}, body.Vel)
}
