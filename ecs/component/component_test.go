package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridWalkability(t *testing.T) {
	g := NewGrid(4, 3, 32)
	g.SetBlocked(Cell{X: 2, Y: 1}, true)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"open_cell", 40, 40, true},
		{"blocked_cell", 2*32 + 5, 32 + 5, false},
		{"negative_x", -1, 10, false},
		{"past_right_edge", 4 * 32, 10, false},
		{"past_bottom_edge", 10, 3 * 32, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.IsWalkable(tc.x, tc.y))
		})
	}
}

func TestGridEnsureBorders(t *testing.T) {
	g := NewGrid(5, 4, 32)
	g.EnsureBorders()

	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			border := x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1
			assert.Equal(t, border, g.Blocked(Cell{X: x, Y: y}), "cell %d,%d", x, y)
		}
	}
}

func TestGridClampAndCenter(t *testing.T) {
	g := NewGrid(3, 2, 32)
	assert.Equal(t, Cell{X: 2, Y: 0}, g.ClampCell(Cell{X: 9, Y: -4}))
	assert.Equal(t, cp.Vector{X: 48, Y: 16}, g.CellCenter(Cell{X: 1, Y: 0}))
	assert.Equal(t, Cell{X: -1, Y: 0}, g.CellAt(-0.5, 31.9))
}

func TestHealthTakeDamage(t *testing.T) {
	h := NewHealth(20)

	assert.False(t, h.TakeDamage(15))
	assert.InDelta(t, 5, h.Current, 1e-9)

	assert.True(t, h.TakeDamage(15), "lethal hit reports the kill")
	assert.Zero(t, h.Current, "health clamps at zero")
	assert.False(t, h.IsAlive())

	assert.False(t, h.TakeDamage(15), "damage after death is a no-op")
	assert.Zero(t, h.Current)

	h.Restore()
	assert.True(t, h.IsAlive())
	assert.InDelta(t, 20, h.Current, 1e-9)
}

func TestProjectileRangeBoundary(t *testing.T) {
	p := NewProjectile(cp.Vector{}, cp.Vector{X: 4, Y: 0}, 100, 20, 8, 200)
	require.Equal(t, cp.Vector{X: 1, Y: 0}, p.Dir)

	p.Advance(1)
	p.Advance(1)
	assert.InDelta(t, 200, p.Traveled, 1e-9)
	assert.True(t, p.Active, "travelling exactly the max range keeps the shot alive")

	p.Advance(0.01)
	assert.False(t, p.Active)

	pos := p.Pos
	p.Advance(1)
	assert.Equal(t, pos, p.Pos, "inactive projectiles do not move")
}

func TestProjectileZeroDirection(t *testing.T) {
	p := NewProjectile(cp.Vector{X: 5, Y: 5}, cp.Vector{}, 500, 20, 8, 2000)
	p.Advance(1)
	assert.Equal(t, cp.Vector{X: 5, Y: 5}, p.Pos)
	assert.True(t, p.Active)
}

func TestPathCursor(t *testing.T) {
	var p Path
	assert.True(t, p.Empty())
	_, ok := p.Next()
	assert.False(t, ok)

	p.Set([]Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
	c, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, Cell{}, c)
	assert.True(t, p.Advance())
	assert.False(t, p.Advance())

	p.Clear()
	assert.True(t, p.Empty())
	assert.Zero(t, p.Cursor)
}

func TestPlayerSelectWeapon(t *testing.T) {
	melee := &Weapon{Name: "Melee", Mode: Melee{Reach: 50}}
	gun := &Weapon{Name: "Gun", Mode: Ranged{AmmoType: "bullet", AmmoPerShot: 1}}
	p := &Player{Weapons: []*Weapon{melee, gun}}

	assert.Same(t, melee, p.CurrentWeapon())
	assert.True(t, p.Select((*Weapon).IsRanged))
	assert.Same(t, gun, p.CurrentWeapon())
	assert.Equal(t, "bullet", p.CurrentWeapon().AmmoType())

	p.Weapons = p.Weapons[1:]
	p.Current = 0
	assert.False(t, p.Select((*Weapon).IsMelee))
	assert.Same(t, gun, p.CurrentWeapon())
}

func TestLevelBoundsClamp(t *testing.T) {
	b := &LevelBounds{Width: 100, Height: 50}
	assert.Equal(t, cp.Vector{X: 0, Y: 18}, b.Clamp(cp.Vector{X: -3, Y: 40}, 32, 32))
	assert.Equal(t, cp.Vector{X: 68, Y: 0}, b.Clamp(cp.Vector{X: 90, Y: -1}, 32, 32))
}

func TestComponentHandlesAreDistinct(t *testing.T) {
	var zero ComponentKind[Health]
	assert.False(t, zero.Valid())

	health := HealthComponent.Kind()
	actor := ActorComponent.Kind()
	assert.True(t, health.Valid())
	assert.True(t, actor.Valid())
	assert.NotEqual(t, health.ID(), actor.ID())

	fresh := NewComponent[Health]()
	assert.NotEqual(t, health.ID(), fresh.Kind().ID())
}
