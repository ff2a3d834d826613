package component

import "github.com/jakecoffman/cp"

// Player holds the controller state of the player actor. Position, size and
// speed live on its Actor; hit points on its Health.
type Player struct {
	Lives int

	WalkSpeed float64
	RunSpeed  float64

	Stamina      float64
	MaxStamina   float64
	StaminaDrain float64
	StaminaRegen float64
	RegenDelay   float64
	RegenTimer   float64

	InvulnerableFor   float64
	InvulnerableTimer float64

	AttackTimer float64

	Weapons []*Weapon
	Current int
	Ammo    map[string]int
	Aim     cp.Vector
}

func (p *Player) CurrentWeapon() *Weapon {
	if p == nil || p.Current < 0 || p.Current >= len(p.Weapons) {
		return nil
	}
	return p.Weapons[p.Current]
}

// Select switches to the first weapon matching pick. It reports false when
// none matches and leaves the current weapon unchanged.
func (p *Player) Select(pick func(*Weapon) bool) bool {
	for i, w := range p.Weapons {
		if pick(w) {
			p.Current = i
			return true
		}
	}
	return false
}

func (p *Player) Invulnerable() bool {
	return p != nil && p.InvulnerableTimer > 0
}

var PlayerComponent = NewComponent[Player]()
