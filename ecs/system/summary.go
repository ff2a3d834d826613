package system

import (
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
)

// Summary is the read-only HUD snapshot of a level.
type Summary struct {
	Wave     int
	Spawned  int
	Required int
	Enemies  int
	Complete bool
	Phase    component.Phase

	Health     float64
	MaxHealth  float64
	Lives      int
	Stamina    float64
	MaxStamina float64
	Weapon     string
	Ammo       int
	Ranged     bool
}

func (l *Level) Summary() Summary {
	wave := l.Wave()
	s := Summary{
		Wave:     wave.Number,
		Spawned:  wave.Spawned,
		Required: wave.Required,
		Enemies:  len(l.roster.Enemies),
		Complete: wave.Complete,
		Phase:    l.Phase(),
	}

	if health, ok := ecs.Get(l.world, l.player, component.HealthComponent.Kind()); ok {
		s.Health = health.Current
		s.MaxHealth = health.Max
	}
	if p, ok := ecs.Get(l.world, l.player, component.PlayerComponent.Kind()); ok {
		s.Lives = p.Lives
		s.Stamina = p.Stamina
		s.MaxStamina = p.MaxStamina
		if weapon := p.CurrentWeapon(); weapon != nil {
			s.Weapon = weapon.Name
			if weapon.IsRanged() {
				s.Ranged = true
				s.Ammo = p.Ammo[weapon.AmmoType()]
			}
		}
	}
	return s
}
