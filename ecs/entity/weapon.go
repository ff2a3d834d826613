package entity

import (
	"fmt"

	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/prefabs"
)

func NewWeapon(spec prefabs.WeaponSpec) (*component.Weapon, error) {
	weapon := &component.Weapon{
		Name:     spec.Name,
		Damage:   spec.Damage,
		Cooldown: spec.Cooldown,
	}

	switch spec.Kind {
	case prefabs.WeaponKindMelee:
		weapon.Mode = component.Melee{Reach: spec.Reach}
	case prefabs.WeaponKindRanged:
		weapon.Mode = component.Ranged{
			AmmoType:        spec.AmmoType,
			AmmoPerShot:     spec.AmmoPerShot,
			ProjectileSpeed: spec.ProjectileSpeed,
			ProjectileSize:  spec.ProjectileSize,
			MaxRange:        spec.MaxRange,
		}
	default:
		return nil, fmt.Errorf("weapon %q: unknown kind %q: %w", spec.Name, spec.Kind, prefabs.ErrInvalidSpec)
	}

	return weapon, nil
}
