package entity

import (
	"fmt"
	"maps"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/prefabs"
)

// NewPlayer builds the player with its top-left corner at pos.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, pos cp.Vector) (ecs.Entity, error) {
	weapons := make([]*component.Weapon, 0, len(spec.Weapons))
	current := 0
	for _, ws := range spec.Weapons {
		weapon, err := NewWeapon(ws)
		if err != nil {
			return 0, fmt.Errorf("player: %w", err)
		}
		if ws.Name == spec.StartWeapon {
			current = len(weapons)
		}
		weapons = append(weapons, weapon)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{
		Pos:         pos,
		Width:       spec.Width,
		Height:      spec.Height,
		Speed:       spec.WalkSpeed,
		FacingRight: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add actor: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), component.NewHealth(spec.Health)); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	ammo := make(map[string]int, len(spec.Ammo))
	maps.Copy(ammo, spec.Ammo)

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		Lives:           spec.Lives,
		WalkSpeed:       spec.WalkSpeed,
		RunSpeed:        spec.RunSpeed,
		Stamina:         spec.Stamina,
		MaxStamina:      spec.Stamina,
		StaminaDrain:    spec.StaminaDrain,
		StaminaRegen:    spec.StaminaRegen,
		RegenDelay:      spec.RegenDelay,
		InvulnerableFor: spec.Invulnerability,
		Weapons:         weapons,
		Current:         current,
		Ammo:            ammo,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	if err := ecs.Add(w, entity, component.IntentComponent.Kind(), &component.Intent{}); err != nil {
		return 0, fmt.Errorf("player: add intent: %w", err)
	}

	return entity, nil
}
