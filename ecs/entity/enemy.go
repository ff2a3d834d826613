package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/prefabs"
)

// NewZombie builds a zombie scaled for wave with its top-left corner at pos.
func NewZombie(w *ecs.World, spec prefabs.ZombieSpec, wave int, pos cp.Vector) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{
		Pos:    pos,
		Width:  spec.Width,
		Height: spec.Height,
		Speed:  spec.Speed.At(wave),
	}); err != nil {
		return 0, fmt.Errorf("zombie: add actor: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), component.NewHealth(spec.Health.At(wave))); err != nil {
		return 0, fmt.Errorf("zombie: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Kind:           component.EnemyZombie,
		State:          component.EnemyIdle,
		Damage:         spec.Damage.At(wave),
		AttackCooldown: spec.AttackCooldown,
		DetectionRange: spec.DetectionRange,
		AttackRange:    spec.AttackRange,
		ArrivalRadius:  spec.ArrivalRadius,
	}); err != nil {
		return 0, fmt.Errorf("zombie: add enemy: %w", err)
	}

	if err := ecs.Add(w, entity, component.PathComponent.Kind(), &component.Path{
		RefreshInterval: spec.PathRefresh,
	}); err != nil {
		return 0, fmt.Errorf("zombie: add path: %w", err)
	}

	if err := ecs.Add(w, entity, component.DeathSequenceComponent.Kind(), &component.DeathSequence{}); err != nil {
		return 0, fmt.Errorf("zombie: add death sequence: %w", err)
	}

	return entity, nil
}

// NewBoss builds a boss with its top-left corner at pos. Bosses do not path
// find, so they carry no Path.
func NewBoss(w *ecs.World, spec prefabs.BossSpec, pos cp.Vector) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{
		Pos:    pos,
		Width:  spec.Width,
		Height: spec.Height,
		Speed:  spec.Speed,
	}); err != nil {
		return 0, fmt.Errorf("boss: add actor: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), component.NewHealth(spec.Health)); err != nil {
		return 0, fmt.Errorf("boss: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Kind:           component.EnemyBoss,
		State:          component.EnemyIdle,
		Damage:         spec.Damage,
		AttackCooldown: spec.AttackCooldown,
		AttackRange:    spec.AttackRange,
	}); err != nil {
		return 0, fmt.Errorf("boss: add enemy: %w", err)
	}

	if err := ecs.Add(w, entity, component.DeathSequenceComponent.Kind(), &component.DeathSequence{}); err != nil {
		return 0, fmt.Errorf("boss: add death sequence: %w", err)
	}

	return entity, nil
}
