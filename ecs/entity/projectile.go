package entity

import (
	"fmt"

	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
)

func NewProjectile(w *ecs.World, p *component.Projectile) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), p); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}
	return entity, nil
}
