package entity

import (
	"fmt"

	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
)

// NewLevel builds the entity that carries level-wide state.
func NewLevel(w *ecs.World, grid *component.Grid, bounds component.LevelBounds, wave component.Wave, session component.Session) (ecs.Entity, error) {
	if grid == nil {
		return 0, fmt.Errorf("level: add grid: %w", component.ErrNilComponent)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.LevelTagComponent.Kind(), &component.LevelTag{}); err != nil {
		return 0, fmt.Errorf("level: add level tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.GridComponent.Kind(), grid); err != nil {
		return 0, fmt.Errorf("level: add grid: %w", err)
	}

	if err := ecs.Add(w, entity, component.LevelBoundsComponent.Kind(), &bounds); err != nil {
		return 0, fmt.Errorf("level: add bounds: %w", err)
	}

	if err := ecs.Add(w, entity, component.WaveComponent.Kind(), &wave); err != nil {
		return 0, fmt.Errorf("level: add wave: %w", err)
	}

	if err := ecs.Add(w, entity, component.SessionComponent.Kind(), &session); err != nil {
		return 0, fmt.Errorf("level: add session: %w", err)
	}

	return entity, nil
}
