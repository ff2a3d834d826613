package system

import (
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
)

// Roster is the ordered list of live enemies and projectiles, in spawn order.
// Only the systems of one Level mutate it.
type Roster struct {
	Enemies     []ecs.Entity
	Projectiles []ecs.Entity
}

type levelState struct {
	entity  ecs.Entity
	grid    *component.Grid
	bounds  *component.LevelBounds
	wave    *component.Wave
	session *component.Session
}

func levelOf(w *ecs.World) (levelState, bool) {
	e, ok := w.First(component.LevelTagComponent.Kind())
	if !ok {
		return levelState{}, false
	}
	var s levelState
	s.entity = e
	s.grid, ok = ecs.Get(w, e, component.GridComponent.Kind())
	if !ok {
		return levelState{}, false
	}
	s.bounds, ok = ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	if !ok {
		return levelState{}, false
	}
	s.wave, _ = ecs.Get(w, e, component.WaveComponent.Kind())
	s.session, _ = ecs.Get(w, e, component.SessionComponent.Kind())
	return s, true
}

type playerState struct {
	entity ecs.Entity
	actor  *component.Actor
	health *component.Health
	player *component.Player
	intent *component.Intent
}

func playerOf(w *ecs.World) (playerState, bool) {
	e, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return playerState{}, false
	}
	s := playerState{entity: e}
	var okA, okH, okP bool
	s.actor, okA = ecs.Get(w, e, component.ActorComponent.Kind())
	s.health, okH = ecs.Get(w, e, component.HealthComponent.Kind())
	s.player, okP = ecs.Get(w, e, component.PlayerComponent.Kind())
	if !okA || !okH || !okP {
		return playerState{}, false
	}
	s.intent, _ = ecs.Get(w, e, component.IntentComponent.Kind())
	return s, true
}

type enemyState struct {
	entity ecs.Entity
	enemy  *component.Enemy
	actor  *component.Actor
	health *component.Health
}

func enemyOf(w *ecs.World, e ecs.Entity) (enemyState, bool) {
	s := enemyState{entity: e}
	var okE, okA, okH bool
	s.enemy, okE = ecs.Get(w, e, component.EnemyComponent.Kind())
	s.actor, okA = ecs.Get(w, e, component.ActorComponent.Kind())
	s.health, okH = ecs.Get(w, e, component.HealthComponent.Kind())
	return s, okE && okA && okH
}

// living reports whether the enemy can still be hit.
func (s enemyState) living() bool {
	return !s.enemy.Dead() && s.health.IsAlive()
}
