package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/logger"
)

// ProjectileSystem advances every projectile and deactivates those that left
// walkable terrain.
type ProjectileSystem struct {
	roster *Roster
}

func NewProjectileSystem(roster *Roster) *ProjectileSystem {
	return &ProjectileSystem{roster: roster}
}

func (s *ProjectileSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}

	lvl, ok := levelOf(w)
	if !ok {
		return
	}

	for _, e := range s.roster.Projectiles {
		p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
		if !ok {
			continue
		}
		p.Advance(dt)
		if p.Active && !lvl.grid.IsWalkable(p.Pos.X, p.Pos.Y) {
			p.Active = false
		}
	}
}

// ProjectileHitSystem lets each active projectile hit at most one enemy: the
// first living one in roster order whose bounds overlap it. Inactive
// projectiles are destroyed afterwards.
type ProjectileHitSystem struct {
	roster *Roster
	combat *Combat
	log    logrus.FieldLogger
}

func NewProjectileHitSystem(roster *Roster, combat *Combat, log logrus.FieldLogger) *ProjectileHitSystem {
	return &ProjectileHitSystem{roster: roster, combat: combat, log: logger.Or(log)}
}

func (s *ProjectileHitSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}

	for _, pe := range s.roster.Projectiles {
		p, ok := ecs.Get(w, pe, component.ProjectileComponent.Kind())
		if !ok || !p.Active {
			continue
		}
		bounds := p.Bounds()
		for _, e := range s.roster.Enemies {
			target, ok := enemyOf(w, e)
			if !ok || !target.living() || !bounds.Intersects(target.actor.Bounds()) {
				continue
			}
			s.combat.DamageEnemy(w, e, p.Damage, pe)
			p.Active = false
			emit(w, EventProjectileHit, e, DamageData{Source: pe, Amount: p.Damage, Remaining: target.health.Current})
			s.log.WithFields(logrus.Fields{
				"projectile": pe.String(),
				"entity":     e.String(),
			}).Debug("projectile hit")
			break
		}
	}

	kept := s.roster.Projectiles[:0]
	for _, pe := range s.roster.Projectiles {
		p, ok := ecs.Get(w, pe, component.ProjectileComponent.Kind())
		if ok && p.Active {
			kept = append(kept, pe)
			continue
		}
		ecs.DestroyEntity(w, pe)
	}
	clear(s.roster.Projectiles[len(kept):])
	s.roster.Projectiles = kept
}
