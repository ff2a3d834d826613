package system

import (
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/zompocalypse/common"
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/ecs/entity"
	"github.com/milk9111/zompocalypse/logger"
)

// Combat resolves weapon use and damage intake against one level's roster.
type Combat struct {
	roster *Roster
	log    logrus.FieldLogger
}

func NewCombat(roster *Roster, log logrus.FieldLogger) *Combat {
	return &Combat{roster: roster, log: logger.Or(log)}
}

// AttackResult reports what a single attack did.
type AttackResult struct {
	Hits       int
	Projectile ecs.Entity
}

// Attack uses weapon once from body toward target. It neither checks the
// cooldown nor spends ammo; both belong to the caller.
func (c *Combat) Attack(w *ecs.World, attacker ecs.Entity, body *component.Actor, weapon *component.Weapon, target cp.Vector) AttackResult {
	if c == nil || w == nil || body == nil || weapon == nil {
		return AttackResult{}
	}

	switch mode := weapon.Mode.(type) {
	case component.Melee:
		return c.melee(w, attacker, body, weapon.Damage, mode)
	case component.Ranged:
		return c.ranged(w, attacker, body, weapon.Damage, mode, target)
	default:
		return AttackResult{}
	}
}

// melee hits every living enemy whose top-left corner is closer than the
// reach to the attacker's top-left corner.
func (c *Combat) melee(w *ecs.World, attacker ecs.Entity, body *component.Actor, damage float64, mode component.Melee) AttackResult {
	var res AttackResult
	for _, e := range c.roster.Enemies {
		target, ok := enemyOf(w, e)
		if !ok || !target.living() {
			continue
		}
		if common.Dist(body.Pos, target.actor.Pos) >= mode.Reach {
			continue
		}
		c.DamageEnemy(w, e, damage, attacker)
		res.Hits++
	}
	return res
}

func (c *Combat) ranged(w *ecs.World, attacker ecs.Entity, body *component.Actor, damage float64, mode component.Ranged, target cp.Vector) AttackResult {
	origin := body.Center()
	dir, _ := common.Direction(origin, target)

	proj := component.NewProjectile(origin, dir, mode.ProjectileSpeed, damage, mode.ProjectileSize, mode.MaxRange)
	e, err := entity.NewProjectile(w, proj)
	if err != nil {
		c.log.WithError(err).Warn("combat: spawn projectile")
		return AttackResult{}
	}

	c.roster.Projectiles = append(c.roster.Projectiles, e)
	emit(w, EventProjectileFired, e, DamageData{Source: attacker, Amount: damage})
	return AttackResult{Projectile: e}
}

// DamageEnemy applies damage to a living enemy and reports whether it died.
// The killing blow switches the enemy to dead and starts its death sequence;
// later calls are no-ops.
func (c *Combat) DamageEnemy(w *ecs.World, e ecs.Entity, amount float64, source ecs.Entity) bool {
	target, ok := enemyOf(w, e)
	if !ok || !target.living() {
		return false
	}

	if !applyDamage(target.health, amount) {
		return false
	}

	target.enemy.State = component.EnemyDead
	target.actor.Stop()
	if path, ok := ecs.Get(w, e, component.PathComponent.Kind()); ok {
		path.Clear()
	}
	if death, ok := ecs.Get(w, e, component.DeathSequenceComponent.Kind()); ok {
		death.Start()
	}

	emit(w, EventEnemyKilled, e, DamageData{Source: source, Amount: amount})
	c.log.WithFields(logrus.Fields{
		"entity": e.String(),
		"kind":   target.enemy.Kind.String(),
	}).Debug("enemy killed")
	return true
}

// DamagePlayer applies damage unless the player is dead or invulnerable, and
// reports whether it landed. A lethal hit costs a life; while lives remain
// the player is restored in place and made invulnerable again.
func (c *Combat) DamagePlayer(w *ecs.World, e ecs.Entity, amount float64, source ecs.Entity) bool {
	health, okH := ecs.Get(w, e, component.HealthComponent.Kind())
	player, okP := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !okH || !okP || !health.IsAlive() || player.Invulnerable() || amount <= 0 {
		return false
	}

	killed := applyDamage(health, amount)
	player.InvulnerableTimer = player.InvulnerableFor
	emit(w, EventPlayerHit, e, DamageData{Source: source, Amount: amount, Remaining: health.Current})

	if killed {
		player.Lives--
		emit(w, EventPlayerDied, e, DamageData{Source: source, Amount: amount})
		c.log.WithField("lives", player.Lives).Info("player died")
		if player.Lives > 0 {
			health.Restore()
			player.InvulnerableTimer = player.InvulnerableFor
		}
	}
	return true
}

// applyDamage hits d and reports whether the hit was the lethal one.
func applyDamage(d component.Damageable, amount float64) bool {
	return d.IsAlive() && d.TakeDamage(amount)
}
