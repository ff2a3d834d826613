package system

import (
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/zompocalypse/common"
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/logger"
)

// AIContext is everything one enemy's decision may read or change.
type AIContext struct {
	World  *ecs.World
	Entity ecs.Entity
	Enemy  *component.Enemy
	Body   *component.Actor
	Path   *component.Path
	Grid   *component.Grid

	Target       ecs.Entity
	TargetBody   *component.Actor
	TargetHealth *component.Health

	Combat *Combat
	DT     float64
	Log    logrus.FieldLogger
}

// AttackAI is a per-kind decision function run once per tick for each living
// enemy.
type AttackAI interface {
	Decide(ctx *AIContext)
}

// ZombieAI chases the player along A* paths and bites at close range.
type ZombieAI struct{}

// BossAI walks straight at the player and attacks inside its larger range.
type BossAI struct{}

var (
	zombieAI AttackAI = ZombieAI{}
	bossAI   AttackAI = BossAI{}
)

func aiFor(kind component.EnemyKind) AttackAI {
	switch kind {
	case component.EnemyBoss:
		return bossAI
	default:
		return zombieAI
	}
}

func (ZombieAI) Decide(ctx *AIContext) {
	enemy := ctx.Enemy
	body := ctx.Body
	path := ctx.Path

	dist := common.Dist(body.Pos, ctx.TargetBody.Pos)

	if path != nil {
		path.RefreshTimer -= ctx.DT
	}

	if dist >= enemy.DetectionRange || path == nil {
		enemy.State = component.EnemyIdle
		body.Stop()
		if path != nil {
			path.Clear()
		}
		return
	}

	if path.Empty() || path.RefreshTimer <= 0 {
		start := ctx.Grid.CellAt(body.Pos.X, body.Pos.Y)
		goal := ctx.Grid.CellAt(ctx.TargetBody.Pos.X, ctx.TargetBody.Pos.Y)
		path.Set(FindPath(start, goal, ctx.Grid))
		path.RefreshTimer = path.RefreshInterval
		logger.Or(ctx.Log).WithFields(logrus.Fields{
			"entity": ctx.Entity.String(),
			"steps":  len(path.Cells),
		}).Debug("path computed")
	}

	if waypoint, ok := path.Next(); ok {
		dir, d := common.Direction(body.Pos, ctx.Grid.CellCenter(waypoint))
		if d < enemy.ArrivalRadius {
			if !path.Advance() {
				path.Clear()
				enemy.State = component.EnemyIdle
			}
		} else {
			steer(ctx, dir)
		}
	} else {
		enemy.State = component.EnemyIdle
		body.Stop()
	}

	if dist < enemy.AttackRange {
		engage(ctx, ctx.TargetBody.Pos.X > body.Pos.X)
	}
}

// steer tries the full velocity first, then each axis alone. When every
// option leaves walkable ground the path is dropped.
func steer(ctx *AIContext, dir cp.Vector) {
	body := ctx.Body
	vel := dir.Mult(body.Speed)
	step := vel.Mult(ctx.DT)
	walkable := ctx.Grid.IsWalkable

	switch {
	case walkable(body.Pos.X+step.X, body.Pos.Y+step.Y):
		body.Vel = vel
	case walkable(body.Pos.X+step.X, body.Pos.Y):
		body.Vel = cp.Vector{X: vel.X}
	case walkable(body.Pos.X, body.Pos.Y+step.Y):
		body.Vel = cp.Vector{Y: vel.Y}
	default:
		ctx.Path.Clear()
		body.Stop()
		ctx.Enemy.State = component.EnemyIdle
		return
	}

	ctx.Enemy.State = component.EnemyMoving
	if body.Vel.X != 0 {
		body.FacingRight = body.Vel.X > 0
	}
}

func (BossAI) Decide(ctx *AIContext) {
	body := ctx.Body
	center := body.Center()
	targetCenter := ctx.TargetBody.Center()

	dir, dist := common.Direction(center, targetCenter)
	if dist < ctx.Enemy.AttackRange {
		engage(ctx, targetCenter.X > center.X)
		return
	}

	if dist > 0 {
		body.Vel = dir.Mult(body.Speed)
		body.FacingRight = body.Vel.X > 0
		ctx.Enemy.State = component.EnemyMoving
	}
}

// engage stops the enemy facing its target and strikes when the cooldown has
// run out.
func engage(ctx *AIContext, faceRight bool) {
	enemy := ctx.Enemy
	enemy.State = component.EnemyAttacking
	ctx.Body.Stop()
	ctx.Body.FacingRight = faceRight

	if enemy.AttackTimer > 0 {
		return
	}
	if ctx.TargetHealth.IsAlive() {
		ctx.Combat.DamagePlayer(ctx.World, ctx.Target, enemy.Damage, ctx.Entity)
	}
	enemy.AttackTimer = enemy.AttackCooldown
}

// EnemySystem runs each enemy's decision and physical update in roster order
// and drops enemies whose death sequence has finished.
type EnemySystem struct {
	roster *Roster
	combat *Combat
	log    logrus.FieldLogger
}

func NewEnemySystem(roster *Roster, combat *Combat, log logrus.FieldLogger) *EnemySystem {
	return &EnemySystem{roster: roster, combat: combat, log: logger.Or(log)}
}

func (s *EnemySystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}

	lvl, ok := levelOf(w)
	if !ok {
		return
	}
	ps, havePlayer := playerOf(w)

	kept := s.roster.Enemies[:0]
	for _, e := range s.roster.Enemies {
		es, ok := enemyOf(w, e)
		if !ok {
			continue
		}

		if !es.enemy.Dead() && havePlayer {
			path, _ := ecs.Get(w, e, component.PathComponent.Kind())
			aiFor(es.enemy.Kind).Decide(&AIContext{
				World:        w,
				Entity:       e,
				Enemy:        es.enemy,
				Body:         es.actor,
				Path:         path,
				Grid:         lvl.grid,
				Target:       ps.entity,
				TargetBody:   ps.actor,
				TargetHealth: ps.health,
				Combat:       s.combat,
				DT:           dt,
				Log:          s.log,
			})
		}

		if es.enemy.Dead() {
			es.actor.Stop()
		}
		integrate(es.actor, dt)
		es.enemy.AttackTimer -= dt

		if es.enemy.Dead() && deathFinished(w, e) {
			ecs.DestroyEntity(w, e)
			emit(w, EventEnemyRemoved, e, nil)
			continue
		}
		kept = append(kept, e)
	}
	clear(s.roster.Enemies[len(kept):])
	s.roster.Enemies = kept
}

// integrate applies one tick of velocity.
func integrate(m component.Movable, dt float64) {
	body := m.Body()
	body.Pos = body.Pos.Add(body.Vel.Mult(dt))
}

// deathFinished treats an enemy without a death sequence as finished.
func deathFinished(w *ecs.World, e ecs.Entity) bool {
	death, ok := ecs.Get(w, e, component.DeathSequenceComponent.Kind())
	return !ok || death.Finished
}
