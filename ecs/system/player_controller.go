package system

import (
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/zompocalypse/common"
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/logger"
)

// PlayerSystem turns the player's Intent into movement, stamina use, weapon
// switches and attacks.
type PlayerSystem struct {
	combat *Combat
	log    logrus.FieldLogger
}

func NewPlayerSystem(combat *Combat, log logrus.FieldLogger) *PlayerSystem {
	return &PlayerSystem{combat: combat, log: logger.Or(log)}
}

func (s *PlayerSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}

	ps, ok := playerOf(w)
	if !ok {
		return
	}
	lvl, ok := levelOf(w)
	if !ok {
		return
	}

	if !ps.health.IsAlive() {
		ps.actor.Stop()
		return
	}

	intent := ps.intent
	if intent == nil {
		intent = &component.Intent{}
	}

	s.handleIntent(w, ps, intent, dt)
	move(ps.actor, lvl, dt)

	p := ps.player
	p.AttackTimer -= dt
	p.InvulnerableTimer = max(0, p.InvulnerableTimer-dt)
}

func (s *PlayerSystem) handleIntent(w *ecs.World, ps playerState, in *component.Intent, dt float64) {
	p := ps.player
	body := ps.actor

	if in.SwitchMelee {
		p.Select((*component.Weapon).IsMelee)
	}
	if in.SwitchRanged {
		p.Select((*component.Weapon).IsRanged)
	}

	moving := in.Moving()
	if in.Sprint && moving && p.Stamina > 0 {
		body.Speed = p.RunSpeed
		p.Stamina = max(0, p.Stamina-p.StaminaDrain*dt)
		p.RegenTimer = p.RegenDelay
	} else {
		body.Speed = p.WalkSpeed
		if p.RegenTimer > 0 {
			p.RegenTimer -= dt
		} else if p.Stamina < p.MaxStamina {
			p.Stamina = min(p.MaxStamina, p.Stamina+p.StaminaRegen*dt)
		}
	}

	body.Vel = cp.Vector{}
	if in.Up {
		body.Vel.Y = -body.Speed
	}
	if in.Down {
		body.Vel.Y = body.Speed
	}
	if in.Left {
		body.Vel.X = -body.Speed
	}
	if in.Right {
		body.Vel.X = body.Speed
	}

	body.FacingRight = in.Aim.X > body.Center().X
	p.Aim = in.Aim

	if in.Attack && p.AttackTimer <= 0 {
		s.attack(w, ps, in.Aim)
	}
}

// attack fires the current weapon. Ranged shots need ammo for one shot and
// spend it only once the projectile exists.
func (s *PlayerSystem) attack(w *ecs.World, ps playerState, aim cp.Vector) {
	p := ps.player
	weapon := p.CurrentWeapon()
	if weapon == nil {
		return
	}

	ranged, isRanged := weapon.Mode.(component.Ranged)
	if isRanged && p.Ammo[ranged.AmmoType] < ranged.AmmoPerShot {
		s.log.WithFields(logrus.Fields{
			"weapon": weapon.Name,
			"ammo":   p.Ammo[ranged.AmmoType],
		}).Debug("out of ammo")
		return
	}

	res := s.combat.Attack(w, ps.entity, ps.actor, weapon, aim)
	if isRanged {
		if !res.Projectile.Valid() {
			return
		}
		p.Ammo[ranged.AmmoType] -= ranged.AmmoPerShot
	}
	p.AttackTimer = weapon.Cooldown
}

// move applies velocity one axis at a time, keeping an axis only when the
// moved bounds stay on walkable cells, then clamps to the level.
func move(body *component.Actor, lvl levelState, dt float64) {
	next := body.Pos.Add(body.Vel.Mult(dt))

	if canOccupy(lvl.grid, next.X, body.Pos.Y, body.Width, body.Height) {
		body.Pos.X = next.X
	}
	if canOccupy(lvl.grid, body.Pos.X, next.Y, body.Width, body.Height) {
		body.Pos.Y = next.Y
	}

	body.Pos = lvl.bounds.Clamp(body.Pos, body.Width, body.Height)
}

func canOccupy(grid *component.Grid, x, y, w, h float64) bool {
	r := common.Rect{X: x, Y: y, Width: w - 1, Height: h - 1}
	return grid.IsWalkable(r.X, r.Y) &&
		grid.IsWalkable(r.X+r.Width, r.Y) &&
		grid.IsWalkable(r.X, r.Y+r.Height) &&
		grid.IsWalkable(r.X+r.Width, r.Y+r.Height)
}
