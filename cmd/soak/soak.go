package main

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/zompocalypse/common"
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/ecs/render"
	"github.com/milk9111/zompocalypse/ecs/system"
	"github.com/milk9111/zompocalypse/levels"
	"github.com/milk9111/zompocalypse/prefabs"
)

type config struct {
	ticks int
	seed  uint64
	level string
	dt    float64
}

// run plays one level headlessly with a scripted bot until the tick budget
// runs out or the game ends, and returns the final HUD snapshot.
func run(cfg config, log logrus.FieldLogger) (system.Summary, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return system.Summary{}, err
	}

	name := cfg.level
	if name == "" {
		name = tuning.Game.Map
	}
	spec := tuning.Game
	grid, _ := levels.LoadGrid(name, int(spec.WorldWidth/spec.TileSize), int(spec.WorldHeight/spec.TileSize), spec.TileSize, log)

	level, err := system.NewLevel(grid, tuning,
		system.WithSeed(cfg.seed),
		system.WithLogger(log),
		system.WithPresentation(render.NewDeathClock(render.DefaultLibrary())),
	)
	if err != nil {
		return system.Summary{}, err
	}

	for tick := 0; tick < cfg.ticks && !level.Over(); tick++ {
		level.SetIntent(botIntent(level))
		level.Update(cfg.dt)

		for _, evt := range level.Events() {
			switch evt.Type {
			case system.EventWaveStarted, system.EventWaveComplete, system.EventGameOver, system.EventWon:
				s := level.Summary()
				log.WithFields(logrus.Fields{
					"tick":    level.Ticks(),
					"event":   string(evt.Type),
					"wave":    s.Wave,
					"lives":   s.Lives,
					"health":  s.Health,
					"enemies": s.Enemies,
				}).Info("progress")
			}
		}
	}
	return level.Summary(), nil
}

// botIntent targets the nearest living enemy: melee when it is close, the
// gun while ammo lasts, otherwise it walks into melee range.
func botIntent(level *system.Level) component.Intent {
	w := level.World()
	body, ok := ecs.Get(w, level.Player(), component.ActorComponent.Kind())
	if !ok {
		return component.Intent{}
	}
	player, _ := ecs.Get(w, level.Player(), component.PlayerComponent.Kind())

	target, dist, found := nearestEnemy(w, level.Roster(), body.Pos)
	if !found {
		return component.Intent{}
	}

	in := component.Intent{Aim: target.Center(), Attack: true}
	if dist < meleeReach(player) {
		in.SwitchMelee = true
		return in
	}

	if player != nil && player.Ammo["bullet"] > 0 {
		in.SwitchRanged = true
		return in
	}

	in.SwitchMelee = true
	dir, _ := common.Direction(body.Pos, target.Pos)
	in.Right = dir.X > 0.3
	in.Left = dir.X < -0.3
	in.Down = dir.Y > 0.3
	in.Up = dir.Y < -0.3
	return in
}

func nearestEnemy(w *ecs.World, roster *system.Roster, from cp.Vector) (*component.Actor, float64, bool) {
	var (
		best     *component.Actor
		bestDist = math.Inf(1)
	)
	for _, e := range roster.Enemies {
		enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
		if !ok || enemy.Dead() {
			continue
		}
		body, ok := ecs.Get(w, e, component.ActorComponent.Kind())
		if !ok {
			continue
		}
		if d := common.Dist(from, body.Pos); d < bestDist {
			best, bestDist = body, d
		}
	}
	return best, bestDist, best != nil
}

func meleeReach(p *component.Player) float64 {
	if p == nil {
		return 0
	}
	for _, weapon := range p.Weapons {
		if melee, ok := weapon.Mode.(component.Melee); ok {
			return melee.Reach
		}
	}
	return 0
}
