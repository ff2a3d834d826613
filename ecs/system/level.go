package system

import (
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/zompocalypse/common"
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/ecs/entity"
	"github.com/milk9111/zompocalypse/logger"
	"github.com/milk9111/zompocalypse/prefabs"
)

// Level owns one run of the simulation: its world, the enemy and projectile
// rosters, and the fixed order in which systems advance them.
type Level struct {
	world        *ecs.World
	scheduler    *ecs.Scheduler
	presentation *ecs.Scheduler
	roster       *Roster
	waves        *WaveSystem

	tuning  *prefabs.Tuning
	pending *prefabs.Tuning

	player ecs.Entity
	level  ecs.Entity

	events []ecs.Event
	ticks  uint64
	log    logrus.FieldLogger
}

type levelOptions struct {
	seed         uint64
	log          logrus.FieldLogger
	presentation []ecs.System
}

type LevelOption func(*levelOptions)

// WithSeed seeds spawn placement.
func WithSeed(seed uint64) LevelOption {
	return func(o *levelOptions) { o.seed = seed }
}

func WithLogger(log logrus.FieldLogger) LevelOption {
	return func(o *levelOptions) { o.log = log }
}

// WithPresentation adds systems that run after every simulation tick, such as
// the death-sequence clock.
func WithPresentation(systems ...ecs.System) LevelOption {
	return func(o *levelOptions) { o.presentation = append(o.presentation, systems...) }
}

// NewLevel builds a level on grid with the player at the world center and
// wave 1 ready to spawn.
func NewLevel(grid *component.Grid, tuning prefabs.Tuning, opts ...LevelOption) (*Level, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	o := levelOptions{seed: 1}
	for _, opt := range opts {
		opt(&o)
	}
	log := logger.Or(o.log)

	w := ecs.NewWorld()
	t := tuning

	wave := component.Wave{Number: 1, Required: t.Waves.Quota(1)}
	session := component.Session{Phase: component.PhasePlaying, FinalWave: t.Game.FinalWave}
	bounds := component.LevelBounds{Width: t.Game.WorldWidth, Height: t.Game.WorldHeight}

	levelEntity, err := entity.NewLevel(w, grid, bounds, wave, session)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	spawn := cp.Vector{X: t.Game.WorldWidth / 2, Y: t.Game.WorldHeight / 2}
	playerEntity, err := entity.NewPlayer(w, t.Player, spawn)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	l := &Level{
		world:  w,
		roster: &Roster{},
		tuning: &t,
		player: playerEntity,
		level:  levelEntity,
		log:    log,
	}

	combat := NewCombat(l.roster, log)
	l.waves = NewWaveSystem(l.roster, l.tuning, rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15)), log)
	sessions := NewSessionSystem(l.waves, l.tuning, log)
	sessions.beforeWave = l.applyPending

	l.scheduler = ecs.NewScheduler(
		NewPlayerSystem(combat, log),
		NewEnemySystem(l.roster, combat, log),
		NewBoundsSystem(l.roster),
		NewProjectileSystem(l.roster),
		NewProjectileHitSystem(l.roster, combat, log),
		l.waves,
		sessions,
	)
	l.presentation = ecs.NewScheduler(o.presentation...)

	log.WithFields(logrus.Fields{
		"wave":     wave.Number,
		"required": wave.Required,
		"seed":     o.seed,
	}).Info("level ready")
	return l, nil
}

// Update advances the simulation by one tick. dt is clamped to the maximum
// tick length; nothing happens once the game is won or lost.
func (l *Level) Update(dt float64) {
	if l == nil || l.Over() {
		return
	}

	dt = common.Clamp(dt, 0, l.tuning.Game.MaxTickDelta)
	l.scheduler.Update(l.world, dt)
	l.presentation.Update(l.world, dt)
	l.ticks++

	l.events = l.world.Events().Drain()
	for _, evt := range l.events {
		l.log.WithFields(logrus.Fields{
			"tick":   l.ticks,
			"event":  string(evt.Type),
			"entity": evt.Entity.String(),
		}).Debug("event")
	}
}

// SetIntent replaces the player's intent for the next tick.
func (l *Level) SetIntent(in component.Intent) {
	if intent, ok := ecs.Get(l.world, l.player, component.IntentComponent.Kind()); ok {
		*intent = in
	}
}

// Events returns what happened during the last tick.
func (l *Level) Events() []ecs.Event {
	return l.events
}

func (l *Level) World() *ecs.World {
	return l.world
}

func (l *Level) Roster() *Roster {
	return l.roster
}

func (l *Level) Player() ecs.Entity {
	return l.player
}

func (l *Level) Ticks() uint64 {
	return l.ticks
}

// Tuning returns the values currently in force.
func (l *Level) Tuning() prefabs.Tuning {
	return *l.tuning
}

func (l *Level) Wave() component.Wave {
	if wave, ok := ecs.Get(l.world, l.level, component.WaveComponent.Kind()); ok {
		return *wave
	}
	return component.Wave{}
}

func (l *Level) Phase() component.Phase {
	if session, ok := ecs.Get(l.world, l.level, component.SessionComponent.Kind()); ok {
		return session.Phase
	}
	return component.PhasePlaying
}

// Over reports whether the run has been won or lost.
func (l *Level) Over() bool {
	session, ok := ecs.Get(l.world, l.level, component.SessionComponent.Kind())
	return ok && session.Over()
}

// StartNextWave advances the wave immediately, applying pending tuning.
func (l *Level) StartNextWave() {
	l.applyPending()
	l.waves.StartNextWave(l.world)
}

// ApplyTuning stages new values; they take effect when the next wave starts.
// Game settings are fixed for the life of the level since the grid and
// bounds were built from them; they apply on the next NewLevel.
func (l *Level) ApplyTuning(t prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if t.Game != l.tuning.Game {
		l.log.Warn("game settings changed, keeping current until restart")
		t.Game = l.tuning.Game
	}
	l.pending = &t
	l.log.Info("tuning staged for next wave")
	return nil
}

func (l *Level) applyPending() {
	if l.pending == nil {
		return
	}
	*l.tuning = *l.pending
	l.pending = nil
	l.log.Info("tuning applied")
}
