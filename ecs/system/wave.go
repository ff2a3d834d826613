package system

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/zompocalypse/common"
	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/entity"
	"github.com/milk9111/zompocalypse/logger"
	"github.com/milk9111/zompocalypse/prefabs"
)

// WaveSystem spawns the current wave's enemies on a timer and marks the wave
// complete once its quota is spawned and the roster is empty.
type WaveSystem struct {
	roster *Roster
	tuning *prefabs.Tuning
	rng    *rand.Rand
	log    logrus.FieldLogger
}

func NewWaveSystem(roster *Roster, tuning *prefabs.Tuning, rng *rand.Rand, log logrus.FieldLogger) *WaveSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 0))
	}
	return &WaveSystem{roster: roster, tuning: tuning, rng: rng, log: logger.Or(log)}
}

func (s *WaveSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}

	lvl, ok := levelOf(w)
	if !ok || lvl.wave == nil || lvl.wave.Complete || lvl.session.Over() {
		return
	}
	wave := lvl.wave

	wave.SpawnTimer -= dt
	if wave.SpawnTimer <= 0 && wave.Spawned < wave.Required {
		s.Spawn(w)
		wave.SpawnTimer = s.tuning.Waves.SpawnInterval
	}

	if wave.QuotaMet() && len(s.roster.Enemies) == 0 {
		wave.Complete = true
		emit(w, EventWaveComplete, lvl.entity, WaveData{Wave: wave.Number, Spawned: wave.Spawned, Required: wave.Required})
		s.log.WithField("wave", wave.Number).Info("wave complete")
	}
}

// Spawn places one enemy of the current wave. The boss wave spawns a boss,
// every other wave a zombie scaled to the wave number.
func (s *WaveSystem) Spawn(w *ecs.World) (ecs.Entity, bool) {
	lvl, ok := levelOf(w)
	if !ok || lvl.wave == nil || lvl.wave.Spawned >= lvl.wave.Required {
		return 0, false
	}
	wave := lvl.wave

	var playerPos cp.Vector
	if ps, ok := playerOf(w); ok {
		playerPos = ps.actor.Pos
	}
	pos := s.spawnPoint(lvl, playerPos)

	var (
		e   ecs.Entity
		err error
	)
	boss := wave.Number == s.tuning.Waves.BossWave
	if boss {
		e, err = entity.NewBoss(w, s.tuning.Boss, pos)
	} else {
		e, err = entity.NewZombie(w, s.tuning.Zombie, wave.Number, pos)
	}
	if err != nil {
		s.log.WithError(err).WithField("wave", wave.Number).Warn("spawn failed")
		return 0, false
	}

	s.roster.Enemies = append(s.roster.Enemies, e)
	wave.Spawned++

	data := WaveData{Wave: wave.Number, Spawned: wave.Spawned, Required: wave.Required}
	fields := logrus.Fields{"wave": wave.Number, "spawned": wave.Spawned, "required": wave.Required}
	if boss {
		emit(w, EventBossSpawned, e, data)
		s.log.WithFields(fields).Info("boss spawned")
	} else {
		emit(w, EventEnemySpawned, e, data)
		s.log.WithFields(fields).Debug("zombie spawned")
	}
	return e, true
}

// spawnPoint samples the world for a walkable point at least the safe
// distance from the player. After the attempt budget runs out the last
// sample is used as is.
func (s *WaveSystem) spawnPoint(lvl levelState, player cp.Vector) cp.Vector {
	width, height := lvl.bounds.Width, lvl.bounds.Height
	spec := s.tuning.Waves

	var candidate cp.Vector
	for attempt := 0; attempt < max(1, spec.SpawnAttempts); attempt++ {
		candidate = cp.Vector{X: s.rng.Float64() * width, Y: s.rng.Float64() * height}
		if lvl.grid.IsWalkable(candidate.X, candidate.Y) && common.Dist(candidate, player) >= spec.SafeDistance {
			return candidate
		}
	}

	s.log.WithField("attempts", spec.SpawnAttempts).Warn("no safe spawn point, using last sample")
	return candidate
}

// StartNextWave advances to the following wave and resets its spawn state.
func (s *WaveSystem) StartNextWave(w *ecs.World) {
	lvl, ok := levelOf(w)
	if !ok || lvl.wave == nil {
		return
	}
	wave := lvl.wave

	wave.Number++
	wave.Spawned = 0
	wave.SpawnTimer = 0
	wave.Required = s.tuning.Waves.Quota(wave.Number)
	wave.Complete = false

	emit(w, EventWaveStarted, lvl.entity, WaveData{Wave: wave.Number, Required: wave.Required})
	s.log.WithFields(logrus.Fields{"wave": wave.Number, "required": wave.Required}).Info("wave started")
}
