package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/zompocalypse/ecs"
	"github.com/milk9111/zompocalypse/ecs/component"
	"github.com/milk9111/zompocalypse/logger"
	"github.com/milk9111/zompocalypse/prefabs"
)

// SessionSystem moves the run between phases: a cleared wave either wins the
// game or starts the next wave with refilled ammo, and running out of lives
// ends it.
type SessionSystem struct {
	waves  *WaveSystem
	tuning *prefabs.Tuning
	log    logrus.FieldLogger

	// beforeWave runs right before the next wave starts.
	beforeWave func()
}

func NewSessionSystem(waves *WaveSystem, tuning *prefabs.Tuning, log logrus.FieldLogger) *SessionSystem {
	return &SessionSystem{waves: waves, tuning: tuning, log: logger.Or(log)}
}

func (s *SessionSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}

	lvl, ok := levelOf(w)
	if !ok || lvl.session == nil || lvl.wave == nil || lvl.session.Over() {
		return
	}
	session := lvl.session
	wave := lvl.wave

	ps, havePlayer := playerOf(w)
	if havePlayer && ps.player.Lives <= 0 {
		session.Phase = component.PhaseGameOver
		emit(w, EventGameOver, lvl.entity, WaveData{Wave: wave.Number})
		s.log.WithField("wave", wave.Number).Info("game over")
		return
	}

	switch session.Phase {
	case component.PhasePlaying:
		if !wave.Complete {
			return
		}
		if wave.Number >= session.FinalWave {
			session.Phase = component.PhaseWon
			emit(w, EventWon, lvl.entity, WaveData{Wave: wave.Number})
			s.log.WithField("wave", wave.Number).Info("final wave cleared")
			return
		}
		session.Phase = component.PhaseWaveCleared

	case component.PhaseWaveCleared:
		if s.beforeWave != nil {
			s.beforeWave()
		}
		s.waves.StartNextWave(w)
		if havePlayer {
			s.refill(ps.player)
		}
		session.Phase = component.PhasePlaying
	}
}

// refill resets every starting ammo type to the per-wave refill amount.
func (s *SessionSystem) refill(p *component.Player) {
	if p.Ammo == nil {
		p.Ammo = make(map[string]int)
	}
	for ammoType := range s.tuning.Player.Ammo {
		p.Ammo[ammoType] = s.tuning.Waves.RefillAmmo
	}
}
