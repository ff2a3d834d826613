package component

type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseWaveCleared
	PhaseGameOver
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWaveCleared:
		return "wave_cleared"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Session is the progression state of a run.
type Session struct {
	Phase     Phase
	FinalWave int
}

// Over reports whether the level has stopped ticking.
func (s *Session) Over() bool {
	return s != nil && (s.Phase == PhaseGameOver || s.Phase == PhaseWon)
}

var SessionComponent = NewComponent[Session]()
