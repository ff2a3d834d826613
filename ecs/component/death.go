package component

// DeathSequence is the non-looping presentation played after an actor dies.
// The simulation starts it and waits for Finished; the presentation side sets
// Finished when it is done.
type DeathSequence struct {
	Started  bool
	Elapsed  float64
	Finished bool
}

func (d *DeathSequence) Start() {
	if d == nil || d.Started {
		return
	}
	d.Started = true
	d.Elapsed = 0
	d.Finished = false
}

var DeathSequenceComponent = NewComponent[DeathSequence]()
