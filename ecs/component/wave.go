package component

// Wave tracks spawn progress for the current wave. Spawned never exceeds
// Required; the wave is complete only once every spawned enemy has left the
// roster.
type Wave struct {
	Number     int
	Spawned    int
	Required   int
	SpawnTimer float64
	Complete   bool
}

// QuotaMet reports whether every enemy of the wave has been spawned.
func (w *Wave) QuotaMet() bool {
	return w != nil && w.Spawned >= w.Required
}

var WaveComponent = NewComponent[Wave]()
