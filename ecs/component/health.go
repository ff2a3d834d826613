package component

// Health is shared by every damageable actor.
type Health struct {
	Max     float64
	Current float64
}

// Damageable is anything that can take hits.
type Damageable interface {
	TakeDamage(amount float64) bool
	IsAlive() bool
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// TakeDamage reduces health, clamped at zero. It reports true only on the
// call that brings health to zero; damage to a dead actor is ignored.
func (h *Health) TakeDamage(amount float64) bool {
	if !h.IsAlive() || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}

// Restore refills health to Max.
func (h *Health) Restore() {
	if h == nil {
		return
	}
	h.Current = h.Max
}

var HealthComponent = NewComponent[Health]()
