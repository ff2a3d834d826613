package component

// EnemyKind selects the decision function an enemy runs each tick.
type EnemyKind uint8

const (
	EnemyZombie EnemyKind = iota
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyZombie:
		return "zombie"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// EnemyState is the externally visible AI state, read by the renderer to
// pick an animation.
type EnemyState uint8

const (
	EnemyIdle EnemyState = iota
	EnemyMoving
	EnemyAttacking
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyMoving:
		return "moving"
	case EnemyAttacking:
		return "attacking"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

type Enemy struct {
	Kind  EnemyKind
	State EnemyState

	Damage         float64
	AttackCooldown float64
	AttackTimer    float64

	// DetectionRange gates pursuit for zombies; bosses always pursue.
	DetectionRange float64
	// AttackRange is measured top-left to top-left for zombies and center to
	// center for bosses.
	AttackRange   float64
	ArrivalRadius float64
}

func (e *Enemy) Dead() bool {
	return e != nil && e.State == EnemyDead
}

var EnemyComponent = NewComponent[Enemy]()
