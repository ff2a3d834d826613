package component

import "github.com/jakecoffman/cp"

// Intent is what the input adapter wants the player to do this tick.
type Intent struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Sprint       bool
	Attack       bool
	SwitchMelee  bool
	SwitchRanged bool

	// Aim is a world-space point.
	Aim cp.Vector
}

func (i *Intent) Moving() bool {
	return i != nil && (i.Up || i.Down || i.Left || i.Right)
}

var IntentComponent = NewComponent[Intent]()
