package core

// Action represents a semantic game command, abstracted from physical
// key presses. The platform maps keys to actions; the simulation never
// reads input devices directly.
type Action int

const (
	ActionNone       Action = iota
	ActionAngleLeft         // Left arrow - rotate barrel away from facing
	ActionAngleRight        // Right arrow - rotate barrel toward facing
	ActionPowerUp           // Up arrow - increase shot power
	ActionPowerDown         // Down arrow - decrease shot power
	ActionFire              // Space - fire the shell
	ActionNewMatch          // N - reset terrain and tanks, keep scores
	ActionRegen             // R - regenerate terrain only
	ActionToggleAI          // T - toggle CPU control of player 2
	ActionPause             // P, Escape - pause/unpause
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAngleLeft:
		return "AngleLeft"
	case ActionAngleRight:
		return "AngleRight"
	case ActionPowerUp:
		return "PowerUp"
	case ActionPowerDown:
		return "PowerDown"
	case ActionFire:
		return "Fire"
	case ActionNewMatch:
		return "NewMatch"
	case ActionRegen:
		return "Regen"
	case ActionToggleAI:
		return "ToggleAI"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the commands issued during one simulation tick.
// Hot-seat play means a single frame always addresses the active player.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
