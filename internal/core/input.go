package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys to actions; the simulation only sees actions.
type Action int

const (
	ActionNone Action = iota
	ActionJump        // Space, W, Up - primary action (jump, restart after game over)
	ActionQuit        // Q, Esc, Ctrl+C - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered (key-down edges) since the
// previous tick. It is a plain value: copies are independent and frames
// compare with ==.
type InputFrame struct {
	bits uint8
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

func (a Action) bit() uint8 {
	if a <= ActionNone || a > ActionQuit {
		return 0
	}
	return 1 << uint(a)
}

// Set marks an action as triggered for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	f.bits |= a.bit()
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.bits&b != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}
