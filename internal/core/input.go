package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps raw keys to actions; the game only sees high-level intents.
// Directional actions and restarts are delivered to the game synchronously as
// they arrive, independent of the simulation tick.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k - hop up (toward the goal row)
	ActionDown           // S, Down arrow, j - hop down
	ActionLeft           // A, Left arrow, h - hop left
	ActionRight          // D, Right arrow, l - hop right
	ActionConfirm        // Enter, Space - start or restart a round
	ActionBack           // Esc - leave the current screen
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four hop directions.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
