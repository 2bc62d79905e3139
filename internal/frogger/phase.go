package frogger

// Phase is the game's top-level state. Exactly one phase is active at any
// time. The tick transaction only runs in PhasePlaying.
type Phase int

const (
	PhaseWaiting Phase = iota // Fresh game, nothing moving yet
	PhasePlaying              // Round in progress, ticks running
	PhaseWin                  // Frog reached the goal row
	PhaseLose                 // Frog collided with a car
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePlaying:
		return "playing"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}

// CanRestart reports whether a start/restart action is honored in this phase.
func (p Phase) CanRestart() bool {
	return p == PhaseWaiting || p == PhaseWin || p == PhaseLose
}
