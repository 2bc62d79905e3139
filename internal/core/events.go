package core

// Event is a discrete gameplay event surfaced to platform collaborators.
// The game emits events; it does not know how they are realized (the sound
// player is the main consumer).
type Event int

const (
	EventHop  Event = iota // Agent committed a move
	EventWin               // Agent reached the goal row
	EventLose              // Round ended in a loss
	EventHit               // Agent collided with a car
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventHop:
		return "hop"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	case EventHit:
		return "hit"
	default:
		return "unknown"
	}
}
