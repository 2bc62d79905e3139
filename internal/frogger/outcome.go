package frogger

import "math"

// Outcome is the result of evaluating the agent against the board state.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Evaluate inspects the agent against the car set and the goal row.
// The win check runs first: no cars occupy the goal row, so a frog that has
// reached row 0 can never also collide. Collision uses the cars' continuous
// positions, not rounded cell indices, so a car straddling a cell boundary
// still registers.
//
// Callers must pass traffic that has already been advanced for the current
// tick; evaluating a stale snapshot can miss collisions by one tick.
func Evaluate(agent Agent, traffic *Traffic, grid Grid, overlapThreshold float64) Outcome {
	if agent.Row == grid.GoalRow() {
		return OutcomeWin
	}

	lane := agent.Row - 1
	for _, c := range traffic.Cars() {
		if c.Lane != lane {
			continue
		}
		if math.Abs(float64(agent.Column)-c.Position) < overlapThreshold {
			return OutcomeLose
		}
	}

	return OutcomeContinue
}
