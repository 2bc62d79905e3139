package frogger

import "testing"

func laneTraffic(cars ...Car) *Traffic {
	return &Traffic{cars: cars, columns: 7, wrapMargin: 0.5}
}

func TestEvaluate(t *testing.T) {
	grid := NewGrid(7, 4)

	tests := []struct {
		name     string
		agent    Agent
		traffic  *Traffic
		expected Outcome
	}{
		{
			name:     "car within threshold loses",
			agent:    Agent{Column: 3, Row: 1},
			traffic:  laneTraffic(Car{Lane: 0, Position: 3.2, Velocity: 1}),
			expected: OutcomeLose,
		},
		{
			name:     "distant car continues",
			agent:    Agent{Column: 3, Row: 1},
			traffic:  laneTraffic(Car{Lane: 0, Position: 5.0, Velocity: 1}),
			expected: OutcomeContinue,
		},
		{
			name:     "goal row wins regardless of traffic",
			agent:    Agent{Column: 3, Row: 0},
			traffic:  laneTraffic(Car{Lane: 0, Position: 3.0, Velocity: 1}),
			expected: OutcomeWin,
		},
		{
			name:     "car in a different lane is ignored",
			agent:    Agent{Column: 3, Row: 2},
			traffic:  laneTraffic(Car{Lane: 0, Position: 3.0, Velocity: 1}),
			expected: OutcomeContinue,
		},
		{
			name:     "exactly at threshold continues",
			agent:    Agent{Column: 3, Row: 1},
			traffic:  laneTraffic(Car{Lane: 0, Position: 3.7, Velocity: 1}),
			expected: OutcomeContinue,
		},
		{
			name:     "just inside threshold loses",
			agent:    Agent{Column: 3, Row: 1},
			traffic:  laneTraffic(Car{Lane: 0, Position: 3.65, Velocity: 1}),
			expected: OutcomeLose,
		},
		{
			name:     "approach from the left counts too",
			agent:    Agent{Column: 3, Row: 1},
			traffic:  laneTraffic(Car{Lane: 0, Position: 2.4, Velocity: -1}),
			expected: OutcomeLose,
		},
		{
			name:     "empty road continues",
			agent:    Agent{Column: 3, Row: 1},
			traffic:  laneTraffic(),
			expected: OutcomeContinue,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.agent, tc.traffic, grid, 0.7)
			if got != tc.expected {
				t.Errorf("Evaluate() = %s, expected %s", got, tc.expected)
			}
		})
	}
}

func TestEvaluateUsesContinuousPositions(t *testing.T) {
	grid := NewGrid(7, 4)

	// Position 3.6 rounds to cell 4, but the continuous distance to column 3
	// is 0.6 < 0.7 so this must still lose.
	tr := laneTraffic(Car{Lane: 0, Position: 3.6, Velocity: 1})

	if got := Evaluate(Agent{Column: 3, Row: 1}, tr, grid, 0.7); got != OutcomeLose {
		t.Errorf("Evaluate() = %s, expected lose for continuous overlap", got)
	}
}
