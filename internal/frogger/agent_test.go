package frogger

import "testing"

func TestStartAgent(t *testing.T) {
	a := startAgent(NewGrid(7, 4))

	if a.Column != 3 || a.Row != 4 {
		t.Errorf("startAgent = (%d, %d), expected (3, 4)", a.Column, a.Row)
	}
}

func TestMoveStaysInBounds(t *testing.T) {
	grid := NewGrid(7, 4)
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	// Every direction from every position must land inside the grid.
	for col := 0; col < grid.Columns; col++ {
		for row := 0; row <= grid.Lanes; row++ {
			for _, d := range dirs {
				a := Agent{Column: col, Row: row}
				a.Move(d, grid)

				if !grid.ValidColumn(a.Column) {
					t.Errorf("Move(%s) from (%d, %d) produced column %d", d, col, row, a.Column)
				}
				if !grid.ValidRow(a.Row) {
					t.Errorf("Move(%s) from (%d, %d) produced row %d", d, col, row, a.Row)
				}
			}
		}
	}
}

func TestMoveCommitsCandidate(t *testing.T) {
	grid := NewGrid(7, 4)

	tests := []struct {
		name     string
		start    Agent
		dir      Direction
		expected Agent
		moved    bool
	}{
		{"up from start", Agent{3, 4}, DirUp, Agent{3, 3}, true},
		{"down mid-board", Agent{3, 2}, DirDown, Agent{3, 3}, true},
		{"left", Agent{3, 2}, DirLeft, Agent{2, 2}, true},
		{"right", Agent{3, 2}, DirRight, Agent{4, 2}, true},
		{"left at left edge is a no-op", Agent{0, 2}, DirLeft, Agent{0, 2}, false},
		{"right at right edge is a no-op", Agent{6, 2}, DirRight, Agent{6, 2}, false},
		{"up at goal row is a no-op", Agent{3, 0}, DirUp, Agent{3, 0}, false},
		{"down at start row is a no-op", Agent{3, 4}, DirDown, Agent{3, 4}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := tc.start
			moved := a.Move(tc.dir, grid)

			if moved != tc.moved {
				t.Errorf("Move returned %v, expected %v", moved, tc.moved)
			}
			if a != tc.expected {
				t.Errorf("agent = (%d, %d), expected (%d, %d)", a.Column, a.Row, tc.expected.Column, tc.expected.Row)
			}
		})
	}
}
