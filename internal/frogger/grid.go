package frogger

// Grid defines the discrete coordinate space the frog and cars move within.
// Columns index the horizontal axis in [0, Columns-1]. Rows index the
// vertical axis in [0, Lanes]: row 0 is the goal, row Lanes is the start,
// and row r in [1, Lanes] lies over traffic lane r-1.
type Grid struct {
	Columns int
	Lanes   int
}

// NewGrid creates a grid, enforcing the minimum of one column and one lane.
func NewGrid(columns, lanes int) Grid {
	if columns < 1 {
		columns = 1
	}
	if lanes < 1 {
		lanes = 1
	}
	return Grid{Columns: columns, Lanes: lanes}
}

// ValidColumn reports whether c is a valid column index.
func (g Grid) ValidColumn(c int) bool {
	return c >= 0 && c < g.Columns
}

// ValidRow reports whether r is a valid row index.
func (g Grid) ValidRow(r int) bool {
	return r >= 0 && r <= g.Lanes
}

// GoalRow returns the row the frog must reach to win.
func (g Grid) GoalRow() int {
	return 0
}

// StartRow returns the row the frog starts each round on.
func (g Grid) StartRow() int {
	return g.Lanes
}

// StartColumn returns the column the frog starts each round on.
func (g Grid) StartColumn() int {
	return g.Columns / 2
}
