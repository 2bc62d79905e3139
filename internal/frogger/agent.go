package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Direction represents a frog hop direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Agent is the player-controlled frog. It is mutated only by Move (on input)
// and by the game's round reset; the traffic simulator never touches it.
type Agent struct {
	Column int
	Row    int
}

// startAgent places a fresh agent at the grid's start position.
func startAgent(grid Grid) Agent {
	return Agent{Column: grid.StartColumn(), Row: grid.StartRow()}
}

// Move computes the candidate position one cell in the given direction,
// clamps it to the grid, and commits it. Returns false if the clamped
// result equals the current position (a no-op hop at a board edge).
func (a *Agent) Move(d Direction, grid Grid) bool {
	col, row := a.Column, a.Row

	switch d {
	case DirUp:
		row--
	case DirDown:
		row++
	case DirLeft:
		col--
	case DirRight:
		col++
	}

	col = core.Clamp(col, 0, grid.Columns-1)
	row = core.Clamp(row, 0, grid.Lanes)

	if col == a.Column && row == a.Row {
		return false
	}

	a.Column = col
	a.Row = row
	return true
}
