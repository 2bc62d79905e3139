package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/frogger"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up", "k": // vim-style k for up
		return core.ActionUp, false
	case "s", "down", "j": // vim-style j for down
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter", " ", "r":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// DirectionFor converts a directional action to a hop direction.
// The second return is false for non-directional actions.
func DirectionFor(action core.Action) (frogger.Direction, bool) {
	switch action {
	case core.ActionUp:
		return frogger.DirUp, true
	case core.ActionDown:
		return frogger.DirDown, true
	case core.ActionLeft:
		return frogger.DirLeft, true
	case core.ActionRight:
		return frogger.DirRight, true
	}
	return frogger.DirUp, false
}
