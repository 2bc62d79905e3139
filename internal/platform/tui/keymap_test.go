package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/frogger"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"k", core.ActionUp},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{"j", core.ActionDown},
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"h", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"l", core.ActionRight},
		{"enter", core.ActionConfirm},
		{"space", core.ActionConfirm},
		{"r", core.ActionConfirm},
		{"esc", core.ActionBack},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if isQuit {
			t.Errorf("key %q flagged as quit", tt.key)
		}
		if action != tt.want {
			t.Errorf("key %q mapped to %s, expected %s", tt.key, action, tt.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "ctrl+c"} {
		action, isQuit := km.MapKey(keyMsg(key))
		if !isQuit {
			t.Errorf("key %q should be a quit request", key)
		}
		if action != core.ActionQuit {
			t.Errorf("key %q mapped to %s, expected quit", key, action)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		dir    frogger.Direction
		ok     bool
	}{
		{core.ActionUp, frogger.DirUp, true},
		{core.ActionDown, frogger.DirDown, true},
		{core.ActionLeft, frogger.DirLeft, true},
		{core.ActionRight, frogger.DirRight, true},
		{core.ActionConfirm, frogger.DirUp, false},
		{core.ActionNone, frogger.DirUp, false},
	}

	for _, tt := range tests {
		dir, ok := DirectionFor(tt.action)
		if ok != tt.ok {
			t.Errorf("DirectionFor(%s) ok = %v, expected %v", tt.action, ok, tt.ok)
			continue
		}
		if ok && dir != tt.dir {
			t.Errorf("DirectionFor(%s) = %s, expected %s", tt.action, dir, tt.dir)
		}
	}
}
