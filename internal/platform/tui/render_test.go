package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "world")

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "hello" || lines[1] != "world" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCenterTextPlain(t *testing.T) {
	got := centerText("ab", 8)
	if got != "   ab" {
		t.Errorf("centerText = %q, expected %q", got, "   ab")
	}

	// Text at or past the width is left alone
	if got := centerText("abcdefgh", 4); got != "abcdefgh" {
		t.Errorf("centerText = %q, expected unchanged input", got)
	}
}

func TestCenterTextMultiLine(t *testing.T) {
	got := centerText("ab\ncdef", 8)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "   ab" {
		t.Errorf("line 0 = %q, expected %q", lines[0], "   ab")
	}
	if lines[1] != "  cdef" {
		t.Errorf("line 1 = %q, expected %q", lines[1], "  cdef")
	}
}

func TestCenterTextIgnoresANSISequences(t *testing.T) {
	// Visible width is 3, the escape codes must not count as padding input.
	styled := "\x1b[31mred\x1b[0m"

	got := centerText(styled, 11)

	if !strings.HasPrefix(got, "    \x1b[31m") {
		t.Errorf("centerText = %q, expected 4 spaces of padding before the styled text", got)
	}
}
