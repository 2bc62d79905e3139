package sound

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// uninitialized players must silently drop everything
func TestPlayerGracefulDegradation(t *testing.T) {
	p := &Player{}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Play panicked without initialization: %v", r)
		}
	}()

	p.Play(core.EventHop)
	p.Play(core.EventWin)
	p.Play(core.EventLose)
	p.Play(core.EventHit)
	p.Cleanup()
}

func TestPlayerMute(t *testing.T) {
	p := &Player{}

	if p.Muted() {
		t.Error("player should start unmuted")
	}

	p.SetMuted(true)
	if !p.Muted() {
		t.Error("SetMuted(true) should mute the player")
	}

	p.SetMuted(false)
	if p.Muted() {
		t.Error("SetMuted(false) should unmute the player")
	}
}

func TestToneGeneratorBounds(t *testing.T) {
	g := newToneGenerator(660)
	samples := make([][2]float64, 4096)

	n, ok := g.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream returned (%d, %v), expected full buffer", n, ok)
	}

	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v", g.Err())
	}
}

func TestSweepGeneratorBounds(t *testing.T) {
	g := newSweepGenerator(440, 880)
	samples := make([][2]float64, 4096)

	for round := 0; round < 8; round++ {
		n, ok := g.Stream(samples)
		if !ok || n != len(samples) {
			t.Fatalf("Stream returned (%d, %v), expected full buffer", n, ok)
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 {
				t.Fatalf("round %d sample %d out of range: %v", round, i, s)
			}
		}
	}
}

func TestBuzzGeneratorBounds(t *testing.T) {
	g := newBuzzGenerator(110)
	samples := make([][2]float64, 4096)

	n, ok := g.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream returned (%d, %v), expected full buffer", n, ok)
	}

	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
}
