package frogger

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 18,
		Seed:     42,
	}
}

// clearRoad removes all cars so movement tests can't be interrupted by a
// random collision.
func clearRoad(g *Game) {
	g.traffic.cars = nil
}

func TestResetStartsWaiting(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if g.Phase() != PhaseWaiting {
		t.Errorf("phase after Reset = %s, expected waiting", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("score after Reset = %d, expected 0", g.Score())
	}
	if g.agent.Column != 3 || g.agent.Row != 4 {
		t.Errorf("agent after Reset = (%d, %d), expected (3, 4)", g.agent.Column, g.agent.Row)
	}
}

func TestRestartFromWaiting(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if !g.SubmitRestart() {
		t.Fatal("restart from waiting should be honored")
	}

	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s, expected playing", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, expected 0", g.Score())
	}
	if g.agent.Column != 3 || g.agent.Row != 4 {
		t.Errorf("agent = (%d, %d), expected start (3, 4)", g.agent.Column, g.agent.Row)
	}
	if g.traffic.Len() != 8 {
		t.Errorf("car count = %d, expected 8 (2 per lane, 4 lanes)", g.traffic.Len())
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.SubmitRestart()

	if g.SubmitRestart() {
		t.Error("restart while playing should be ignored")
	}
}

func TestDirectionalInputIgnoredOutsidePlaying(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	before := g.agent
	if events := g.SubmitDirection(DirUp); events != nil {
		t.Errorf("input in waiting phase produced events %v", events)
	}
	if g.agent != before {
		t.Error("input in waiting phase moved the agent")
	}
}

func TestStepInertOutsidePlaying(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if events := g.Step(); events != nil {
		t.Errorf("step in waiting phase produced events %v", events)
	}
	if g.tick != 0 {
		t.Errorf("step in waiting phase advanced the tick to %d", g.tick)
	}
}

func TestHopEmitsEvent(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.SubmitRestart()
	clearRoad(g)

	events := g.SubmitDirection(DirLeft)
	if len(events) != 1 || events[0] != core.EventHop {
		t.Errorf("events = %v, expected [hop]", events)
	}
}

func TestNoOpHopEmitsNothing(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.SubmitRestart()
	clearRoad(g)

	// Start row is the bottom edge; hopping down is clamped to a no-op.
	if events := g.SubmitDirection(DirDown); events != nil {
		t.Errorf("no-op hop produced events %v", events)
	}
}

func TestWinOnReachingGoalRow(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.SubmitRestart()
	clearRoad(g)
	g.agent = Agent{Column: 3, Row: 1}

	events := g.SubmitDirection(DirUp)

	if g.Phase() != PhaseWin {
		t.Fatalf("phase = %s, expected win", g.Phase())
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, expected exactly 1", g.Score())
	}
	if g.HighScore() != 1 {
		t.Errorf("high score = %d, expected 1", g.HighScore())
	}

	want := []core.Event{core.EventHop, core.EventWin}
	if len(events) != len(want) {
		t.Fatalf("events = %v, expected %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events = %v, expected %v", events, want)
			break
		}
	}
}

func TestLoseOnTickCollision(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.SubmitRestart()

	// One car that advances onto the frog's column this tick. Difficulty
	// starts at level 0, so the advance delta is exactly 1.0.
	g.agent = Agent{Column: 3, Row: 1}
	g.traffic.cars = []Car{{ID: 0, Lane: 0, Position: 2.2, Velocity: 1.0}}

	events := g.Step()

	if g.Phase() != PhaseLose {
		t.Fatalf("phase = %s, expected lose", g.Phase())
	}

	want := []core.Event{core.EventHit, core.EventLose}
	if len(events) != len(want) || events[0] != want[0] || events[1] != want[1] {
		t.Errorf("events = %v, expected %v", events, want)
	}
}

func TestContinueWhenCarIsFar(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.SubmitRestart()

	g.agent = Agent{Column: 3, Row: 1}
	g.traffic.cars = []Car{{ID: 0, Lane: 0, Position: 4.0, Velocity: 1.0}}

	if events := g.Step(); events != nil {
		t.Errorf("events = %v, expected none", events)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s, expected playing", g.Phase())
	}
}

func TestHopIntoCarLosesImmediately(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.SubmitRestart()

	g.agent = Agent{Column: 3, Row: 2}
	g.traffic.cars = []Car{{ID: 0, Lane: 0, Position: 3.1, Velocity: 1.0}}

	events := g.SubmitDirection(DirUp) // Hop into lane 0, under the car

	if g.Phase() != PhaseLose {
		t.Fatalf("phase = %s, expected lose", g.Phase())
	}
	want := []core.Event{core.EventHop, core.EventHit, core.EventLose}
	if len(events) != len(want) {
		t.Fatalf("events = %v, expected %v", events, want)
	}
}

func TestScoreStreakAcrossWins(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	winOnce := func() {
		g.SubmitRestart()
		clearRoad(g)
		g.agent = Agent{Column: 3, Row: 1}
		g.SubmitDirection(DirUp)
	}

	winOnce()
	if g.Score() != 1 {
		t.Fatalf("score after first win = %d, expected 1", g.Score())
	}

	// Restart from win keeps the streak
	winOnce()
	if g.Score() != 2 {
		t.Fatalf("score after second win = %d, expected 2", g.Score())
	}

	// A collision ends the round; the following restart zeroes the streak
	g.SubmitRestart()
	g.agent = Agent{Column: 3, Row: 1}
	g.traffic.cars = []Car{{ID: 0, Lane: 0, Position: 2.2, Velocity: 1.0}}
	g.Step()
	if g.Phase() != PhaseLose {
		t.Fatalf("phase = %s, expected lose", g.Phase())
	}

	g.SubmitRestart()
	if g.Score() != 0 {
		t.Errorf("score after restart from lose = %d, expected 0", g.Score())
	}
	if g.HighScore() != 2 {
		t.Errorf("high score = %d, expected 2", g.HighScore())
	}
}

func TestHighScoreOnlyImproves(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.SetHighScore(5)

	g.SubmitRestart()
	clearRoad(g)
	g.agent = Agent{Column: 3, Row: 1}
	g.SubmitDirection(DirUp)

	if g.HighScore() != 5 {
		t.Errorf("high score = %d, a score of 1 must not lower the stored 5", g.HighScore())
	}

	g.SetHighScore(3)
	if g.HighScore() != 5 {
		t.Errorf("SetHighScore(3) lowered the high score to %d", g.HighScore())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(testConfig())
		g.SubmitRestart()
		for i := 0; i < 200; i++ {
			g.Step()
			if g.Phase() != PhasePlaying {
				break
			}
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1.Tick != s2.Tick || s1.Phase != s2.Phase || s1.Score != s2.Score {
		t.Fatalf("runs diverged: %+v vs %+v", s1, s2)
	}
	for i := range s1.Cars {
		if s1.Cars[i] != s2.Cars[i] {
			t.Errorf("car %d diverged: %+v vs %+v", i, s1.Cars[i], s2.Cars[i])
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.SubmitRestart()

	snap := g.Snapshot()
	if len(snap.Cars) == 0 {
		t.Fatal("snapshot should carry the car set")
	}

	snap.Cars[0].Position = -99
	if g.traffic.Cars()[0].Position == -99 {
		t.Error("mutating a snapshot must not affect the live game")
	}
}

func TestRenderProducesBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.SubmitRestart()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("Render should draw something to the screen")
	}
}
