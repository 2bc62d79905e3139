// Package frogger implements the road-crossing game: a frog must hop across
// a multi-lane roadway of moving cars to reach the goal row without being
// run over. The package contains pure game logic with no TUI dependencies;
// the platform layer drives it with ticks and feeds it directional input.
package frogger

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// GameID keys score storage and logs.
const GameID = "frogger"

// Package-level config selection, applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game owns the complete game model: grid, frog, traffic, phase and scores.
// It is not safe for concurrent use; the platform's single event loop calls
// Step on each tick and SubmitDirection/SubmitRestart synchronously as input
// arrives, so no two methods ever run at once.
type Game struct {
	conf       config.FroggerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	grid    Grid
	agent   Agent
	traffic *Traffic

	phase     Phase
	score     int
	highScore int
	tick      uint64
}

// New creates a new game. Call Reset before use.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset initializes a fresh game: phase Waiting, score 0, frog at the start
// position, and a new car batch ready behind the start overlay. The in-memory
// high score is cleared; the platform seeds it from storage via SetHighScore.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	conf, err := config.LoadFrogger(configPath)
	if err != nil {
		conf = config.DefaultFroggerConfig()
	}
	config.ApplyFroggerPreset(&conf, config.DifficultyPreset(difficultyPreset))

	g.conf = conf
	g.difficulty = config.NewDifficultyManager(conf.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.grid = NewGrid(conf.Board.Columns, conf.Board.Lanes)
	g.agent = startAgent(g.grid)
	g.traffic = NewTraffic(g.grid, conf.Traffic, conf.Board.CarsPerLane, g.rng)
	g.phase = PhaseWaiting
	g.score = 0
	g.highScore = 0
	g.tick = 0
}

// SubmitRestart handles the explicit start/restart action. It is honored only
// in Waiting, Win or Lose; in Playing it is ignored. The frog returns to the
// start position, the car batch is regenerated and the phase becomes Playing.
//
// Score policy: a restart from Waiting or Lose zeroes the score; a restart
// from Win keeps it, so consecutive crossings in one session accumulate a
// streak that a single splat ends.
func (g *Game) SubmitRestart() bool {
	if !g.phase.CanRestart() {
		return false
	}

	if g.phase == PhaseWaiting || g.phase == PhaseLose {
		g.score = 0
	}

	g.agent = startAgent(g.grid)
	g.traffic = NewTraffic(g.grid, g.conf.Traffic, g.conf.Board.CarsPerLane, g.rng)
	g.phase = PhasePlaying
	return true
}

// SubmitDirection handles one directional input, synchronously, independent
// of the tick. Input outside the Playing phase is ignored. A committed hop
// emits EventHop and is immediately evaluated against the current car
// positions: hopping onto the goal row wins on the spot, hopping under a car
// loses on the spot.
func (g *Game) SubmitDirection(d Direction) []core.Event {
	if g.phase != PhasePlaying {
		return nil
	}

	if !g.agent.Move(d, g.grid) {
		return nil
	}

	events := []core.Event{core.EventHop}
	outcome := Evaluate(g.agent, g.traffic, g.grid, g.conf.Collision.OverlapThreshold)
	return append(events, g.resolve(outcome)...)
}

// Step runs one tick transaction: advance every car, then evaluate the frog
// against that same advanced snapshot. The two halves never interleave with
// an external read, which rules out the one-tick collision miss a stale
// obstacle list would cause. Outside the Playing phase Step does nothing, so
// a tick that straggles in after a same-tick Win/Lose resolution is inert.
func (g *Game) Step() []core.Event {
	if g.phase != PhasePlaying {
		return nil
	}

	g.tick++

	delta := g.difficulty.Speed(1.0, g.score, int(g.tick))
	g.traffic.Advance(delta)

	outcome := Evaluate(g.agent, g.traffic, g.grid, g.conf.Collision.OverlapThreshold)
	return g.resolve(outcome)
}

// resolve applies an outcome to the phase machine and does the score and
// high-score bookkeeping. Returns the events the transition produced.
func (g *Game) resolve(outcome Outcome) []core.Event {
	switch outcome {
	case OutcomeWin:
		g.phase = PhaseWin
		g.score++
		if g.score > g.highScore {
			g.highScore = g.score
		}
		return []core.Event{core.EventWin}

	case OutcomeLose:
		g.phase = PhaseLose
		if g.score > g.highScore {
			g.highScore = g.score
		}
		return []core.Event{core.EventHit, core.EventLose}
	}

	return nil
}

// Phase returns the current game phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current crossing streak.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen, including the stored seed value.
func (g *Game) HighScore() int {
	return g.highScore
}

// SetHighScore seeds the high score from persisted state. Lower values than
// the current high score are ignored.
func (g *Game) SetHighScore(v int) {
	if v > g.highScore {
		g.highScore = v
	}
}

// Grid returns the board layout.
func (g *Game) Grid() Grid {
	return g.grid
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Phase: %s, Score: %d, High: %d\n", g.tick, g.phase, g.score, g.highScore))
	b.WriteString(fmt.Sprintf("Frog: (%d, %d)\n", g.agent.Column, g.agent.Row))
	for _, c := range g.traffic.Cars() {
		b.WriteString(fmt.Sprintf("Car %d: lane %d pos %.2f vel %.3f\n", c.ID, c.Lane, c.Position, c.Velocity))
	}
	return b.String()
}
