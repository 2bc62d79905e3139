package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/sound"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// GameModel is the Bubble Tea model driving a single game session.
//
// The tick loop runs only while a round is in progress. Outside of it the
// model sits idle until a key arrives, so finished or not-yet-started games
// consume no CPU.
type GameModel struct {
	game     *frogger.Game
	screen   *core.Screen
	store    *storage.Store
	sounds   *sound.Player
	config   core.RuntimeConfig
	keys     *KeyMapper
	ticking  bool
	runSaved bool
	quitting bool
}

// NewGameModel creates a model for the given game. store and sounds may be
// nil, in which case persistence and audio are skipped.
func NewGameModel(game *frogger.Game, store *storage.Store, sounds *sound.Player, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		sounds: sounds,
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

// Init resets the game and seeds the in-memory high score from storage.
// No tick is armed here: the game waits for the player to start a round.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)

	if m.store != nil {
		if best, err := m.store.HighScore(); err == nil {
			m.game.SetHighScore(best)
		}
	}

	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input. Directional input is applied to the
// game immediately rather than being queued for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "m" && m.sounds != nil {
		m.sounds.SetMuted(!m.sounds.Muted())
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	// With a single screen there is nothing to go back to, so Esc leaves
	// the session like the quit keys do.
	if isQuit || action == core.ActionBack {
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := DirectionFor(action); ok {
		events := m.game.SubmitDirection(dir)
		m.dispatch(events)
		return m, nil
	}

	if action == core.ActionConfirm {
		if m.game.SubmitRestart() {
			m.runSaved = false
			if !m.ticking {
				m.ticking = true
				return m, tickCmd(m.config.TickRate)
			}
		}
	}

	return m, nil
}

// handleTick advances the simulation one tick. The tick chain is re-armed
// only while the round is still in progress.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Phase() != frogger.PhasePlaying {
		m.ticking = false
		return m, nil
	}

	events := m.game.Step()
	m.dispatch(events)

	if m.game.Phase() == frogger.PhasePlaying {
		return m, tickCmd(m.config.TickRate)
	}

	m.ticking = false
	return m, nil
}

// dispatch plays sounds for game events and persists finished runs.
func (m *GameModel) dispatch(events []core.Event) {
	for _, ev := range events {
		if m.sounds != nil {
			m.sounds.Play(ev)
		}

		switch ev {
		case core.EventWin:
			m.saveRun(storage.OutcomeWin)
		case core.EventLose:
			m.saveRun(storage.OutcomeLose)
		}
	}
}

// saveRun records the finished round once. Failures are ignored, the game
// keeps working without persistence.
func (m *GameModel) saveRun(outcome string) {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(m.game.Score(), outcome)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(game *frogger.Game, store *storage.Store, sounds *sound.Player, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, sounds, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
