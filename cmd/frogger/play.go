package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/sound"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session in the current terminal.

Controls:
  Arrows/WASD/HJKL - Hop in a direction
  Enter/Space/R    - Start a round (and restart after it ends)
  M                - Toggle sound
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  frogger play
  frogger play --difficulty hard
  frogger play --seed 42
  frogger play --config ./my-frogger.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	frogger.SetConfigPath(flagConfig)
	frogger.SetDifficultyPreset(flagDifficulty)
	game := frogger.New()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Audio is optional, a failed speaker just means a silent game
	var sounds *sound.Player
	if !flagNoSound {
		sounds, _ = sound.NewPlayer()
	}

	runErr := tui.Run(game, store, sounds, cfg)

	if sounds != nil {
		sounds.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
