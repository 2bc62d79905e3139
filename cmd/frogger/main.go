// frogger is a terminal road-crossing arcade game.
//
// Usage:
//
//	frogger play             - Play the game
//	frogger scores           - Show recorded high scores
//	frogger serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 18)
//	--seed <value>  - Set RNG seed for reproducible traffic
//	--db <path>     - Set database path (default: ~/.frogger/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the road in your terminal",
	Long: `Frogger is a terminal arcade game. Guide the frog from the bottom
of the screen across lanes of moving traffic to the goal row.

Available commands:
  play     - Play the game
  scores   - View recorded high scores
  serve    - Start SSH server for remote play

Examples:
  frogger play
  frogger play --difficulty hard
  frogger play --seed 42
  frogger scores
  frogger serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 18, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.frogger/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
