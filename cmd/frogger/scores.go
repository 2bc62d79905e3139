package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded high scores",
	Long: `Display the best recorded runs.

By default opens an interactive scoreboard. Use --plain for a simple
text listing suitable for scripts.

Examples:
  frogger scores
  frogger scores --plain
  frogger scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text instead of an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All recorded runs deleted.")
		return
	}

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes a plain-text score listing to stdout.
func printScores(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Frogger")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'frogger play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "-------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, entry.Score, entry.Outcome, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
