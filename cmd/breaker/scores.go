package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breaker/internal/platform/tui"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

var flagScoresTable bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs, ordered by score then duration.

Examples:
  breaker scores
  breaker scores --table`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - TUI Breaker")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breaker play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Duration", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "--------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, entry.Score, fmt.Sprintf("%.1fs", entry.DurationSecs), dateStr)
	}

	fmt.Println()
	best, err := store.BestRun()
	if err == nil && best != nil {
		fmt.Printf("Best: %d in %.1fs\n", best.Score, best.DurationSecs)
	}
}
