// breaker is a TUI brick-breaker game for the terminal.
//
// Usage:
//
//	breaker play             - Play the game
//	breaker serve            - Start SSH server for remote play
//	breaker scores           - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.breaker/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at release build time.
var version = "dev"

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
	Use:   "breaker",
	Short: "TUI Breaker - Break bricks in your terminal",
	Long: `TUI Breaker is a terminal brick-breaker: bounce the ball off your
paddle, clear every brick, and catch the falling power-ups.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  breaker play
  breaker play --difficulty hard
  breaker serve --ssh :2222
  breaker scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breaker/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the breaker version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("breaker %s\n", version)
	},
}
