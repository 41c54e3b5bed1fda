package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/platform/tui"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the current terminal.

Controls:
  A/Left, D/Right - Move paddle
  Space           - Launch ball
  F               - Fire (with guns power-up)
  P/Esc           - Pause
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - 5 lives, wider paddle, slower ball
  normal - Default settings
  hard   - 2 lives, narrower paddle, faster ball

Examples:
  breaker play
  breaker play --difficulty easy
  breaker play --config ./my-breaker.yaml
  breaker play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadGameConfig resolves the game config from flags. Shared by play and
// serve.
func loadGameConfig() (config.BreakerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.BreakerConfig{}, err
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Terminal size determines the field dimensions
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(gameCfg, store, width, height, flagFPS, flagSeed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
