package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turkey-shoot/internal/core"
	"github.com/vovakirdan/turkey-shoot/internal/game"
	"github.com/vovakirdan/turkey-shoot/internal/platform/tui"
	"github.com/vovakirdan/turkey-shoot/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  A/D or arrows  - Move
  Space          - Fire
  P              - Pause
  Enter          - Confirm / menu select
  Q/Ctrl+C       - Quit

Difficulty presets:
  easy    - 5 lives, relaxed enemy speed and spawn rate
  medium  - 3 lives, faster and denser waves
  hard    - 2 lives, everything cranked up

Passing --difficulty skips the menu and starts the run immediately.

Examples:
  turkeyshoot play
  turkeyshoot play --difficulty hard
  turkeyshoot play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
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

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	g := game.New()

	// Scores are best-effort; play continues without persistence.
	store, err := storage.Open(flagDBPath, 10)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
	} else {
		g.SetStore(store)
		defer store.Close()
	}

	if err := tui.Run(g, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
