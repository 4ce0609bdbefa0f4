package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start the game in the current terminal.

Controls:
  A/D, Left/Right  - Steer the ship
  Space/W/Up       - Fire
  Enter            - Start a run from the menu
  Q/Ctrl+C         - Quit

Examples:
  invaders play
  invaders play --seed 42
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load gameplay tuning
	tuning, err := config.LoadInvaders(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Open score storage; fall back to a plain high-score file when the
	// database is unavailable
	var scores game.ScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, using high-score file", "error", err)
		scores = storage.NewFileStore(highScoreFilePath())
		store = nil
	} else {
		scores = store
	}

	g := game.New(tuning, scores)

	runErr := tui.Run(g, store, cfg, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// highScoreFilePath returns the fallback high-score file location.
func highScoreFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "highscore.txt"
	}
	return filepath.Join(home, ".invaders", "highscore.txt")
}
