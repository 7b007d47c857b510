package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/platform/tui"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the brick breaker in this terminal.

Controls:
  A/H/Left    - Move paddle left
  D/L/Right   - Move paddle right
  Space/Enter - Start, or play again after a round ends
  Ctrl+S      - Save a screenshot to ~/.bricks/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5 lives, wide paddle, slow balls
  normal - Config values
  hard   - 2 lives, narrow paddle, fast balls

Examples:
  bricks play
  bricks play --difficulty easy
  bricks play --seed 42 --log-file bricks.log --debug
  bricks play --config ./my-bricks.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Warnings before the game starts go to stderr
	warn := log.NewWithOptions(os.Stderr, log.Options{Prefix: "bricks"})
	if flagDebug {
		warn.SetLevel(log.DebugLevel)
	}

	// The game owns the terminal, so session logs need a file
	logger, closeLog, err := newLogger(io.Discard, "bricks")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := loadGameConfig(warn)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		warn.Warn("could not open scores database, scores will not be saved", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
	})
}
