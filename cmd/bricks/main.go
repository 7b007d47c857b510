// bricks is a brick breaker for the terminal.
//
// Usage:
//
//	bricks play              - Play a round in this terminal
//	bricks scores            - Show the score history
//	bricks serve             - Start SSH server for remote play
//	bricks config            - Print the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bricks/scores.db)
//	--config <path>       - Load a custom YAML or TOML config
//	--difficulty <preset> - easy, normal or hard
//	--debug               - Log at debug level
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - A brick breaker in your terminal",
	Long: `Bricks is a terminal brick breaker. Keep the balls in play with the
paddle and clear the wall of blocks. Blue blocks release an extra ball
when they break.

Available commands:
  play     - Play a round in this terminal
  scores   - View the score history
  serve    - Start SSH server for remote play
  config   - Print the default config

Examples:
  bricks play
  bricks play --difficulty hard
  bricks scores -i
  bricks serve --ssh :2222
  bricks config > ~/.bricks/configs/breakout.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bricks/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadGameConfig loads the game config and applies the difficulty preset.
// A broken config file falls back to the defaults with a warning.
func loadGameConfig(logger *log.Logger) config.BreakoutConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			logger.Warn("unknown difficulty, keeping config values", "difficulty", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	logger.Debug("config loaded",
		"lives", cfg.Gameplay.Lives,
		"ball_speed", cfg.Ball.Speed,
		"paddle_width", cfg.Player.Width,
	)
	return cfg
}
