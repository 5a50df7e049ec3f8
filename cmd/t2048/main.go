// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play     - Play locally
//	t2048 serve    - Start SSH server for remote play
//	t2048 sim      - Play greedy games headlessly and print results
//	t2048 scores   - Show the leaderboard stored at storage.dsn
//
// Global flags:
//
//	--config <path>     - Path to a custom YAML config
//	--seed <value>      - Set RNG seed for reproducible games
//	--log-level <level> - Override the configured log level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles on a 4x4 board. Equal tiles that collide merge into their
sum and add it to your score. The game ends when no move is left.

Available commands:
  play     - Play a game locally
  serve    - Start SSH server for remote play
  sim      - Run greedy games without a terminal
  scores   - Show the leaderboard (needs a file-backed storage.dsn)

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 serve --ssh :2222
  t2048 sim --games 100`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = configured seed, or random)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagSeed != 0 {
		cfg.Rules.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, nil
}

// openStore opens the leaderboard at the configured DSN, expanding a leading ~.
func openStore(dsn string) (*storage.Store, error) {
	path, err := config.ExpandHome(dsn)
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}

// rules converts the rules section to engine settings.
func rules(cfg config.Config) engine.Config {
	return engine.Config{
		Seed:                 cfg.Rules.Seed,
		SpawnOnUnchangedMove: cfg.Rules.SpawnOnUnchangedMove,
	}
}

// newLogger builds the application logger. With no log file configured,
// output goes to fallback. The returned closer releases the file, if any.
func newLogger(cfg config.LogConfig, prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}

	if cfg.File != "" {
		path, err := config.ExpandHome(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
