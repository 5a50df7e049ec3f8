package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game of 2048 in this terminal.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  N/R              - New game
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Finished games are added to the leaderboard shown on the game over screen.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --player alice`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name shown on the leaderboard (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(cfg.Log, "t2048", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Open score storage
	store, err := openStore(cfg.Storage.DSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	runErr := tui.Run(tui.ModelConfig{
		Rules:           rules(cfg),
		Player:          player,
		LeaderboardSize: cfg.Storage.LeaderboardSize,
	}, store, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
