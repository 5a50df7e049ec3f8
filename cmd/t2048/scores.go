package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores recorded at storage.dsn.

The default DSN is ":memory:", which keeps scores only while a game or
server runs. Point storage.dsn at a file to keep them between runs.

Examples:
  t2048 scores
  t2048 scores --config ./t2048.yaml
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Storage.DSN == storage.MemoryDSN {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("storage.dsn is \":memory:\"; set it to a file path to keep scores between runs.")
		return
	}

	store, err := openStore(cfg.Storage.DSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if err := printScores(os.Stdout, store, cfg.Storage.LeaderboardSize); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top limit scores, aggregate stats and the best score.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - 2048")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 't2048 play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-7s  %-5s  %s\n", "Rank", "Player", "Score", "MaxTile", "Moves", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-7s  %-5s  %s\n", "----", "------", "-----", "-------", "-----", "----")

	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-12s  %-8d  %-7d  %-5d  %s\n",
			i+1, e.Player, e.Score, e.MaxTile, e.Moves, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Average: %.1f  Best tile: %d  Moves: %d\n",
		stats.GamesCount, stats.AvgScore, stats.BestTile, stats.TotalMoves)

	highScore, err := store.HighScore()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Best: %d\n", highScore)

	return nil
}
