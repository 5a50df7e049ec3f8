// Package sim plays 2048 games without a terminal, using a greedy policy.
// It drives engine.Controller exactly as the UI does and reports per-game results.
package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// preference breaks ties between moves with equal immediate gain.
var preference = [...]engine.Direction{engine.Left, engine.Up, engine.Right, engine.Down}

// Config controls a simulation run.
type Config struct {
	Games  int
	Seed   int64 // Game i uses Seed+i
	Rules  engine.Config
	Logger *log.Logger // Optional; per-game results are logged at debug level
}

// Result summarizes one finished game.
type Result struct {
	Seed    int64
	Score   int
	MaxTile int
	Moves   int
}

// Summary aggregates a run.
type Summary struct {
	Results  []Result
	Spawned2 int
	Spawned4 int
}

// Spawn4Ratio returns the observed share of spawned 4s.
func (s Summary) Spawn4Ratio() float64 {
	total := s.Spawned2 + s.Spawned4
	if total == 0 {
		return 0
	}
	return float64(s.Spawned4) / float64(total)
}

// BestScore returns the highest score in the run.
func (s Summary) BestScore() int {
	best := 0
	for _, r := range s.Results {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// AvgScore returns the mean score in the run.
func (s Summary) AvgScore() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.Results {
		total += r.Score
	}
	return float64(total) / float64(len(s.Results))
}

// Run plays cfg.Games games to completion.
func Run(cfg Config) Summary {
	var summary Summary

	for i := range cfg.Games {
		rules := cfg.Rules
		rules.Seed = cfg.Seed + int64(i)
		c := engine.NewController(rules)

		state := c.NewGame()
		summary.count(state.Spawned)

		for !state.GameOver {
			state = c.ApplyMove(BestMove(state.Grid))
			summary.count(state.Spawned)
		}

		res := Result{
			Seed:    rules.Seed,
			Score:   state.Score,
			MaxTile: state.MaxTile,
			Moves:   state.Moves,
		}
		summary.Results = append(summary.Results, res)

		if cfg.Logger != nil {
			cfg.Logger.Debug("game finished", "seed", res.Seed, "score", res.Score, "max_tile", res.MaxTile, "moves", res.Moves)
		}
	}

	return summary
}

// count tallies spawned tile values.
func (s *Summary) count(tiles []engine.Tile) {
	for _, t := range tiles {
		switch t.Value {
		case 2:
			s.Spawned2++
		case 4:
			s.Spawned4++
		}
	}
}

// BestMove picks the grid-changing move with the largest immediate score gain.
// Ties go to the earlier direction in Left, Up, Right, Down order.
// On a terminal grid it returns Left, which the controller ignores.
func BestMove(g engine.Grid) engine.Direction {
	best := engine.Left
	bestGain := -1

	for _, dir := range preference {
		if !engine.CanSlide(g, dir) {
			continue
		}
		_, gained, _ := engine.Slide(g, dir)
		if gained > bestGain {
			best = dir
			bestGain = gained
		}
	}

	return best
}

// Print writes a per-game table and totals.
func Print(w io.Writer, s Summary) {
	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-8s  %s\n", "Game", "Seed", "Score", "MaxTile", "Moves")
	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-8s  %s\n", "----", "----", "-----", "-------", "-----")
	for i, r := range s.Results {
		fmt.Fprintf(w, "  %-4d  %-12d  %-8d  %-8d  %d\n", i+1, r.Seed, r.Score, r.MaxTile, r.Moves)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Average: %.1f\n", s.BestScore(), s.AvgScore())
	fmt.Fprintf(w, "Spawned: %d twos, %d fours (%.3f fours)\n", s.Spawned2, s.Spawned4, s.Spawn4Ratio())
}
