package storage

import (
	"os"
	"path/filepath"
	"testing"
)

// openMemory opens an in-memory store that is closed when the test ends.
func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", MemoryDSN, err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreMemoryKeepsRowsAcrossQueries(t *testing.T) {
	store := openMemory(t)

	if _, err := store.SaveScore(ScoreEntry{Player: "alice", Score: 64}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// A second query must see the same in-memory database
	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("Expected 1 score, got %d", len(scores))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openMemory(t)

	entries := []ScoreEntry{
		{Player: "alice", Score: 100, MaxTile: 16, Moves: 20},
		{Player: "bob", Score: 50, MaxTile: 8, Moves: 12},
		{Player: "alice", Score: 200, MaxTile: 32, Moves: 31},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Player != "alice" || scores[0].MaxTile != 32 || scores[0].Moves != 31 {
		t.Errorf("Top entry fields not round-tripped: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openMemory(t)

	for i := range 5 {
		store.SaveScore(ScoreEntry{Player: "p", Score: (i + 1) * 100})
	}
	first, _ := store.SaveScore(ScoreEntry{Player: "early", Score: 500})
	store.SaveScore(ScoreEntry{Player: "late", Score: 500})

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Equal scores keep insertion order
	if scores[0].Player != "p" || scores[1].ID != first || scores[2].Player != "late" {
		t.Errorf("Ties not ordered by insertion: %+v", scores)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openMemory(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	store.SaveScore(ScoreEntry{Player: "a", Score: 100, MaxTile: 16, Moves: 10})
	store.SaveScore(ScoreEntry{Player: "b", Score: 300, MaxTile: 64, Moves: 30})
	store.SaveScore(ScoreEntry{Player: "c", Score: 200, MaxTile: 32, Moves: 20})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 300 || stats.BestTile != 64 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalMoves != 60 {
		t.Errorf("Unexpected averages: %+v", stats)
	}
}

func TestStoreClear(t *testing.T) {
	store := openMemory(t)

	store.SaveScore(ScoreEntry{Player: "a", Score: 100})
	store.SaveScore(ScoreEntry{Player: "b", Score: 200})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}
