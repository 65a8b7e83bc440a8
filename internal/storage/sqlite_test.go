package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entries := []ScoreEntry{
		{GameID: "2048", Score: 1200, MaxTile: 128, Moves: 150},
		{GameID: "2048", Score: 500, MaxTile: 64, Moves: 80},
		{GameID: "2048", Score: 21000, MaxTile: 2048, Moves: 940, Won: true},
		{GameID: "2048_sim", Score: 3000, MaxTile: 256, Moves: 300},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore(%+v) failed: %v", e, err)
		}
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 21000 || scores[1].Score != 1200 || scores[2].Score != 500 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}

	top := scores[0]
	if top.MaxTile != 2048 || top.Moves != 940 || !top.Won {
		t.Errorf("Top entry fields not round-tripped: %+v", top)
	}
	if scores[1].Won {
		t.Error("Second entry should not be marked as won")
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{GameID: "test", Score: (i + 1) * 100})
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore(ScoreEntry{GameID: "2048", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "2048", Score: 300})
	store.SaveScore(ScoreEntry{GameID: "2048", Score: 200})

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("2048")
	if err != nil {
		t.Fatalf("Stats() on empty table failed: %v", err)
	}
	if empty != (Stats{}) {
		t.Errorf("Stats() on empty table = %+v, want zero value", empty)
	}

	store.SaveScore(ScoreEntry{GameID: "2048", Score: 100, MaxTile: 16})
	store.SaveScore(ScoreEntry{GameID: "2048", Score: 300, MaxTile: 2048, Won: true})
	store.SaveScore(ScoreEntry{GameID: "2048", Score: 200, MaxTile: 32})

	st, err := store.Stats("2048")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := Stats{Games: 3, Wins: 1, BestScore: 300, BestTile: 2048, AvgScore: 200}
	if st != want {
		t.Errorf("Stats() = %+v, want %+v", st, want)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "2048", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "2048", Score: 200})
	store.SaveScore(ScoreEntry{GameID: "2048_sim", Score: 300})

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("2048", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// Other game IDs are untouched
	simScores, _ := store.TopScores("2048_sim", 10)
	if len(simScores) != 1 {
		t.Errorf("Clearing one game should not affect another")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
