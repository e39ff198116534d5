package storage

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("3x3", 900, 10); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("3x3")
	if err != nil || high != 900 {
		t.Errorf("HighScore() = %d, %v; want 900", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, moves int }{{800, 20}, {500, 50}, {900, 10}} {
		if _, err := store.SaveScore("3x3", s.score, s.moves); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("5x5", 400, 60); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("3x3", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{900, 800, 500}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Moves != 10 {
		t.Errorf("Expected 10 moves on best score, got %d", scores[0].Moves)
	}
	if scores[0].GameID != "3x3" {
		t.Errorf("GameID = %q", scores[0].GameID)
	}

	other, err := store.TopScores("5x5", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 5x5 score, got %d", len(other))
	}
}

func TestStoreTopScoresTieBreaksOnMoves(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("4x4", 700, 30)
	store.SaveScore("4x4", 700, 12)

	scores, err := store.TopScores("4x4", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Moves != 12 {
		t.Errorf("Expected fewer moves first, got %d", scores[0].Moves)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100, 10)
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

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopScores(0) = %d entries, %v", len(all), err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("3x3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("3x3", 100, 90)
	store.SaveScore("3x3", 300, 70)
	store.SaveScore("3x3", 200, 80)

	high, err = store.HighScore("3x3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("3x3", 100, 1)
	store.SaveScore("3x3", 200, 1)
	store.SaveScore("4x4", 300, 1)

	// Clear only 3x3 scores
	if err := store.ClearScores("3x3"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("3x3", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 3x3 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("4x4", 10)
	if len(other) != 1 {
		t.Errorf("4x4 scores should not be affected by clearing 3x3")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("3x3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("3x3", 900, 10)
	store.SaveScore("3x3", 700, 30)

	stats, err = store.GetGameStats("3x3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 900 || stats.BestMoves != 10 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 800 {
		t.Errorf("AvgScore = %v, want 800", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreScoredGames(t *testing.T) {
	store := openTestStore(t)

	ids, err := store.ScoredGames()
	if err != nil {
		t.Fatalf("ScoredGames() failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no games, got %v", ids)
	}

	store.SaveScore("4x4", 500, 12)
	store.SaveScore("2x6", 800, 4)
	store.SaveScore("4x4", 600, 9)

	ids, err = store.ScoredGames()
	if err != nil {
		t.Fatalf("ScoredGames() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "2x6" || ids[1] != "4x4" {
		t.Errorf("ScoredGames() = %v, want [2x6 4x4]", ids)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/nested/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created under the home directory
	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/a/b.db", filepath.Join(home, "a", "b.db")},
		{"~bob/b.db", "~bob/b.db"},
		{"/tmp/x.db", "/tmp/x.db"},
		{"rel.db", "rel.db"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
