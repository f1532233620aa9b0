package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/nightwalk/internal/core"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("nightwalk", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("nightwalk", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("nightwalk", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("park", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for nightwalk
	scores, err := store.TopScores("nightwalk", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for park
	parkScores, err := store.TopScores("park", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(parkScores) != 1 {
		t.Errorf("Expected 1 park score, got %d", len(parkScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("nightwalk")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("nightwalk", 100)
	store.SaveScore("nightwalk", 300)
	store.SaveScore("nightwalk", 200)

	high, err = store.HighScore("nightwalk")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("nightwalk", 100)
	store.SaveScore("nightwalk", 200)
	store.SaveScore("park", 300)

	// Clear only nightwalk scores
	err = store.ClearScores("nightwalk")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Nightwalk should be empty
	walkScores, _ := store.TopScores("nightwalk", 10)
	if len(walkScores) != 0 {
		t.Errorf("Expected 0 nightwalk scores after clear, got %d", len(walkScores))
	}

	// Park should still have scores
	parkScores, _ := store.TopScores("park", 10)
	if len(parkScores) != 1 {
		t.Errorf("Park scores should not be affected by clearing nightwalk")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run := core.RunSummary{
		Score:           1234,
		Outcome:         "victory",
		Transformations: 1,
		Disabled:        5,
		DurationMs:      93500,
		Catalog:         "UCLA",
	}
	id, err := store.SaveRun("nightwalk", "alice", run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for saved run")
	}

	want := RunEntry{
		ID:              id,
		GameID:          "nightwalk",
		Player:          "alice",
		Score:           1234,
		Outcome:         "victory",
		Transformations: 1,
		Disabled:        5,
		DurationMs:      93500,
		Catalog:         "UCLA",
	}
	got.CreatedAt = want.CreatedAt
	if *got != want {
		t.Errorf("RunByID() = %+v, want %+v", *got, want)
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID(42)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for missing run, got %+v", got)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("nightwalk", "alice", core.RunSummary{Score: i, Outcome: "defeat"})
	}
	store.SaveRun("park", "alice", core.RunSummary{Score: 99, Outcome: "quit"})

	runs, err := store.RecentRuns("nightwalk", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Newest first; saves within one second tie on created_at
	if runs[0].Score != 4 || runs[1].Score != 3 || runs[2].Score != 2 {
		t.Errorf("Runs not newest first: %+v", runs)
	}
	for _, r := range runs {
		if r.GameID != "nightwalk" {
			t.Errorf("RecentRuns(nightwalk) returned %s run", r.GameID)
		}
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 runs across games, got %d", len(all))
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("nightwalk", "alice", core.RunSummary{Score: 10, Outcome: "defeat"})
	store.SaveRun("park", "alice", core.RunSummary{Score: 20, Outcome: "quit"})
	store.SaveRun("nightwalk", "bob", core.RunSummary{Score: 30, Outcome: "victory"})

	runs, err := store.PlayerRuns("alice", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for alice, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Player != "alice" {
			t.Errorf("PlayerRuns(alice) returned run of %q", r.Player)
		}
	}

	none, err := store.PlayerRuns("carol", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no runs for carol, got %d", len(none))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("nightwalk", 100)
	store.SaveScore("nightwalk", 300)
	store.SaveRun("nightwalk", "", core.RunSummary{Score: 100, Outcome: "defeat"})
	store.SaveRun("nightwalk", "", core.RunSummary{Score: 300, Outcome: "victory"})

	stats, err := store.GetGameStats("nightwalk")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.HighScore != 300 || stats.GamesCount != 2 || stats.TotalScore != 400 {
		t.Errorf("Unexpected score stats: %+v", stats)
	}
	if stats.Runs != 2 || stats.Victories != 1 {
		t.Errorf("Expected 2 runs and 1 victory, got %d and %d", stats.Runs, stats.Victories)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("nightwalk", "", core.RunSummary{Outcome: "quit"})
	store.SaveRun("park", "", core.RunSummary{Outcome: "quit"})

	if err := store.ClearRuns("nightwalk"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	walk, _ := store.RecentRuns("nightwalk", 10)
	if len(walk) != 0 {
		t.Errorf("Expected 0 nightwalk runs after clear, got %d", len(walk))
	}
	park, _ := store.RecentRuns("park", 10)
	if len(park) != 1 {
		t.Errorf("Park runs should not be affected by clearing nightwalk")
	}
}
