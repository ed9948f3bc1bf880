package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func saveRun(t *testing.T, store *Store, run Run) int64 {
	t.Helper()
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{GameID: "crawl", Score: 42}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("crawl")
	if err != nil || high != 42 {
		t.Errorf("HighScore() = %d, %v; want 42", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, Run{GameID: "crawl", Score: 100, Distance: 100.5, TopSpeed: 0.2, Duration: 90 * time.Second})
	saveRun(t, store, Run{GameID: "crawl", Score: 50, Distance: 50.2, TopSpeed: 0.15, Duration: 1500 * time.Millisecond})
	saveRun(t, store, Run{GameID: "crawl", Score: 200, Distance: 200.9, TopSpeed: 0.3, Duration: 2 * time.Minute})
	saveRun(t, store, Run{GameID: "crawl_neon", Score: 500})

	runs, err := store.TopRuns("crawl", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	wantScores := []int{200, 100, 50}
	for i, want := range wantScores {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, want %d", i, runs[i].Score, want)
		}
		if runs[i].GameID != "crawl" {
			t.Errorf("runs[%d].GameID = %q", i, runs[i].GameID)
		}
	}

	best := runs[0]
	if best.Distance != 200.9 || best.TopSpeed != 0.3 || best.Duration != 2*time.Minute {
		t.Errorf("best run fields not round-tripped: %+v", best)
	}
	if runs[2].Duration != time.Second {
		t.Errorf("duration should be stored in whole seconds, got %v", runs[2].Duration)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	neon, err := store.TopRuns("crawl_neon", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(neon) != 1 {
		t.Errorf("Expected 1 neon run, got %d", len(neon))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		saveRun(t, store, Run{GameID: "crawl", Score: (i + 1) * 100})
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"explicit", 3, 3},
		{"default", 0, 10},
		{"negative", -1, 10},
		{"more than stored", 50, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := store.TopRuns("crawl", tt.limit)
			if err != nil {
				t.Fatalf("TopRuns() failed: %v", err)
			}
			if len(runs) != tt.want {
				t.Errorf("len = %d, want %d", len(runs), tt.want)
			}
			if runs[0].Score != 1500 {
				t.Errorf("first score = %d, want 1500", runs[0].Score)
			}
		})
	}
}

func TestStoreTopRunsTieBreak(t *testing.T) {
	store := openTestStore(t)

	first := saveRun(t, store, Run{GameID: "crawl", Score: 70})
	saveRun(t, store, Run{GameID: "crawl", Score: 70})

	runs, err := store.TopRuns("crawl", 1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if runs[0].ID != first {
		t.Errorf("tie went to run %d, want earlier run %d", runs[0].ID, first)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("crawl")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveRun(t, store, Run{GameID: "crawl", Score: 100})
	saveRun(t, store, Run{GameID: "crawl", Score: 300})
	saveRun(t, store, Run{GameID: "crawl", Score: 200})

	high, err = store.HighScore("crawl")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, Run{GameID: "crawl", Score: 100})
	saveRun(t, store, Run{GameID: "crawl", Score: 200})
	saveRun(t, store, Run{GameID: "crawl_neon", Score: 300})

	if err := store.ClearRuns("crawl"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("crawl", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 crawl runs after clear, got %d", len(runs))
	}

	neon, _ := store.TopRuns("crawl_neon", 10)
	if len(neon) != 1 {
		t.Errorf("crawl_neon runs should not be affected by clearing crawl")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("crawl")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	saveRun(t, store, Run{GameID: "crawl", Score: 100, Distance: 100, TopSpeed: 0.2, Duration: 10 * time.Second})
	saveRun(t, store, Run{GameID: "crawl", Score: 300, Distance: 300, TopSpeed: 0.4, Duration: 30 * time.Second})

	stats, err := store.GameStats("crawl")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, want 2", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalDistance != 400 {
		t.Errorf("TotalDistance = %v, want 400", stats.TotalDistance)
	}
	if stats.BestSpeed != 0.4 {
		t.Errorf("BestSpeed = %v, want 0.4", stats.BestSpeed)
	}
	if stats.TotalPlayTime != 40*time.Second {
		t.Errorf("TotalPlayTime = %v, want 40s", stats.TotalPlayTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, Run{GameID: "crawl", Score: 10})
	saveRun(t, store, Run{GameID: "crawl", Score: 20})
	saveRun(t, store, Run{GameID: "crawl_neon", Score: 5})

	all, err := store.AllGamesStats()
	if err != nil {
		t.Fatalf("AllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all["crawl"].RunsCount != 2 || all["crawl"].HighScore != 20 {
		t.Errorf("crawl stats = %+v", all["crawl"])
	}
	if all["crawl_neon"].RunsCount != 1 {
		t.Errorf("crawl_neon stats = %+v", all["crawl_neon"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.crawl/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".crawl", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
