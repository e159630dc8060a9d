package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

func run(level int, d time.Duration) RunEntry {
	return RunEntry{Level: level, Duration: d}
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

func TestStoreSaveRunGeneratesID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunEntry{Level: 1, Duration: 42 * time.Second, Deaths: 3, Seed: 7})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	runs, err := store.TopTimes(1, 10)
	if err != nil {
		t.Fatalf("TopTimes() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != id || got.Duration != 42*time.Second || got.Deaths != 3 || got.Seed != 7 {
		t.Errorf("Stored run = %+v", got)
	}
}

func TestStoreSaveRunKeepsID(t *testing.T) {
	store := openTestStore(t)

	id := uuid.NewString()
	got, err := store.SaveRun(RunEntry{ID: id, Level: 2, Duration: time.Second})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != id {
		t.Errorf("SaveRun() = %q, expected %q", got, id)
	}

	if _, err := store.SaveRun(RunEntry{ID: id, Level: 2, Duration: time.Second}); err == nil {
		t.Error("Expected duplicate ID to fail")
	}
}

func TestStoreSaveRunRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		run  RunEntry
	}{
		{"zero level", run(0, time.Second)},
		{"negative level", run(-1, time.Second)},
		{"zero duration", run(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveRun(tt.run); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestStoreTopTimesOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{30, 10, 50, 20, 40} {
		if _, err := store.SaveRun(run(1, time.Duration(s)*time.Second)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun(run(2, 5*time.Second))

	runs, err := store.TopTimes(1, 3)
	if err != nil {
		t.Fatalf("TopTimes() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	expected := []time.Duration{10 * time.Second, 20 * time.Second, 30 * time.Second}
	for i, d := range expected {
		if runs[i].Duration != d {
			t.Errorf("runs[%d].Duration = %v, expected %v", i, runs[i].Duration, d)
		}
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	_, ok, err := store.BestTime(1)
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if ok {
		t.Error("Expected no best time for an empty level")
	}

	store.SaveRun(run(1, 40*time.Second))
	store.SaveRun(run(1, 25*time.Second))
	store.SaveRun(run(1, 33*time.Second))

	best, ok, err := store.BestTime(1)
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if !ok || best != 25*time.Second {
		t.Errorf("BestTime(1) = %v, %v, expected 25s", best, ok)
	}
}

func TestStoreBestTimes(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run(1, 40*time.Second))
	store.SaveRun(run(1, 35*time.Second))
	store.SaveRun(run(3, 90*time.Second))

	best, err := store.BestTimes()
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(best))
	}
	if best[1] != 35*time.Second || best[3] != 90*time.Second {
		t.Errorf("BestTimes() = %v", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run(1, time.Second))
	store.SaveRun(run(1, 2*time.Second))
	store.SaveRun(run(2, 3*time.Second))

	// Clear only level 1
	if err := store.ClearRuns(1); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopTimes(1, 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	runs, _ = store.TopTimes(2, 10)
	if len(runs) != 1 {
		t.Errorf("Level 2 runs should not be affected by clearing level 1")
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetLevelStats(1)
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(RunEntry{Level: 1, Duration: 10 * time.Second, Deaths: 2})
	store.SaveRun(RunEntry{Level: 1, Duration: 20 * time.Second, Deaths: 1})

	stats, err = store.GetLevelStats(1)
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.Best != 10*time.Second {
		t.Errorf("Best = %v, expected 10s", stats.Best)
	}
	if stats.Average != 15*time.Second {
		t.Errorf("Average = %v, expected 15s", stats.Average)
	}
	if stats.Deaths != 3 {
		t.Errorf("Deaths = %d, expected 3", stats.Deaths)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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
