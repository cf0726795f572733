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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestRecordCompletionKeepsBest(t *testing.T) {
	store := openTestStore(t)

	improved, err := store.RecordCompletion(3, 20)
	if err != nil {
		t.Fatalf("RecordCompletion() failed: %v", err)
	}
	if !improved {
		t.Error("first completion should be a new best")
	}

	improved, err = store.RecordCompletion(3, 25)
	if err != nil {
		t.Fatalf("RecordCompletion() failed: %v", err)
	}
	if improved {
		t.Error("worse completion should not be a new best")
	}

	improved, err = store.RecordCompletion(3, 12)
	if err != nil {
		t.Fatalf("RecordCompletion() failed: %v", err)
	}
	if !improved {
		t.Error("better completion should be a new best")
	}

	c, found, err := store.Completion(3)
	if err != nil {
		t.Fatalf("Completion() failed: %v", err)
	}
	if !found {
		t.Fatal("Completion(3) not found")
	}
	if c.BestMoves != 12 {
		t.Errorf("BestMoves = %d, expected 12", c.BestMoves)
	}
	if c.Completions != 3 {
		t.Errorf("Completions = %d, expected 3", c.Completions)
	}
}

func TestCompletionNotFound(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.Completion(7)
	if err != nil {
		t.Fatalf("Completion() failed: %v", err)
	}
	if found {
		t.Error("Completion(7) should not be found on an empty store")
	}
}

func TestCompletedLevelsOrderedAndReset(t *testing.T) {
	store := openTestStore(t)

	for _, lvl := range []int{12, 0, 25} {
		if _, err := store.RecordCompletion(lvl, 10+lvl); err != nil {
			t.Fatalf("RecordCompletion(%d) failed: %v", lvl, err)
		}
	}

	entries, err := store.CompletedLevels()
	if err != nil {
		t.Fatalf("CompletedLevels() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].LevelNumber != 0 || entries[1].LevelNumber != 12 || entries[2].LevelNumber != 25 {
		t.Errorf("entries not ordered by level number: %+v", entries)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	entries, err = store.CompletedLevels()
	if err != nil {
		t.Fatalf("CompletedLevels() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries after Reset, got %d", len(entries))
	}
}
