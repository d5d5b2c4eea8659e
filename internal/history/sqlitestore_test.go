package history

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "mindscreen.db"))
	if err != nil {
		t.Fatalf("OpenSQLiteStore failed: %v", err)
	}
	defer store.Close()

	if _, present, err := store.Get(HistoryKey); err != nil || present {
		t.Fatalf("Expected absent key, got present=%v err=%v", present, err)
	}

	if err := store.Set(HistoryKey, `[{"id":"x"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, present, err := store.Get(HistoryKey)
	if err != nil || !present {
		t.Fatalf("Get failed: present=%v err=%v", present, err)
	}
	if value != `[{"id":"x"}]` {
		t.Errorf("Get = %q, want stored value", value)
	}

	// Set replaces, not appends.
	if err := store.Set(HistoryKey, "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, _, _ = store.Get(HistoryKey)
	if value != "[]" {
		t.Errorf("Get after overwrite = %q, want []", value)
	}
}

func TestRepositoryOverSQLite(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "mindscreen.db"))
	if err != nil {
		t.Fatalf("OpenSQLiteStore failed: %v", err)
	}
	defer store.Close()

	repo := NewRepository(store)
	saved := sampleResult(t)
	if err := repo.Append(saved); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	loaded := repo.Load()
	if len(loaded) != 1 || loaded[0].ID != saved.ID {
		t.Errorf("SQLite round trip failed: %+v", loaded)
	}
}
