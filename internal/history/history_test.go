package history

import (
	"testing"

	"github.com/dotcommander/mindscreen/internal/catalog"
	"github.com/dotcommander/mindscreen/internal/result"
	"github.com/dotcommander/mindscreen/internal/types"
)

func sampleResult(t *testing.T) types.SurveyResult {
	t.Helper()
	answers := types.Answers{}
	for _, q := range catalog.AllQuestions() {
		answers[q.ID] = 1
	}
	return result.New(
		types.PatientInfo{Name: "홍길동", Birthdate: "1990-01-01"},
		result.BuildItems(answers),
	)
}

func newFileRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(NewFileStore(t.TempDir()))
}

func TestLoadAbsentYieldsEmpty(t *testing.T) {
	repo := newFileRepo(t)
	if got := repo.Load(); len(got) != 0 {
		t.Errorf("Load on empty store = %d results, want 0", len(got))
	}
}

func TestRoundTrip(t *testing.T) {
	repo := newFileRepo(t)
	saved := sampleResult(t)

	if err := repo.Append(saved); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	loaded := repo.Load()
	if len(loaded) != 1 {
		t.Fatalf("Expected 1 result after append, got %d", len(loaded))
	}

	got := loaded[0]
	if got.ID != saved.ID || got.Date != saved.Date || got.PatientInfo != saved.PatientInfo {
		t.Errorf("Round trip changed identity: got %+v, want %+v", got, saved)
	}
	if len(got.Results) != len(saved.Results) {
		t.Fatalf("Round trip changed result count: %d vs %d", len(got.Results), len(saved.Results))
	}
	for i := range saved.Results {
		if got.Results[i] != saved.Results[i] {
			t.Errorf("Result item %d changed: got %+v, want %+v", i, got.Results[i], saved.Results[i])
		}
	}
}

func TestAppendAccumulates(t *testing.T) {
	repo := newFileRepo(t)

	first := sampleResult(t)
	second := sampleResult(t)
	if err := repo.Append(first); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := repo.Append(second); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	loaded := repo.Load()
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(loaded))
	}
	if loaded[0].ID != first.ID || loaded[1].ID != second.ID {
		t.Error("Append must preserve stored order")
	}
}

func TestLoadCorruptBlobYieldsEmpty(t *testing.T) {
	store := NewFileStore(t.TempDir())
	if err := store.Set(HistoryKey, "{not json["); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	repo := NewRepository(store)
	if got := repo.Load(); len(got) != 0 {
		t.Errorf("Load on corrupt blob = %d results, want 0", len(got))
	}
}

func TestLoadDropsSchemaInvalidRecords(t *testing.T) {
	store := NewFileStore(t.TempDir())
	repo := NewRepository(store)

	valid := sampleResult(t)
	if err := repo.Append(valid); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Splice in a record with a bogus section tag and a missing id.
	raw, present, err := store.Get(HistoryKey)
	if err != nil || !present {
		t.Fatalf("Get failed: present=%v err=%v", present, err)
	}
	corrupted := raw[:len(raw)-1] + `,{"id":"","patientInfo":{"name":"x","birthdate":"y"},"date":"z","results":[]}]`
	if err := store.Set(HistoryKey, corrupted); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	loaded := repo.Load()
	if len(loaded) != 1 {
		t.Fatalf("Expected invalid record to be dropped, got %d results", len(loaded))
	}
	if loaded[0].ID != valid.ID {
		t.Errorf("Surviving record id = %s, want %s", loaded[0].ID, valid.ID)
	}
}

func TestSortByRecency(t *testing.T) {
	results := []types.SurveyResult{
		{ID: "2025-01-01T10:00:00.000Z-aaaaaaaa"},
		{ID: "2025-06-01T10:00:00.000Z-bbbbbbbb"},
		{ID: "2025-03-01T10:00:00.000Z-cccccccc"},
	}

	sorted := SortByRecency(results)
	if sorted[0].ID != results[1].ID || sorted[2].ID != results[0].ID {
		t.Errorf("SortByRecency order wrong: %v", []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	}

	// Stored order must not be mutated.
	if results[0].ID != "2025-01-01T10:00:00.000Z-aaaaaaaa" {
		t.Error("SortByRecency mutated its input")
	}
}
