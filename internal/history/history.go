package history

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/dotcommander/mindscreen/internal/schema"
	"github.com/dotcommander/mindscreen/internal/types"
)

// Repository exposes load/save/append over a Store. Load never fails
// hard: missing or corrupt data degrades to an empty collection with a
// warning, so a bad blob can never take the program down.
type Repository struct {
	store     Store
	validator *schema.Validator
}

// NewRepository wires a repository over the given store. If the
// embedded schema will not compile the repository still works, just
// without per-record validation.
func NewRepository(store Store) *Repository {
	validator, err := schema.NewValidator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history schema unavailable: %v\n", err)
		validator = nil
	}
	return &Repository{store: store, validator: validator}
}

// Load reads the persisted collection. Absent key: empty history.
// Unparsable blob: warning, empty history. Individual records that
// fail the schema are dropped with a warning; the rest survive.
func (r *Repository) Load() []types.SurveyResult {
	raw, present, err := r.store.Get(HistoryKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load history: %v\n", err)
		return nil
	}
	if !present {
		return nil
	}

	var rawRecords []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &rawRecords); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: stored history is corrupt, starting empty: %v\n", err)
		return nil
	}

	results := make([]types.SurveyResult, 0, len(rawRecords))
	for i, rec := range rawRecords {
		if r.validator != nil {
			if err := r.validator.ValidateResult(rec); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: dropping invalid history record %d: %v\n", i, err)
				continue
			}
		}
		var result types.SurveyResult
		if err := json.Unmarshal(rec, &result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: dropping unreadable history record %d: %v\n", i, err)
			continue
		}
		results = append(results, result)
	}
	return results
}

// Save writes the entire collection, replacing prior content.
func (r *Repository) Save(results []types.SurveyResult) error {
	if results == nil {
		results = []types.SurveyResult{}
	}
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := r.store.Set(HistoryKey, string(data)); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// Append loads the current collection, adds the result, and persists
// the union. Read-modify-write with no locking: the single-session
// runtime model has no concurrent callers.
func (r *Repository) Append(result types.SurveyResult) error {
	results := r.Load()
	results = append(results, result)
	return r.Save(results)
}

// SortByRecency returns a copy ordered most recent first. Ids carry a
// fixed-width timestamp prefix, so descending string order is recency
// order. Stored order is never mutated.
func SortByRecency(results []types.SurveyResult) []types.SurveyResult {
	sorted := make([]types.SurveyResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID > sorted[j].ID
	})
	return sorted
}
