// Package history persists the append-only collection of survey
// results behind a swappable key-value store.
package history

// HistoryKey is the single well-known key the whole collection lives
// under, kept byte-compatible with the original localStorage layout.
const HistoryKey = "surveyResults"

// Store is the persistence substrate: a process-local, string-valued
// key-value store. Implementations must treat an absent key as
// (value "", present false, no error).
type Store interface {
	Get(key string) (value string, present bool, err error)
	Set(key, value string) error
}
