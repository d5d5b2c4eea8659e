// Package result assembles persisted survey results from a completed
// answers map.
package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dotcommander/mindscreen/internal/catalog"
	"github.com/dotcommander/mindscreen/internal/scoring"
	"github.com/dotcommander/mindscreen/internal/types"
)

// idTimeLayout is fixed-width so descending string order on ids equals
// recency order. RFC3339Nano trims trailing zeros and would break that.
const idTimeLayout = "2006-01-02T15:04:05.000Z"

// BuildItems computes one ResultItem per scale in catalog order. Pure
// construction; the caller decides whether and when to persist.
// Completeness of the answers map is an external precondition.
func BuildItems(answers types.Answers) []types.ResultItem {
	items := make([]types.ResultItem, 0, len(catalog.Sections))
	for _, scale := range catalog.Sections {
		detail := catalog.Detail(scale)
		score := scoring.Score(answers, scale)
		items = append(items, types.ResultItem{
			Section:        scale,
			Title:          detail.Label,
			DisplayTitle:   detail.Icon + " " + detail.Label,
			Score:          score,
			MaxScore:       scoring.MaxScore(scale),
			Interpretation: scoring.Interpret(scale, score),
		})
	}
	return items
}

// New assembles the persisted unit at save time: the id and completion
// date are assigned here, once, and never change. The id keeps a
// timestamp prefix (its sort-key role) with a random suffix so two
// saves in the same instant cannot collide.
func New(patient types.PatientInfo, items []types.ResultItem) types.SurveyResult {
	now := time.Now()
	return types.SurveyResult{
		ID:          NewID(now),
		PatientInfo: patient,
		Date:        FormatDate(now),
		Results:     items,
	}
}

// NewID derives a result identifier from the save timestamp.
func NewID(t time.Time) string {
	return t.UTC().Format(idTimeLayout) + "-" + uuid.NewString()[:8]
}

// FormatDate renders the completion date the way the ko-KR locale
// does: "2025. 9. 1.".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}
