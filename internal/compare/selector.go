// Package compare picks two historical results and aligns them for
// side-by-side display.
package compare

import "github.com/dotcommander/mindscreen/internal/types"

// maxSelected caps the comparison selection.
const maxSelected = 2

// Selection is the toggle-based selection state for the history list.
// Toggling an already-selected id removes it; toggling a new id while
// two are selected is a no-op, not an error.
type Selection struct {
	ids []string
}

// Toggle flips the selection state of id and reports whether the
// selection changed.
func (s *Selection) Toggle(id string) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	if len(s.ids) >= maxSelected {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Selected reports whether id is currently selected.
func (s *Selection) Selected(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Count returns the number of selected ids.
func (s *Selection) Count() int {
	return len(s.ids)
}

// Ready reports whether the comparison action is enabled.
func (s *Selection) Ready() bool {
	return len(s.ids) == maxSelected
}

// Clear empties the selection ("back" transition).
func (s *Selection) Clear() {
	s.ids = nil
}

// Resolve looks up the supplied ids in the collection, preserving the
// selection order. ok is false when fewer than two entries resolve:
// callers show an insufficient-data state, never an error.
func Resolve(ids []string, results []types.SurveyResult) (pair []types.SurveyResult, ok bool) {
	for _, id := range ids {
		for _, r := range results {
			if r.ID == id {
				pair = append(pair, r)
				break
			}
		}
	}
	return pair, len(pair) == maxSelected
}

// AlignedRow pairs one scale's items from both results. B may be nil
// if the second result lacks the section.
type AlignedRow struct {
	Section types.Scale
	A       types.ResultItem
	B       *types.ResultItem
}

// Align matches the two results' items by section tag. Both sides are
// built in the same catalog order, but matching by tag keeps the
// comparison correct should the catalog ever diverge across versions.
func Align(a, b types.SurveyResult) []AlignedRow {
	rows := make([]AlignedRow, 0, len(a.Results))
	for _, itemA := range a.Results {
		row := AlignedRow{Section: itemA.Section, A: itemA}
		for i := range b.Results {
			if b.Results[i].Section == itemA.Section {
				row.B = &b.Results[i]
				break
			}
		}
		rows = append(rows, row)
	}
	return rows
}
