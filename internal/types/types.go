// Package types provides shared types used across the mindscreen codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Scale identifies one clinical screening dimension. The set is closed
// and fixed at process start.
type Scale string

// Scale constants. The string values double as the persisted "section"
// tags and must not change.
const (
	ScaleAnxiety    Scale = "anxiety"
	ScaleDepression Scale = "depression"
	ScaleInsomnia   Scale = "insomnia"
)

// Severity level labels, least to most severe. Part of the fixed text
// set; persisted verbatim.
const (
	LevelNormal           = "정상"
	LevelMild             = "경도"
	LevelModerate         = "중등도"
	LevelModeratelySevere = "중증도"
	LevelSevere           = "중증"
)

// Question is one catalog item. It belongs to exactly one Scale; its
// answer-option set is determined by the Scale unless the catalog
// carries a per-question override.
type Question struct {
	ID      string
	Section Scale
	Text    string
}

// AnswerOption is one selectable answer with its ordinal value.
type AnswerOption struct {
	Text  string
	Value int
}

// Answers maps question id to the selected option value. A question is
// answered iff its id is present; value 0 still counts as answered.
type Answers map[string]int

// Interpretation is the fixed text attached to a (scale, score) tier.
type Interpretation struct {
	Level       string `json:"level"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Lifestyle   string `json:"lifestyle"`
	Treatment   string `json:"treatment"`
}

// PatientInfo identifies who took the test. Not validated beyond
// non-emptiness.
type PatientInfo struct {
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
}

// ResultItem is one scale's scored outcome within a completed survey.
type ResultItem struct {
	Section        Scale          `json:"section"`
	Title          string         `json:"title"`
	DisplayTitle   string         `json:"displayTitle"`
	Score          int            `json:"score"`
	MaxScore       int            `json:"maxScore"`
	Interpretation Interpretation `json:"interpretation"`
}

// SurveyResult is the persisted unit: one completed questionnaire with
// one ResultItem per scale in catalog order. Created once at save time,
// never mutated afterwards.
type SurveyResult struct {
	ID          string       `json:"id"`
	PatientInfo PatientInfo  `json:"patientInfo"`
	Date        string       `json:"date"`
	Results     []ResultItem `json:"results"`
}

// SeverityRank maps a level label to its position in severity order.
// Unknown labels rank lowest.
func SeverityRank(level string) int {
	switch level {
	case LevelSevere:
		return 4
	case LevelModeratelySevere:
		return 3
	case LevelModerate:
		return 2
	case LevelMild:
		return 1
	default:
		return 0
	}
}
