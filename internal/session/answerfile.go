package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/dotcommander/mindscreen/internal/catalog"
	"github.com/dotcommander/mindscreen/internal/types"
)

// AnswerFile is the on-disk shape of a non-interactive attempt: patient
// info plus a question-id to value mapping.
type AnswerFile struct {
	Name      string         `yaml:"name" json:"name"`
	Birthdate string         `yaml:"birthdate" json:"birthdate"`
	Answers   map[string]int `yaml:"answers" json:"answers"`
}

// LoadAnswerFile reads and validates an answers file. YAML is assumed
// unless the extension is .json. Unknown question ids and out-of-range
// values are rejected so a typo cannot silently skew a score.
func LoadAnswerFile(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	var af AnswerFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &af); err != nil {
			return nil, fmt.Errorf("failed to parse answers file: %w", err)
		}
	} else {
		if err := yamlv3.Unmarshal(data, &af); err != nil {
			return nil, fmt.Errorf("failed to parse answers file: %w", err)
		}
	}

	s := New(types.PatientInfo{Name: af.Name, Birthdate: af.Birthdate})
	for id, value := range af.Answers {
		q, ok := lookupQuestion(id)
		if !ok {
			return nil, fmt.Errorf("unknown question id %q", id)
		}
		if !validValue(q, value) {
			return nil, fmt.Errorf("value %d out of range for question %q", value, id)
		}
		s.SetAnswer(id, value)
	}
	return s, nil
}

func lookupQuestion(id string) (types.Question, bool) {
	for _, q := range catalog.AllQuestions() {
		if q.ID == id {
			return q, true
		}
	}
	return types.Question{}, false
}

func validValue(q types.Question, value int) bool {
	for _, opt := range catalog.Options(q.Section, q.ID) {
		if opt.Value == value {
			return true
		}
	}
	return false
}
