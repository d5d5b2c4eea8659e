// Package session tracks one in-progress questionnaire attempt from
// start to save or restart.
package session

import (
	"sort"
	"strings"

	"github.com/dotcommander/mindscreen/internal/catalog"
	"github.com/dotcommander/mindscreen/internal/types"
)

// Session owns the transient state of a questionnaire attempt: who is
// taking it and the answers collected so far. Answers grow
// monotonically; a question is answered iff its id is a map key, so a
// selected value of 0 still counts as answered.
type Session struct {
	Patient types.PatientInfo
	Answers types.Answers
}

// New starts a session for the given patient.
func New(patient types.PatientInfo) *Session {
	return &Session{
		Patient: patient,
		Answers: types.Answers{},
	}
}

// ValidatePatient checks the start precondition: name and birthdate
// must both be non-empty.
func ValidatePatient(p types.PatientInfo) bool {
	return strings.TrimSpace(p.Name) != "" && strings.TrimSpace(p.Birthdate) != ""
}

// SetAnswer records the selected option value for a question.
func (s *Session) SetAnswer(questionID string, value int) {
	s.Answers[questionID] = value
}

// Answered reports whether a question has been answered. Key presence
// is the only signal; no sentinel values.
func (s *Session) Answered(questionID string) bool {
	_, ok := s.Answers[questionID]
	return ok
}

// SectionComplete reports whether every question of a scale is
// answered.
func (s *Session) SectionComplete(scale types.Scale) bool {
	for _, q := range catalog.Questions(scale) {
		if !s.Answered(q.ID) {
			return false
		}
	}
	return true
}

// Complete reports whether every question of every scale is answered.
func (s *Session) Complete() bool {
	for _, scale := range catalog.Sections {
		if !s.SectionComplete(scale) {
			return false
		}
	}
	return true
}

// Missing returns the ids of unanswered questions across all scales,
// sorted, for reporting to the user.
func (s *Session) Missing() []string {
	var missing []string
	for _, q := range catalog.AllQuestions() {
		if !s.Answered(q.ID) {
			missing = append(missing, q.ID)
		}
	}
	sort.Strings(missing)
	return missing
}
