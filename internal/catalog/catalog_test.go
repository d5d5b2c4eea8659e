package catalog

import (
	"testing"

	"github.com/dotcommander/mindscreen/internal/types"
)

func TestSectionOrder(t *testing.T) {
	want := []types.Scale{types.ScaleAnxiety, types.ScaleDepression, types.ScaleInsomnia}
	if len(Sections) != len(want) {
		t.Fatalf("Expected %d sections, got %d", len(want), len(Sections))
	}
	for i, scale := range want {
		if Sections[i] != scale {
			t.Errorf("Expected section %d to be %s, got %s", i, scale, Sections[i])
		}
	}
}

func TestQuestionCounts(t *testing.T) {
	tests := []struct {
		scale types.Scale
		count int
	}{
		{types.ScaleAnxiety, 7},
		{types.ScaleDepression, 9},
		{types.ScaleInsomnia, 7},
	}

	for _, tt := range tests {
		if got := QuestionCount(tt.scale); got != tt.count {
			t.Errorf("QuestionCount(%s) = %d, want %d", tt.scale, got, tt.count)
		}
		qs := Questions(tt.scale)
		if len(qs) != tt.count {
			t.Errorf("Questions(%s) returned %d questions, want %d", tt.scale, len(qs), tt.count)
		}
		for _, q := range qs {
			if q.Section != tt.scale {
				t.Errorf("Question %s belongs to %s, expected %s", q.ID, q.Section, tt.scale)
			}
			if q.Text == "" {
				t.Errorf("Question %s has empty text", q.ID)
			}
		}
	}
}

func TestMaxOptionValue(t *testing.T) {
	tests := []struct {
		scale types.Scale
		max   int
	}{
		{types.ScaleAnxiety, 3},
		{types.ScaleDepression, 3},
		{types.ScaleInsomnia, 4},
	}

	for _, tt := range tests {
		if got := MaxOptionValue(tt.scale); got != tt.max {
			t.Errorf("MaxOptionValue(%s) = %d, want %d", tt.scale, got, tt.max)
		}
	}
}

func TestOptionsOverride(t *testing.T) {
	// Insomnia items 4-7 use alternate wording with the same 0-4 range.
	overridden := []string{"insomnia-4", "insomnia-5", "insomnia-6", "insomnia-7"}
	defaults := Options(types.ScaleInsomnia, "insomnia-1")

	for _, id := range overridden {
		opts := Options(types.ScaleInsomnia, id)
		if len(opts) != 5 {
			t.Fatalf("Options(insomnia, %s) returned %d options, want 5", id, len(opts))
		}
		if opts[0].Text == defaults[0].Text {
			t.Errorf("Expected %s to use override wording, got default %q", id, opts[0].Text)
		}
		for i, opt := range opts {
			if opt.Value != i {
				t.Errorf("%s option %d has value %d, want %d", id, i, opt.Value, i)
			}
		}
	}

	// Non-overridden items fall back to the scale default.
	if got := Options(types.ScaleInsomnia, "insomnia-1"); got[0].Text != "없음" {
		t.Errorf("Expected default insomnia options, got %q", got[0].Text)
	}
	if got := Options(types.ScaleAnxiety, "anxiety-3"); got[3].Text != "거의 매일" {
		t.Errorf("Expected default anxiety options, got %q", got[3].Text)
	}
}

func TestDetailHasExplicitIconAndLabel(t *testing.T) {
	for _, scale := range Sections {
		d := Detail(scale)
		if d.Icon == "" || d.Label == "" || d.Title == "" || d.Description == "" {
			t.Errorf("Detail(%s) has empty fields: %+v", scale, d)
		}
	}
	if d := Detail(types.ScaleAnxiety); d.Label != "불안" {
		t.Errorf("Expected anxiety label 불안, got %q", d.Label)
	}
}

func TestAllQuestionsStableOrder(t *testing.T) {
	all := AllQuestions()
	if len(all) != 23 {
		t.Fatalf("Expected 23 questions total, got %d", len(all))
	}
	if all[0].ID != "anxiety-1" || all[22].ID != "insomnia-7" {
		t.Errorf("Unexpected authoring order: first %s, last %s", all[0].ID, all[22].ID)
	}
}
