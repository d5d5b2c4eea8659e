package scoring

import (
	"testing"

	"github.com/dotcommander/mindscreen/internal/catalog"
	"github.com/dotcommander/mindscreen/internal/types"
)

func TestInterpretBoundaries(t *testing.T) {
	tests := []struct {
		scale types.Scale
		score int
		level string
	}{
		{types.ScaleAnxiety, 0, types.LevelNormal},
		{types.ScaleAnxiety, 4, types.LevelNormal},
		{types.ScaleAnxiety, 5, types.LevelMild},
		{types.ScaleAnxiety, 9, types.LevelMild},
		{types.ScaleAnxiety, 10, types.LevelModerate},
		{types.ScaleAnxiety, 14, types.LevelModerate},
		{types.ScaleAnxiety, 15, types.LevelSevere},
		{types.ScaleAnxiety, 21, types.LevelSevere},

		{types.ScaleDepression, 4, types.LevelNormal},
		{types.ScaleDepression, 5, types.LevelMild},
		{types.ScaleDepression, 14, types.LevelModerate},
		{types.ScaleDepression, 19, types.LevelModeratelySevere},
		{types.ScaleDepression, 20, types.LevelSevere},
		{types.ScaleDepression, 27, types.LevelSevere},

		{types.ScaleInsomnia, 7, types.LevelNormal},
		{types.ScaleInsomnia, 8, types.LevelMild},
		{types.ScaleInsomnia, 14, types.LevelMild},
		{types.ScaleInsomnia, 15, types.LevelModerate},
		{types.ScaleInsomnia, 21, types.LevelModerate},
		{types.ScaleInsomnia, 22, types.LevelSevere},
		{types.ScaleInsomnia, 28, types.LevelSevere},
	}

	for _, tt := range tests {
		got := Interpret(tt.scale, tt.score)
		if got.Level != tt.level {
			t.Errorf("Interpret(%s, %d).Level = %s, want %s", tt.scale, tt.score, got.Level, tt.level)
		}
	}
}

func TestInterpretMonotonic(t *testing.T) {
	for _, scale := range catalog.Sections {
		prev := -1
		for score := 0; score <= MaxScore(scale); score++ {
			rank := types.SeverityRank(Interpret(scale, score).Level)
			if rank < prev {
				t.Errorf("Severity not monotonic for %s: rank dropped to %d at score %d", scale, rank, score)
			}
			prev = rank
		}
	}
}

func TestInterpretDegradesGracefullyAboveMax(t *testing.T) {
	for _, scale := range catalog.Sections {
		got := Interpret(scale, MaxScore(scale)+100)
		if got.Level != types.LevelSevere {
			t.Errorf("Interpret(%s, over max).Level = %s, want %s", scale, got.Level, types.LevelSevere)
		}
	}
}

func TestInterpretCarriesFullText(t *testing.T) {
	for _, scale := range catalog.Sections {
		for score := 0; score <= MaxScore(scale); score++ {
			got := Interpret(scale, score)
			if got.Level == "" || got.Description == "" || got.Color == "" ||
				got.Lifestyle == "" || got.Treatment == "" {
				t.Fatalf("Interpret(%s, %d) has empty text fields: %+v", scale, score, got)
			}
		}
	}
}

func TestInterpretSevereDepressionColor(t *testing.T) {
	// Severe depression uses the darker red tag; every other severe
	// tier uses the standard one.
	if got := Interpret(types.ScaleDepression, 25).Color; got != "bg-red-700" {
		t.Errorf("Severe depression color = %s, want bg-red-700", got)
	}
	if got := Interpret(types.ScaleAnxiety, 20).Color; got != "bg-red-500" {
		t.Errorf("Severe anxiety color = %s, want bg-red-500", got)
	}
}
