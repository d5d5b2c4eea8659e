// Package scoring turns an answers map into per-scale scores and maps
// scores onto fixed severity tiers.
package scoring

import (
	"github.com/dotcommander/mindscreen/internal/catalog"
	"github.com/dotcommander/mindscreen/internal/types"
)

// Score sums the values of every answered question belonging to the
// scale. Only question ids present in answers contribute; the result is
// always valid even for a partially answered scale. Completeness is the
// caller's concern.
func Score(answers types.Answers, scale types.Scale) int {
	total := 0
	for _, q := range catalog.Questions(scale) {
		if v, ok := answers[q.ID]; ok {
			total += v
		}
	}
	return total
}

// MaxScore returns the highest achievable score for a scale:
// question count times the scale's maximum option value.
// Anxiety 21 (7x3), depression 27 (9x3), insomnia 28 (7x4).
func MaxScore(scale types.Scale) int {
	return catalog.QuestionCount(scale) * catalog.MaxOptionValue(scale)
}

// Percentage maps a score onto [0,100] of the scale's range, for the
// chart renderer contract.
func Percentage(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}
