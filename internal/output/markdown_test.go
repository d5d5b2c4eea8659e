package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotcommander/mindscreen/internal/types"
)

func sampleReport() types.SurveyResult {
	return types.SurveyResult{
		ID:          "2025-09-01T10:00:00.000Z-deadbeef",
		PatientInfo: types.PatientInfo{Name: "홍길동", Birthdate: "1990-01-01"},
		Date:        "2025. 9. 1.",
		Results: []types.ResultItem{
			{
				Section:      types.ScaleAnxiety,
				Title:        "불안",
				DisplayTitle: "😟 불안",
				Score:        7,
				MaxScore:     21,
				Interpretation: types.Interpretation{
					Level:       types.LevelMild,
					Description: "가벼운 수준의 불안이 의심됩니다.",
					Color:       "bg-yellow-500",
					Lifestyle:   "규칙적인 운동을 해보세요.",
					Treatment:   "상담을 고려해볼 수 있습니다.",
				},
			},
		},
	}
}

func TestMarkdownFormatterWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	formatter := NewMarkdownFormatter(path)

	if err := formatter.Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"# 설문 결과",
		"홍길동",
		"😟 불안 | 7 / 21 | 경도",
		"생활 관리",
		disclaimer,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Report missing %q:\n%s", want, content)
		}
	}
}
