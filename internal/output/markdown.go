package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/dotcommander/mindscreen/internal/types"
)

// MarkdownFormatter writes a report as a markdown document.
type MarkdownFormatter struct {
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter. An empty
// outputFile means stdout.
func NewMarkdownFormatter(outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{outputFile: outputFile}
}

// Format writes the report.
func (f *MarkdownFormatter) Format(result types.SurveyResult) error {
	var sb strings.Builder

	sb.WriteString("# 설문 결과\n\n")
	if result.PatientInfo.Name != "" {
		sb.WriteString(fmt.Sprintf("**%s**님 (생년월일: %s)", result.PatientInfo.Name, result.PatientInfo.Birthdate))
		if result.Date != "" {
			sb.WriteString(" · " + result.Date)
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString("| 척도 | 점수 | 판정 |\n|---|---|---|\n")
	for _, item := range result.Results {
		sb.WriteString(fmt.Sprintf("| %s | %d / %d | %s |\n",
			item.DisplayTitle, item.Score, item.MaxScore, item.Interpretation.Level))
	}
	sb.WriteString("\n")

	for _, item := range result.Results {
		sb.WriteString(fmt.Sprintf("## %s (%d / %d)\n\n", item.DisplayTitle, item.Score, item.MaxScore))
		sb.WriteString(fmt.Sprintf("- 판정: **%s**, %s\n", item.Interpretation.Level, item.Interpretation.Description))
		sb.WriteString(fmt.Sprintf("- 🌱 생활 관리: %s\n", item.Interpretation.Lifestyle))
		sb.WriteString(fmt.Sprintf("- ⚕️ 치료 제안: %s\n\n", item.Interpretation.Treatment))
	}

	sb.WriteString("> ⚠️ " + disclaimer + "\n")

	if f.outputFile == "" {
		_, err := os.Stdout.WriteString(sb.String())
		return err
	}
	if err := os.WriteFile(f.outputFile, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}
