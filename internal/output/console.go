// Package output renders survey reports in the supported formats.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/mindscreen/internal/chart"
	"github.com/dotcommander/mindscreen/internal/types"
)

// disclaimer is the fixed notice printed under every report.
const disclaimer = "본 결과는 전문적인 의학적 진단을 대체할 수 없습니다. 정신건강에 대한 우려가 있으시다면, 반드시 전문가와 상담하시기 바랍니다."

// ConsoleFormatter renders a report for terminal display.
type ConsoleFormatter struct {
	quiet   bool
	verbose bool
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{quiet: quiet, verbose: verbose}
}

// Format prints the full report: header, severity chart, and per-scale
// guidance blocks.
func (f *ConsoleFormatter) Format(result types.SurveyResult) error {
	if f.quiet {
		return nil
	}

	bold := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	fmt.Println(bold.Render("설문 결과"))
	if result.PatientInfo.Name != "" {
		fmt.Printf("%s님 (생년월일: %s)", result.PatientInfo.Name, result.PatientInfo.Birthdate)
		if result.Date != "" {
			fmt.Printf(" · %s", result.Date)
		}
		fmt.Println()
	}
	fmt.Println()

	barWidth := chart.TermWidth() - 30
	if barWidth > 40 {
		barWidth = 40
	}
	fmt.Print(chart.RenderBars(chart.Points(result.Results), barWidth))
	fmt.Println()

	for _, item := range result.Results {
		style := chart.LevelStyle(item.Interpretation.Level)
		fmt.Printf("%s %s  %d / %d\n",
			bold.Render(item.DisplayTitle),
			style.Render("["+item.Interpretation.Level+"]"),
			item.Score, item.MaxScore)
		fmt.Printf("  %s\n", item.Interpretation.Description)
		fmt.Printf("  🌱 생활 관리: %s\n", item.Interpretation.Lifestyle)
		fmt.Printf("  ⚕️ 치료 제안: %s\n", item.Interpretation.Treatment)
		fmt.Println()
	}

	fmt.Println(dim.Render("⚠️ " + disclaimer))
	return nil
}
