// Package chart turns result items into the data the visual summary
// consumes: per-scale percentages in [0,100] with severity ranks, plus
// a terminal bar rendering with the four fixed severity bands.
package chart

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dotcommander/mindscreen/internal/scoring"
	"github.com/dotcommander/mindscreen/internal/types"
)

// Point is one scale's chart datum.
type Point struct {
	Title      string
	Percentage float64
	Level      string
	Rank       int
}

// Band boundaries. These are a visual approximation mirroring the tier
// cut-points proportionally; the interpretation engine stays the
// authority on tiers.
var bands = []struct {
	limit float64
	name  string
}{
	{25, "정상"},
	{50, "경도"},
	{75, "중등도"},
	{100, "중증"},
}

// Points maps result items onto chart data, one point per scale in
// item order.
func Points(items []types.ResultItem) []Point {
	points := make([]Point, 0, len(items))
	for _, item := range items {
		points = append(points, Point{
			Title:      item.Title,
			Percentage: scoring.Percentage(item.Score, item.MaxScore),
			Level:      item.Interpretation.Level,
			Rank:       types.SeverityRank(item.Interpretation.Level),
		})
	}
	return points
}

// Band returns the visual band a percentage falls in.
func Band(percentage float64) string {
	for _, b := range bands {
		if percentage <= b.limit {
			return b.name
		}
	}
	return bands[len(bands)-1].name
}

// LevelStyle returns the lipgloss style for a severity level, matching
// the color tags the interpretation engine assigns.
func LevelStyle(level string) lipgloss.Style {
	switch types.SeverityRank(level) {
	case 4:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	case 3:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	case 2:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208")) // orange
	case 1:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	}
}

// TermWidth probes the terminal width, falling back to 80 columns when
// stdout is not a terminal.
func TermWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// RenderBars renders one percentage bar per point, colored by
// severity, with a band legend. barWidth is the width of the bar body
// in cells.
func RenderBars(points []Point, barWidth int) string {
	if barWidth < 8 {
		barWidth = 8
	}

	var sb strings.Builder
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	maxTitle := 0
	for _, p := range points {
		if w := lipgloss.Width(p.Title); w > maxTitle {
			maxTitle = w
		}
	}

	for _, p := range points {
		filled := int(math.Round(p.Percentage / 100 * float64(barWidth)))
		if filled > barWidth {
			filled = barWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		style := LevelStyle(p.Level)
		pad := strings.Repeat(" ", maxTitle-lipgloss.Width(p.Title))
		sb.WriteString(fmt.Sprintf("%s%s %s %5.1f%% %s\n",
			p.Title, pad, style.Render(bar), p.Percentage, style.Render(p.Level)))
	}

	sb.WriteString(dim.Render(fmt.Sprintf("%s0-25 정상 · 25-50 경도 · 50-75 중등도 · 75-100 중증",
		strings.Repeat(" ", maxTitle+1))))
	sb.WriteString("\n")
	return sb.String()
}
