package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/mindscreen/internal/chart"
	"github.com/dotcommander/mindscreen/internal/types"
)

// JSONFormatter writes a report as JSON to a file or stdout.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter. An empty outputFile
// means stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{indent: indent, outputFile: outputFile}
}

// JSONReport is the machine-readable report envelope.
type JSONReport struct {
	Tool      string             `json:"tool"`
	Version   string             `json:"version"`
	Timestamp string             `json:"timestamp"`
	Result    types.SurveyResult `json:"result"`
	Chart     []JSONChartPoint   `json:"chart"`
}

// JSONChartPoint mirrors the chart renderer contract.
type JSONChartPoint struct {
	Title      string  `json:"title"`
	Percentage float64 `json:"percentage"`
	TierLevel  int     `json:"tierLevel"`
}

// Format writes the report.
func (f *JSONFormatter) Format(result types.SurveyResult) error {
	points := chart.Points(result.Results)
	chartData := make([]JSONChartPoint, 0, len(points))
	for _, p := range points {
		chartData = append(chartData, JSONChartPoint{
			Title:      p.Title,
			Percentage: p.Percentage,
			TierLevel:  p.Rank,
		})
	}

	report := JSONReport{
		Tool:      "mindscreen",
		Version:   "1.0.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Result:    result,
		Chart:     chartData,
	}

	var data []byte
	var err error
	if f.indent {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')

	if f.outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(f.outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}
