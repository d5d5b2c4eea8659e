package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestJSONFormatterReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	formatter := NewJSONFormatter(true, path)

	if err := formatter.Format(sampleReport()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}

	var report JSONReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("Report is not valid JSON: %v", err)
	}

	if report.Tool != "mindscreen" {
		t.Errorf("Tool = %s, want mindscreen", report.Tool)
	}
	if report.Result.ID != sampleReport().ID {
		t.Errorf("Result id = %s, want %s", report.Result.ID, sampleReport().ID)
	}
	if len(report.Chart) != 1 {
		t.Fatalf("Expected 1 chart point, got %d", len(report.Chart))
	}

	point := report.Chart[0]
	if point.Title != "불안" || point.TierLevel != 1 {
		t.Errorf("Chart point = %+v, want title 불안 tier 1", point)
	}
	if point.Percentage < 33.2 || point.Percentage > 33.4 {
		t.Errorf("Chart percentage = %f, want ~33.3", point.Percentage)
	}
}
