// Package outputters dispatches report rendering to the formatter for
// the configured format.
package outputters

import (
	"fmt"

	"github.com/dotcommander/mindscreen/internal/config"
	"github.com/dotcommander/mindscreen/internal/output"
	"github.com/dotcommander/mindscreen/internal/types"
)

// Outputter handles output formatting.
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter.
func NewOutputter(cfg *config.Config) *Outputter {
	return &Outputter{config: cfg}
}

// Format renders the result using the configured format.
func (o *Outputter) Format(result types.SurveyResult, format string) error {
	switch format {
	case "console":
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose)
		return formatter.Format(result)
	case "json":
		formatter := output.NewJSONFormatter(true, o.config.Output)
		return formatter.Format(result)
	case "markdown":
		formatter := output.NewMarkdownFormatter(o.config.Output)
		return formatter.Format(result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
