package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/mindscreen/internal/chart"
	"github.com/dotcommander/mindscreen/internal/config"
	"github.com/dotcommander/mindscreen/internal/history"
	"github.com/dotcommander/mindscreen/internal/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved results, most recent first",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory() error {
	cfg, err := config.LoadConfig(dataDir)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	results := history.SortByRecency(repo.Load())
	if len(results) == 0 {
		fmt.Println("저장된 결과가 없습니다.")
		return nil
	}

	for _, r := range results {
		printHistoryEntry(r)
	}
	return nil
}

func printHistoryEntry(r types.SurveyResult) {
	bold := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	fmt.Printf("%s님  %s\n", bold.Render(r.PatientInfo.Name), r.Date)
	fmt.Printf("  %s  %s\n", levelBadges(r.Results), dim.Render(r.ID))
}

// levelBadges renders the per-scale severity chips shown on each
// history entry.
func levelBadges(items []types.ResultItem) string {
	badges := make([]string, 0, len(items))
	for _, item := range items {
		style := chart.LevelStyle(item.Interpretation.Level)
		badges = append(badges, style.Render(item.Title+": "+item.Interpretation.Level))
	}
	return strings.Join(badges, "  ")
}
