package cmd

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/mindscreen/internal/catalog"
	"github.com/dotcommander/mindscreen/internal/compare"
	"github.com/dotcommander/mindscreen/internal/config"
	"github.com/dotcommander/mindscreen/internal/history"
	"github.com/dotcommander/mindscreen/internal/scoring"
	"github.com/dotcommander/mindscreen/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare [id id]",
	Short: "Compare two saved results side by side",
	Long: `Compares two saved results as overlaid percentage bars per scale.

With two result ids the comparison renders directly. With no arguments
an interactive selector lists the history: toggle entries by number,
'c' compares once exactly two are selected, 'b' goes back.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCompare(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(ids []string) error {
	cfg, err := config.LoadConfig(dataDir)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	results := repo.Load()

	if len(ids) < 2 {
		selected, ok := selectInteractively(results)
		if !ok {
			return nil
		}
		ids = selected
	}

	pair, ok := compare.Resolve(ids, results)
	if !ok {
		// Insufficient selection is a state, not an error.
		fmt.Printf("비교하려면 저장된 결과 두 개가 필요합니다. (%d/2)\n", len(pair))
		return nil
	}

	renderComparison(pair[0], pair[1])
	return nil
}

// selectInteractively runs the history selection loop. ok is false
// when the user backs out or the history is too small.
func selectInteractively(results []types.SurveyResult) ([]string, bool) {
	if len(results) < 2 {
		fmt.Println("비교하려면 저장된 결과가 두 개 이상 필요합니다.")
		return nil, false
	}

	sorted := history.SortByRecency(results)
	reader := bufio.NewReader(os.Stdin)
	var sel compare.Selection

	fmt.Println("비교하고 싶은 두 개의 결과를 선택하세요.")
	for {
		fmt.Println()
		for i, r := range sorted {
			marker := "[ ]"
			if sel.Selected(r.ID) {
				marker = "[x]"
			}
			fmt.Printf("%s %2d. %s님  %s\n", marker, i+1, r.PatientInfo.Name, r.Date)
		}
		fmt.Printf("번호 선택/해제, c=비교 (%d/2), b=뒤로 > ", sel.Count())

		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, false
		}
		switch input := strings.ToLower(strings.TrimSpace(line)); input {
		case "b", "q":
			sel.Clear()
			return nil, false
		case "c":
			if sel.Ready() {
				return sel.IDs(), true
			}
			fmt.Println("두 개의 결과를 선택해야 비교할 수 있습니다.")
		default:
			n, convErr := strconv.Atoi(input)
			if convErr != nil || n < 1 || n > len(sorted) {
				fmt.Println("목록의 번호를 입력해주세요.")
				continue
			}
			// A third toggle-on while two are selected is a no-op.
			sel.Toggle(sorted[n-1].ID)
		}
	}
}

func renderComparison(a, b types.SurveyResult) {
	bold := lipgloss.NewStyle().Bold(true)
	styleA := lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	styleB := lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green

	fmt.Println(bold.Render("결과 비교"))
	fmt.Printf("%s %s님 (%s)\n", styleA.Render("■"), a.PatientInfo.Name, a.Date)
	fmt.Printf("%s %s님 (%s)\n", styleB.Render("■"), b.PatientInfo.Name, b.Date)
	fmt.Println()

	const barWidth = 40
	for _, row := range compare.Align(a, b) {
		fmt.Println(bold.Render(catalog.Detail(row.Section).Title))
		fmt.Printf("  %s\n", comparisonBar(row.A, styleA, barWidth))
		if row.B != nil {
			fmt.Printf("  %s\n", comparisonBar(*row.B, styleB, barWidth))
			fmt.Printf("  점수 변화: %+d\n", row.B.Score-row.A.Score)
		} else {
			fmt.Println("  — (해당 척도 결과 없음)")
		}
		fmt.Println()
	}
}

func comparisonBar(item types.ResultItem, style lipgloss.Style, width int) string {
	pct := scoring.Percentage(item.Score, item.MaxScore)
	filled := int(math.Round(pct / 100 * float64(width)))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %5.1f%%  %d/%d  %s",
		style.Render(bar), pct, item.Score, item.MaxScore, item.Interpretation.Level)
}
