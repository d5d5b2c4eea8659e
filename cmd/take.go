package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/mindscreen/internal/catalog"
	"github.com/dotcommander/mindscreen/internal/config"
	"github.com/dotcommander/mindscreen/internal/outputters"
	"github.com/dotcommander/mindscreen/internal/result"
	"github.com/dotcommander/mindscreen/internal/session"
	"github.com/dotcommander/mindscreen/internal/types"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Run the interactive questionnaire",
	Long: `Walks through all three scales question by question, shows the scored
report, and offers to save the result to the local history.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTake(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(takeCmd)
}

func runTake() error {
	cfg, err := config.LoadConfig(dataDir)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	bold := lipgloss.NewStyle().Bold(true)

	fmt.Println(bold.Render("마음 상태 자가 진단"))
	fmt.Println("불안, 우울, 불면증에 대한 간단한 설문을 통해 자신의 마음 상태를 점검해보세요.")
	fmt.Println()

	patient, err := promptPatient(reader)
	if err != nil {
		return err
	}
	s := session.New(patient)

	for i, scale := range catalog.Sections {
		detail := catalog.Detail(scale)
		fmt.Println()
		fmt.Printf("%s  [%d/%d]\n", bold.Render(detail.Title), i+1, len(catalog.Sections))
		fmt.Println(detail.Description)
		fmt.Println()

		for qi, q := range catalog.Questions(scale) {
			opts := catalog.Options(scale, q.ID)
			fmt.Printf("%d. %s\n", qi+1, q.Text)
			for _, opt := range opts {
				fmt.Printf("   [%d] %s\n", opt.Value, opt.Text)
			}
			value, err := promptOption(reader, opts)
			if err != nil {
				return err
			}
			s.SetAnswer(q.ID, value)
		}
	}

	// The session is complete by construction here; build the report.
	items := result.BuildItems(s.Answers)
	report := types.SurveyResult{PatientInfo: s.Patient, Results: items}

	fmt.Println()
	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if promptYesNo(reader, "💾 결과를 저장할까요? [y/N] ") {
		repo, closeRepo, err := openRepository(cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		saved := result.New(s.Patient, items)
		if err := repo.Append(saved); err != nil {
			// One-shot notice; the scored report above is not lost.
			fmt.Fprintf(os.Stderr, "결과를 저장하는 데 문제가 발생했습니다: %v\n", err)
			return nil
		}
		if !cfg.Quiet {
			fmt.Printf("저장 완료 ✓ (%s)\n", saved.ID)
		}
	}
	return nil
}

// promptPatient collects name and birthdate, re-prompting until both
// are non-empty.
func promptPatient(reader *bufio.Reader) (types.PatientInfo, error) {
	for {
		name, err := promptLine(reader, "이름: ")
		if err != nil {
			return types.PatientInfo{}, err
		}
		birthdate, err := promptLine(reader, "생년월일 (예: 1990-01-01): ")
		if err != nil {
			return types.PatientInfo{}, err
		}
		patient := types.PatientInfo{Name: strings.TrimSpace(name), Birthdate: strings.TrimSpace(birthdate)}
		if session.ValidatePatient(patient) {
			return patient, nil
		}
		fmt.Println("이름과 생년월일을 모두 입력해주세요.")
	}
}

// promptOption reads answers until one matches an option value.
func promptOption(reader *bufio.Reader, opts []types.AnswerOption) (int, error) {
	for {
		line, err := promptLine(reader, "> ")
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			for _, opt := range opts {
				if opt.Value == value {
					return value, nil
				}
			}
		}
		fmt.Printf("0-%d 사이의 번호를 입력해주세요.\n", opts[len(opts)-1].Value)
	}
}

func promptYesNo(reader *bufio.Reader, prompt string) bool {
	line, err := promptLine(reader, prompt)
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("input closed: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
