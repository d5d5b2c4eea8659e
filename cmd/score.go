package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/mindscreen/internal/config"
	"github.com/dotcommander/mindscreen/internal/outputters"
	"github.com/dotcommander/mindscreen/internal/result"
	"github.com/dotcommander/mindscreen/internal/session"
	"github.com/dotcommander/mindscreen/internal/types"
)

var (
	scoreName      string
	scoreBirthdate string
	scoreSave      bool
)

var scoreCmd = &cobra.Command{
	Use:   "score <answers-file>",
	Short: "Score a completed answers file",
	Long: `Scores a YAML or JSON answers file non-interactively. The file must
cover every question of every scale; missing questions are listed and
block scoring. --save appends the result to the local history.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreName, "name", "", "Patient name (overrides the answers file)")
	scoreCmd.Flags().StringVar(&scoreBirthdate, "birthdate", "", "Patient birthdate (overrides the answers file)")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "Append the result to the local history")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(path string) error {
	cfg, err := config.LoadConfig(dataDir)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	return scoreFile(cfg, path, scoreSave)
}

// scoreFile scores one answers file and renders the report. Shared
// with the batch command.
func scoreFile(cfg *config.Config, path string, save bool) error {
	s, err := session.LoadAnswerFile(path)
	if err != nil {
		return err
	}
	if scoreName != "" {
		s.Patient.Name = scoreName
	}
	if scoreBirthdate != "" {
		s.Patient.Birthdate = scoreBirthdate
	}

	if !session.ValidatePatient(s.Patient) {
		return fmt.Errorf("patient name and birthdate are required (set them in %s or via --name/--birthdate)", path)
	}
	if !s.Complete() {
		return fmt.Errorf("answers file %s is incomplete; missing: %s", path, strings.Join(s.Missing(), ", "))
	}

	items := result.BuildItems(s.Answers)
	report := types.SurveyResult{PatientInfo: s.Patient, Results: items}

	if save {
		repo, closeRepo, err := openRepository(cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		saved := result.New(s.Patient, items)
		if err := repo.Append(saved); err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}
		report = saved
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
