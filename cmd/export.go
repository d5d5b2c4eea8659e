package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/mindscreen/internal/config"
	"github.com/dotcommander/mindscreen/internal/history"
	"github.com/dotcommander/mindscreen/internal/outputters"
)

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export saved results",
	Long: `With a result id, exports that result in the configured format
(--format json|markdown, --output file). With no arguments, exports the
entire history as a JSON array.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExport(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(args []string) error {
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

	if len(args) == 1 {
		for _, r := range results {
			if r.ID == args[0] {
				outputter := outputters.NewOutputter(cfg)
				return outputter.Format(r, cfg.Format)
			}
		}
		return fmt.Errorf("no saved result with id %q", args[0])
	}

	data, err := json.MarshalIndent(history.SortByRecency(results), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	data = append(data, '\n')

	if cfg.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(cfg.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	if !cfg.Quiet {
		fmt.Printf("Exported %d results to %s\n", len(results), cfg.Output)
	}
	return nil
}
