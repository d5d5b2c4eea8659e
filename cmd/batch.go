package cmd

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/dotcommander/mindscreen/internal/config"
)

var batchSave bool

var batchCmd = &cobra.Command{
	Use:   "batch <glob>",
	Short: "Score every answers file matching a glob",
	Long: `Scores all answers files matched by a doublestar glob pattern, e.g.

  mindscreen batch 'sessions/**/*.yaml'

Each file is scored independently; a bad file is reported and the rest
continue.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBatch(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "Append each result to the local history")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(pattern string) error {
	cfg, err := config.LoadConfig(dataDir)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no answer files match %q", pattern)
	}

	failed := 0
	for _, path := range matches {
		if !cfg.Quiet {
			fmt.Printf("── %s ──\n", path)
		}
		if err := scoreFile(cfg, path, batchSave); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", path, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to score", failed, len(matches))
	}
	return nil
}
