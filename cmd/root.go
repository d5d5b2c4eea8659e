package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/mindscreen/internal/config"
	"github.com/dotcommander/mindscreen/internal/history"
)

var (
	dataDir      string
	storeBackend string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
)

// exitFunc is swappable so command tests can intercept exits.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "mindscreen",
	Short: "마음 상태 자가 진단 - a self-administered mental health screening tool",
	Long: `Mindscreen is a single-user screening questionnaire for anxiety (GAD-7),
depression (PHQ-9) and insomnia (ISI). It scores responses against fixed
clinical cut-points, renders a severity summary, and keeps results in a
local history for later review and pairwise comparison.

Running mindscreen without a subcommand starts the interactive
questionnaire.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTake(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Data directory for stored results (default ~/.mindscreen)")
	rootCmd.PersistentFlags().StringVarP(&storeBackend, "store", "s", "file", "History storage backend (file|sqlite)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (json/markdown formats)")

	viper.BindPFlag("dataDir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	configPaths := []string{".mindscreenrc.json", ".mindscreenrc.yaml", ".mindscreenrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

// openRepository builds the history repository over the configured
// backend. The returned closer is a no-op for the file backend.
func openRepository(cfg *config.Config) (*history.Repository, func(), error) {
	switch cfg.Store {
	case "sqlite":
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, nil, fmt.Errorf("error creating data directory: %w", err)
		}
		store, err := history.OpenSQLiteStore(filepath.Join(cfg.DataDir, "mindscreen.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("error opening sqlite store: %w", err)
		}
		return history.NewRepository(store), func() { store.Close() }, nil
	default:
		store := history.NewFileStore(cfg.DataDir)
		return history.NewRepository(store), func() {}, nil
	}
}
