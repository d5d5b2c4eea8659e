// Package config loads the mindscreen configuration from defaults,
// rc files, environment variables, and bound flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the mindscreen configuration.
type Config struct {
	DataDir string `mapstructure:"dataDir"`
	Store   string `mapstructure:"store"`
	Format  string `mapstructure:"format"`
	Output  string `mapstructure:"output"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`
}

// LoadConfig loads configuration from various sources. dataDir, when
// non-empty, overrides whatever the other sources produced.
func LoadConfig(dataDir string) (*Config, error) {
	homeDir, _ := os.UserHomeDir()
	viper.SetDefault("dataDir", filepath.Join(homeDir, ".mindscreen"))
	viper.SetDefault("store", "file")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)

	configPaths := []string{".mindscreenrc.json", ".mindscreenrc.yaml", ".mindscreenrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("MINDSCREEN")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if dataDir != "" {
		config.DataDir = dataDir
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Store != "file" && config.Store != "sqlite" {
		return fmt.Errorf("invalid store: %s. Must be 'file' or 'sqlite'", config.Store)
	}

	if config.DataDir == "" {
		return fmt.Errorf("data directory must not be empty")
	}

	return nil
}
