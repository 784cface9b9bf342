// Package main provides the cv_agent CLI: build CV documents from a base
// résumé model, inspect the results and serve the build API over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/logger"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	// fileConfig holds the values of --config plus the environment; command
	// flags take precedence over it.
	fileConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:           "cv_agent",
	Short:         "Portfolio CV builder",
	Long:          "cv_agent lays out role-specific CVs as PDF or RTF from one base résumé model, using a choice of visual templates.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: json or pretty")
}

// setup loads the config file and the environment, then initialises logging.
func setup() error {
	fileConfig = config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		fileConfig = *loaded
	}
	fileConfig.ApplyEnv()

	if logLevel != "" {
		fileConfig.LogLevel = logLevel
	}
	if logFormat != "" {
		fileConfig.LogFormat = logFormat
	}
	if err := fileConfig.Validate(); err != nil {
		return err
	}

	format := fileConfig.LogFormat
	if format == "" {
		format = "pretty"
	}
	logger.Init(logger.Config{Level: fileConfig.LogLevel, Format: format})
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
