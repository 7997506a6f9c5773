// Package main provides the entry point for the resume formatter CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-formatter/internal/config"
)

var rootCmd = &cobra.Command{
	Use:               "resume_formatter",
	Short:             "Resume content extraction and template formatting",
	Long:              "Resume Formatter extracts structured content from Korean and English .docx resumes, fills standardized templates, and validates the rendered output.",
	PersistentPreRunE: setup,
}

var (
	verbose    bool
	configPath string

	logger zerolog.Logger
	cfg    config.Config
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
}

// setup merges config file values with flags and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*loaded)
	}
	if verbose {
		cfg.Verbose = true
	}

	level := zerolog.InfoLevel
	if cfg.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		level = parsed
	}
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
	logger = zerolog.New(output).Level(level).With().Timestamp().Logger()

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
