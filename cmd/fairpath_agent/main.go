// Package main provides the entry point for the FairPath career
// recommendation CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fairpath_agent",
	Short: "Fairness-focused career recommendation engine",
	Long:  "FairPath recommends careers from skills, interests, and work values alone. Demographic input is rejected outright, every recommendation is explained, and a deterministic baseline keeps the engine available when no trained model is present.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger. Verbose mode enables debug level and
// human-readable console output; otherwise only warnings and errors
// reach stderr.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
