package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fairpath/internal/config"
	"github.com/jonathan/fairpath/internal/observability"
	"github.com/jonathan/fairpath/internal/transition"
)

var analyzeSwitchCmd = &cobra.Command{
	Use:   "analyze-switch",
	Short: "Analyze a switch between two catalog careers",
	Long:  "Compares a source and target career: transferable skills, skills to learn, difficulty, estimated transition time, and the success and risk factors of the move.",
	RunE:  runAnalyzeSwitch,
}

var (
	switchFrom    string
	switchTo      string
	switchCatalog string
	switchOutput  string
	switchConfig  string
	switchVerbose bool
)

func init() {
	analyzeSwitchCmd.Flags().StringVar(&switchFrom, "from", "", "Source career_id (required)")
	analyzeSwitchCmd.Flags().StringVar(&switchTo, "to", "", "Target career_id (required)")
	analyzeSwitchCmd.Flags().StringVar(&switchCatalog, "catalog", "", "Path to the career catalog JSON file")
	analyzeSwitchCmd.Flags().StringVarP(&switchOutput, "out", "o", "", "Path to output SwitchAnalysis JSON file (default stdout)")
	analyzeSwitchCmd.Flags().StringVar(&switchConfig, "config", "", "Path to a JSON config file")
	analyzeSwitchCmd.Flags().BoolVarP(&switchVerbose, "verbose", "v", false, "Print a human-readable summary")

	if err := analyzeSwitchCmd.MarkFlagRequired("from"); err != nil {
		panic(fmt.Sprintf("failed to mark from flag as required: %v", err))
	}
	if err := analyzeSwitchCmd.MarkFlagRequired("to"); err != nil {
		panic(fmt.Sprintf("failed to mark to flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeSwitchCmd)
}

func runAnalyzeSwitch(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(switchConfig, config.Config{
		Catalog: switchCatalog,
		Verbose: switchVerbose,
	})
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)

	cat, space, _, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	source, err := cat.ByID(switchFrom)
	if err != nil {
		return fmt.Errorf("source career: %w", err)
	}
	target, err := cat.ByID(switchTo)
	if err != nil {
		return fmt.Errorf("target career: %w", err)
	}

	analysis := transition.NewAnalyzer(space).AnalyzeSwitch(source, target)

	if err := writeOutput(switchOutput, analysis); err != nil {
		return err
	}
	validateOutput("schemas/switch_analysis.schema.json", switchOutput)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintSwitchAnalysis(analysis)
	}
	if switchOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully analyzed switch from %s to %s\n", source.Name, target.Name)
	}

	return nil
}
