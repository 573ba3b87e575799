package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fairpath/internal/config"
	"github.com/jonathan/fairpath/internal/observability"
)

var modelStatusCmd = &cobra.Command{
	Use:   "model-status",
	Short: "Report whether the trained scoring model is usable",
	Long:  "Attempts to load the configured model artifact and reports the loader state. The engine never fails when the model is unavailable; it degrades to the deterministic baseline.",
	RunE:  runModelStatus,
}

var (
	modelStatusCatalog string
	modelStatusModel   string
	modelStatusConfig  string
	modelStatusJSON    bool
)

func init() {
	modelStatusCmd.Flags().StringVar(&modelStatusCatalog, "catalog", "", "Path to the career catalog JSON file")
	modelStatusCmd.Flags().StringVar(&modelStatusModel, "model", "", "Path to the trained model artifact")
	modelStatusCmd.Flags().StringVar(&modelStatusConfig, "config", "", "Path to a JSON config file")
	modelStatusCmd.Flags().BoolVar(&modelStatusJSON, "json", false, "Write the status as JSON instead of a summary box")

	rootCmd.AddCommand(modelStatusCmd)
}

func runModelStatus(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(modelStatusConfig, config.Config{
		Catalog: modelStatusCatalog,
		Model:   modelStatusModel,
	})
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)

	_, _, rec, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	// Force the lazy load so the status reflects a real load attempt
	// rather than the untouched "unloaded" state.
	rec.WarmModel()
	status := rec.ModelStatus()

	if modelStatusJSON {
		return writeOutput("", status)
	}

	observability.NewPrinter(os.Stdout).PrintModelStatus(status)
	return nil
}
