package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fairpath/internal/config"
	"github.com/jonathan/fairpath/internal/guardrails"
	"github.com/jonathan/fairpath/internal/observability"
)

var checkProfileCmd = &cobra.Command{
	Use:   "check-profile",
	Short: "Run guardrail validation on a profile without recommending",
	Long:  "Validates a user profile against the demographic deny list and structural limits, reporting exactly what would be rejected. No scoring happens.",
	RunE:  runCheckProfile,
}

var (
	checkProfilePath   string
	checkProfileConfig string
)

func init() {
	checkProfileCmd.Flags().StringVarP(&checkProfilePath, "profile", "p", "", "Path to input UserProfile JSON file (required)")
	checkProfileCmd.Flags().StringVar(&checkProfileConfig, "config", "", "Path to a JSON config file")

	if err := checkProfileCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(checkProfileCmd)
}

func runCheckProfile(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(checkProfileConfig, config.Config{})
	if err != nil {
		return err
	}

	profile, err := loadProfile(checkProfilePath)
	if err != nil {
		return err
	}

	validator := guardrails.NewValidator(customDenyTerms(cfg.ExtraDenyTerms))
	printer := observability.NewPrinter(os.Stdout)

	if _, err := validator.ValidateProfile(profile); err != nil {
		var violation *guardrails.GuardrailViolation
		if errors.As(err, &violation) {
			printer.PrintGuardrailViolations([]error{violation})
			return fmt.Errorf("profile rejected: %w", violation)
		}
		return fmt.Errorf("profile invalid: %w", err)
	}

	printer.PrintGuardrailViolations(nil)
	return nil
}
