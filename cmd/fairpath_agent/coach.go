package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fairpath/internal/coach"
	"github.com/jonathan/fairpath/internal/config"
	"github.com/jonathan/fairpath/internal/guardrails"
	"github.com/jonathan/fairpath/internal/observability"
	"github.com/jonathan/fairpath/internal/types"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Generate a coaching plan for a target career",
	Long:  "Builds a deterministic, template-based coaching plan for a catalog career: next actions, a seven-day starter plan, and a learning roadmap. An optional profile narrows the plan to the user's actual skill gaps.",
	RunE:  runCoach,
}

var (
	coachCareerID  string
	coachProfile   string
	coachCatalog   string
	coachOutput    string
	coachConfig    string
	coachPortfolio bool
	coachInterview bool
	coachVerbose   bool
)

func init() {
	coachCmd.Flags().StringVar(&coachCareerID, "career", "", "Target career_id (required)")
	coachCmd.Flags().StringVarP(&coachProfile, "profile", "p", "", "Path to UserProfile JSON file to tailor the plan")
	coachCmd.Flags().StringVar(&coachCatalog, "catalog", "", "Path to the career catalog JSON file")
	coachCmd.Flags().StringVarP(&coachOutput, "out", "o", "", "Path to output CoachPlan JSON file (default stdout)")
	coachCmd.Flags().StringVar(&coachConfig, "config", "", "Path to a JSON config file")
	coachCmd.Flags().BoolVar(&coachPortfolio, "portfolio", false, "Include portfolio-building steps")
	coachCmd.Flags().BoolVar(&coachInterview, "interview", false, "Include interview-preparation steps")
	coachCmd.Flags().BoolVarP(&coachVerbose, "verbose", "v", false, "Print a human-readable summary")

	if err := coachCmd.MarkFlagRequired("career"); err != nil {
		panic(fmt.Sprintf("failed to mark career flag as required: %v", err))
	}

	rootCmd.AddCommand(coachCmd)
}

func runCoach(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(coachConfig, config.Config{
		Catalog: coachCatalog,
		Verbose: coachVerbose,
	})
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)

	cat, _, _, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	career, err := cat.ByID(coachCareerID)
	if err != nil {
		return err
	}

	// The profile is optional, but when given it goes through the same
	// guardrails as a recommendation request.
	var profile *types.UserProfile
	if coachProfile != "" {
		raw, err := loadProfile(coachProfile)
		if err != nil {
			return err
		}
		validator := guardrails.NewValidator(customDenyTerms(cfg.ExtraDenyTerms))
		profile, err = validator.ValidateProfile(raw)
		if err != nil {
			return fmt.Errorf("profile rejected: %w", err)
		}
	}

	plan := coach.BuildPlan(career, profile, coach.Options{
		IncludePortfolio: coachPortfolio,
		IncludeInterview: coachInterview,
	})

	if err := writeOutput(coachOutput, plan); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintCoachPlan(plan)
	}
	if coachOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote coaching plan for %s\n", career.Name)
	}

	return nil
}
