package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fairpath/internal/config"
	"github.com/jonathan/fairpath/internal/guardrails"
	"github.com/jonathan/fairpath/internal/observability"
	"github.com/jonathan/fairpath/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend careers for a user profile",
	Long:  "Validates a user profile against the demographic guardrails, scores every catalog career from skills, interests, and work values, and writes the ranked, explained recommendations as JSON.",
	RunE:  runRecommend,
}

var (
	recommendProfile   string
	recommendCatalog   string
	recommendModel     string
	recommendOutput    string
	recommendConfig    string
	recommendTopN      int
	recommendUseML     bool
	recommendExactOnly bool
	recommendVerbose   bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to input UserProfile JSON file (required)")
	recommendCmd.Flags().StringVar(&recommendCatalog, "catalog", "", "Path to the career catalog JSON file")
	recommendCmd.Flags().StringVar(&recommendModel, "model", "", "Path to the trained model artifact")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output RecommendationSet JSON file (default stdout)")
	recommendCmd.Flags().StringVar(&recommendConfig, "config", "", "Path to a JSON config file")
	recommendCmd.Flags().IntVarP(&recommendTopN, "top", "n", 0, "Number of recommendations to return")
	recommendCmd.Flags().BoolVar(&recommendUseML, "use-ml", false, "Prefer the trained model over the deterministic baseline")
	recommendCmd.Flags().BoolVar(&recommendExactOnly, "exact-only", false, "Require exact skill-name matches")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print a human-readable summary")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(recommendConfig, config.Config{
		Catalog:      recommendCatalog,
		Model:        recommendModel,
		TopN:         recommendTopN,
		UseML:        recommendUseML,
		DisableFuzzy: recommendExactOnly,
		Verbose:      recommendVerbose,
	})
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)

	profile, err := loadProfile(recommendProfile)
	if err != nil {
		return err
	}

	// Guardrails run before anything else touches the profile. A
	// violation rejects the whole request.
	validator := guardrails.NewValidator(customDenyTerms(cfg.ExtraDenyTerms))
	cleaned, err := validator.ValidateProfile(profile)
	if err != nil {
		return fmt.Errorf("profile rejected: %w", err)
	}

	_, _, rec, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	set, err := rec.Recommend(cmd.Context(), cleaned, recommend.Options{
		TopN:  cfg.TopN,
		UseML: cfg.UseML,
	})
	if err != nil {
		return fmt.Errorf("failed to produce recommendations: %w", err)
	}

	if err := writeOutput(recommendOutput, set); err != nil {
		return err
	}
	validateOutput("schemas/recommendation_set.schema.json", recommendOutput)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintRecommendations(set)
	}
	if recommendOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote %d recommendations to %s\n", set.TotalCount, recommendOutput)
	}

	return nil
}

// customDenyTerms maps deployment-specific deny terms into the deny
// list's term -> category form.
func customDenyTerms(terms []string) map[string]string {
	if len(terms) == 0 {
		return nil
	}
	extra := make(map[string]string, len(terms))
	for _, t := range terms {
		extra[t] = guardrails.CategoryCustom
	}
	return extra
}
