package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/fairpath/internal/config"
	"github.com/jonathan/fairpath/internal/db"
	"github.com/jonathan/fairpath/internal/types"
)

var recordFeedbackCmd = &cobra.Command{
	Use:   "record-feedback",
	Short: "Record user feedback on a recommendation",
	Long:  "Stores one feedback event (selected, liked, disliked, applied, hired, rejected) in the feedback database for later model training. Only the career reference and the predicted score are stored, never the profile.",
	RunE:  runRecordFeedback,
}

var (
	feedbackCareerID string
	feedbackType     string
	feedbackScore    float64
	feedbackPosition int
	feedbackCatalog  string
	feedbackConfig   string
)

func init() {
	recordFeedbackCmd.Flags().StringVar(&feedbackCareerID, "career", "", "career_id the feedback refers to (required)")
	recordFeedbackCmd.Flags().StringVarP(&feedbackType, "type", "t", "", "Feedback type: selected, liked, disliked, applied, hired, rejected (required)")
	recordFeedbackCmd.Flags().Float64Var(&feedbackScore, "score", 0, "Predicted score the recommendation carried")
	recordFeedbackCmd.Flags().IntVar(&feedbackPosition, "position", 0, "Position of the recommendation in the ranked list")
	recordFeedbackCmd.Flags().StringVar(&feedbackCatalog, "catalog", "", "Path to the career catalog JSON file")
	recordFeedbackCmd.Flags().StringVar(&feedbackConfig, "config", "", "Path to a JSON config file")

	if err := recordFeedbackCmd.MarkFlagRequired("career"); err != nil {
		panic(fmt.Sprintf("failed to mark career flag as required: %v", err))
	}
	if err := recordFeedbackCmd.MarkFlagRequired("type"); err != nil {
		panic(fmt.Sprintf("failed to mark type flag as required: %v", err))
	}

	rootCmd.AddCommand(recordFeedbackCmd)
}

func runRecordFeedback(cmd *cobra.Command, _ []string) error {
	feedbackType = strings.ToLower(strings.TrimSpace(feedbackType))
	if !types.ValidFeedbackType(feedbackType) {
		return fmt.Errorf("invalid feedback type %q: must be one of selected, liked, disliked, applied, hired, rejected", feedbackType)
	}

	cfg, err := resolveConfig(feedbackConfig, config.Config{Catalog: feedbackCatalog})
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("no feedback database configured: set %s or add 'database_url' to the config file", config.EnvDatabaseURL)
	}

	logger := newLogger(cfg.Verbose)

	entry := &types.FeedbackEntry{
		CareerID:        feedbackCareerID,
		FeedbackType:    feedbackType,
		PredictedScore:  feedbackScore,
		RankingPosition: feedbackPosition,
	}

	// Resolve the career name when a catalog is available so aggregates
	// stay readable without a catalog join.
	if cfg.Catalog != "" {
		cat, _, _, err := buildEngine(cfg, logger)
		if err != nil {
			return err
		}
		career, err := cat.ByID(feedbackCareerID)
		if err != nil {
			return err
		}
		entry.CareerName = career.Name
		entry.SOCCode = career.SOCCode
	}

	ctx := cmd.Context()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.RecordFeedback(ctx, entry)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Recorded %s feedback for %s (id %s)\n", feedbackType, feedbackCareerID, id)
	return nil
}
