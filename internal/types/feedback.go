package types

import (
	"time"

	"github.com/google/uuid"
)

// Feedback types accepted by the feedback store.
const (
	FeedbackSelected = "selected"
	FeedbackLiked    = "liked"
	FeedbackDisliked = "disliked"
	FeedbackApplied  = "applied"
	FeedbackHired    = "hired"
	FeedbackRejected = "rejected"
)

// FeedbackEntry records a user's reaction to a single recommendation.
// The profile itself is never stored; only the career reference, the
// predicted score, and the derived training label.
type FeedbackEntry struct {
	ID              uuid.UUID `json:"id"`
	CareerID        string    `json:"career_id"`
	CareerName      string    `json:"career_name"`
	SOCCode         string    `json:"soc_code"`
	FeedbackType    string    `json:"feedback_type"`
	PredictedScore  float64   `json:"predicted_score"`
	Label           float64   `json:"label"` // 1.0 positive, 0.0 negative, 0.5 neutral
	RankingPosition int       `json:"ranking_position,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ValidFeedbackType reports whether t is one of the accepted feedback types.
func ValidFeedbackType(t string) bool {
	switch t {
	case FeedbackSelected, FeedbackLiked, FeedbackDisliked,
		FeedbackApplied, FeedbackHired, FeedbackRejected:
		return true
	}
	return false
}

// FeedbackLabel converts a feedback type to its numeric training label:
// 1.0 for positive feedback, 0.0 for negative, 0.5 otherwise.
func FeedbackLabel(feedbackType string) float64 {
	switch feedbackType {
	case FeedbackSelected, FeedbackLiked, FeedbackApplied, FeedbackHired:
		return 1.0
	case FeedbackDisliked, FeedbackRejected:
		return 0.0
	default:
		return 0.5
	}
}

// PopularCareer is an aggregate of positive feedback per career.
type PopularCareer struct {
	CareerID   string `json:"career_id"`
	CareerName string `json:"career_name"`
	SOCCode    string `json:"soc_code"`
	Count      int    `json:"count"`
}
