package types

// Confidence levels assigned to recommendation scores.
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// Scoring methods disclosed in every explanation.
const (
	MethodMLModel  = "ml_model"
	MethodBaseline = "baseline"
)

// Input quality tiers derived from how much signal the user supplied.
const (
	InputQualityEmpty      = "empty"
	InputQualityThin       = "thin"
	InputQualitySufficient = "sufficient"
)

// SkillContribution records how much a single skill feature contributed
// to a recommendation score.
type SkillContribution struct {
	Skill           string  `json:"skill"`
	UserValue       float64 `json:"user_value"`       // 0-1
	OccupationValue float64 `json:"occupation_value"` // 0-1
	Contribution    float64 `json:"contribution"`     // 0-1
}

// SimilarityBreakdown splits a score into its sub-vector similarities.
type SimilarityBreakdown struct {
	SkillSimilarity   float64 `json:"skill_similarity"`
	InterestAffinity  float64 `json:"interest_affinity"`
	WorkValueAffinity float64 `json:"work_value_affinity"`
}

// Explanation describes why a career was recommended.
type Explanation struct {
	Method                string              `json:"method"` // ml_model or baseline
	TopContributingSkills []SkillContribution `json:"top_contributing_skills"`
	WhyPoints             []string            `json:"why_points"`
	SimilarityBreakdown   SimilarityBreakdown `json:"similarity_breakdown"`
	UnmatchedSkills       []string            `json:"unmatched_skills,omitempty"`
}

// ScoreRange is the uncertainty band around a point score.
// Min and Max are clamped to [0,1] and symmetric around the point
// estimate before clamping.
type ScoreRange struct {
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	PointEstimate float64 `json:"point_estimate"`
}

// Recommendation is a single ranked career suggestion. Recommendations
// are created per request and never persisted.
type Recommendation struct {
	CareerID    string      `json:"career_id"`
	Name        string      `json:"name"`
	SOCCode     string      `json:"soc_code"`
	Score       float64     `json:"score"` // 0-1
	Confidence  string      `json:"confidence"`
	ScoreRange  ScoreRange  `json:"score_range"`
	Explanation Explanation `json:"explanation"`
}

// RecommendationSet is the complete response for a recommendation request.
type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	TotalCount      int              `json:"total_count"`
	InputQuality    string           `json:"input_quality"`
	Method          string           `json:"method"`
}
