package types

// Transition difficulty classifications.
const (
	DifficultyLow    = "Low"
	DifficultyMedium = "Medium"
	DifficultyHigh   = "High"
)

// CareerRef identifies a career in a switch analysis response.
type CareerRef struct {
	CareerID string `json:"career_id"`
	Name     string `json:"name"`
	SOCCode  string `json:"soc_code,omitempty"`
}

// SkillOverlap is the name-set comparison between two careers.
// OverlapPercentage is |matching| / |target skills| expressed as 0-100,
// and 0 when the target has no skills.
type SkillOverlap struct {
	MatchingSkills    []string `json:"matching_skills"`
	MissingSkills     []string `json:"missing_skills"`
	OverlapPercentage float64  `json:"overlap_percentage"`
}

// SkillTransfer describes one skill's role in a career transition.
type SkillTransfer struct {
	Skill       string  `json:"skill"`
	SourceLevel float64 `json:"source_level"` // 0-1
	TargetLevel float64 `json:"target_level"` // 0-1
	Gap         float64 `json:"gap,omitempty"`
}

// TransferMap buckets the target career's skills by how they transfer
// from the source career.
type TransferMap struct {
	TransfersDirectly []SkillTransfer `json:"transfers_directly"`
	NeedsLearning     []SkillTransfer `json:"needs_learning"`
	OptionalSkills    []SkillTransfer `json:"optional_skills"`
}

// TransitionTime is a rough months estimate for completing a switch.
type TransitionTime struct {
	MinMonths int    `json:"min_months"`
	MaxMonths int    `json:"max_months"`
	Range     string `json:"range"`
	Note      string `json:"note"`
}

// Factor is a single success or risk factor in a switch assessment.
type Factor struct {
	Factor      string `json:"factor"`
	Description string `json:"description"`
	Impact      string `json:"impact"` // positive or negative
}

// SwitchAnalysis is the complete career-switch comparison result.
type SwitchAnalysis struct {
	SourceCareer      CareerRef      `json:"source_career"`
	TargetCareer      CareerRef      `json:"target_career"`
	SkillOverlap      SkillOverlap   `json:"skill_overlap"`
	VectorSimilarity  float64        `json:"vector_similarity"` // cosine over skill vectors, 0-1
	TransferMap       TransferMap    `json:"transfer_map"`
	Difficulty        string         `json:"difficulty"`
	TransitionTime    TransitionTime `json:"transition_time"`
	SuccessFactors    []Factor       `json:"success_factors"`
	RiskFactors       []Factor       `json:"risk_factors"`
	OverallAssessment string         `json:"overall_assessment"`
}
