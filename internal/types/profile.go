package types

// Scale bounds for user-supplied numeric fields. These are fixed API
// contracts: importance uses the 0-5 scale, interests and work values
// use the 0-7 scale.
const (
	ImportanceMax = 5.0
	InterestMax   = 7.0
	WorkValueMax  = 7.0

	// Neutral midpoints used when a field is omitted entirely.
	ImportanceNeutral = ImportanceMax / 2
	InterestNeutral   = InterestMax / 2
	WorkValueNeutral  = WorkValueMax / 2
)

// Structural limits enforced on raw profile input.
const (
	MaxSkills         = 50
	MaxSkillLength    = 100
	MaxFreeTextLength = 500
)

// UserProfile represents the career-relevant signal a user supplies for a
// recommendation request. Profiles are request-scoped and never persisted.
type UserProfile struct {
	// Skills is a free-text skill list, deduplicated case-insensitively.
	Skills []string `json:"skills,omitempty" validate:"max=50,dive,min=1,max=100"`

	// SkillImportance optionally weights individual skills (0-5).
	SkillImportance map[string]float64 `json:"skill_importance,omitempty" validate:"dive,gte=0,lte=5"`

	// Interests maps RIASEC categories to scores (0-7).
	Interests map[string]float64 `json:"interests,omitempty" validate:"dive,gte=0,lte=7"`

	// WorkValues maps work-value names to scores (0-7).
	WorkValues map[string]float64 `json:"work_values,omitempty" validate:"dive,gte=0,lte=7"`

	// InterestNote is an optional free-text description of interests,
	// retained for guardrail scanning only; it never enters the vector.
	InterestNote string `json:"interest_note,omitempty" validate:"max=500"`

	// Constraints are optional structured filters.
	Constraints *Constraints `json:"constraints,omitempty"`
}

// Constraints holds optional structured filters on recommendations.
type Constraints struct {
	MinWage           float64  `json:"min_wage,omitempty" validate:"gte=0"`
	RemotePreferred   bool     `json:"remote_preferred,omitempty"`
	MaxEducationLevel int      `json:"max_education_level,omitempty" validate:"gte=0,lte=5"`
	MaxTrainingMonths int      `json:"max_training_months,omitempty" validate:"gte=0"`
	Locations         []string `json:"locations,omitempty" validate:"max=10,dive,max=100"`
}

// IsEmpty reports whether the profile carries no usable signal at all.
func (p *UserProfile) IsEmpty() bool {
	return len(p.Skills) == 0 && len(p.Interests) == 0 && len(p.WorkValues) == 0
}
