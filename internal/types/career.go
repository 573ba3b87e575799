// Package types provides type definitions for structured data used throughout the fairpath system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillRating represents a single skill attached to a career record,
// using the O*NET importance and level scales.
type SkillRating struct {
	SkillID    string  `json:"skill_id"`
	Name       string  `json:"name"`
	Importance float64 `json:"importance"` // 0-5 scale
	Level      float64 `json:"level"`      // 0-7 scale
}

// Outlook holds the BLS projection fields for a career.
// All fields are optional in the catalog; zero values mean "unknown".
type Outlook struct {
	GrowthRate     float64 `json:"growth_rate,omitempty"`     // Percent, may be negative
	MedianWage     float64 `json:"median_wage,omitempty"`     // USD per year
	AnnualOpenings float64 `json:"annual_openings,omitempty"` // Projected openings per year
	StabilityScore float64 `json:"stability_score,omitempty"` // 0-1
}

// CareerRecord represents a single occupation in the career catalog.
// Records are immutable after catalog load.
type CareerRecord struct {
	CareerID       string             `json:"career_id"`
	SOCCode        string             `json:"soc_code"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	Skills         []SkillRating      `json:"skills"`
	Tasks          []string           `json:"tasks,omitempty"`
	Interests      map[string]float64 `json:"interests,omitempty"`   // RIASEC category -> 0-7
	WorkValues     map[string]float64 `json:"work_values,omitempty"` // Work value -> 0-7
	Outlook        *Outlook           `json:"outlook,omitempty"`
	EducationLevel string             `json:"education_level,omitempty"`
}

// educationRanks orders typical education levels for comparisons.
var educationRanks = map[string]float64{
	"high_school":  0,
	"some_college": 1,
	"associates":   2,
	"bachelors":    3,
	"masters":      4,
	"professional": 4.5,
	"doctoral":     5,
}

// EducationRank maps an education level string to a comparable rank.
// Unknown or empty levels rank in the middle so they neither pass nor
// fail strict comparisons decisively.
func EducationRank(level string) float64 {
	if rank, ok := educationRanks[level]; ok {
		return rank
	}
	return 2.5
}

// SkillNames returns the names of all skills attached to the record,
// in catalog order.
func (c *CareerRecord) SkillNames() []string {
	names := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		names = append(names, s.Name)
	}
	return names
}
