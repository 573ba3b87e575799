package features

import (
	"strings"

	"github.com/jonathan/fairpath/internal/types"
)

// Neutral is the normalized midpoint used for axes the user did not
// supply, so absence of signal never penalizes a career.
const Neutral = 0.5

// Outlook normalization bounds. Growth rates are mapped from the
// [-growthSpan, +growthSpan] percent range onto [0,1] around Neutral;
// wages are scaled against wageCeiling.
const (
	growthSpan  = 20.0
	wageCeiling = 200000.0
)

// BuildUserVector maps a validated profile onto the feature space.
// Matched skills carry their normalized importance (neutral midpoint
// when no importance was supplied); unmatched skills are reported in the
// MatchResult and contribute zero weight. Interest, work-value, and
// outlook axes default to the neutral midpoint.
func (s *Space) BuildUserVector(profile *types.UserProfile, fuzzy bool) ([]float64, MatchResult) {
	vec := make([]float64, s.Size())

	match := s.MatchSkills(profile.Skills, fuzzy)
	for _, m := range match.Matched {
		vec[m.Index] = userImportance(profile, m.UserSkill)
	}

	interests := s.InterestSub(vec)
	for i, category := range RIASECCategories {
		interests[i] = scaleOrNeutral(profile.Interests, category, types.InterestMax)
	}

	values := s.ValueSub(vec)
	for i, name := range WorkValueNames {
		values[i] = scaleOrNeutral(profile.WorkValues, name, types.WorkValueMax)
	}

	outlook := s.OutlookSub(vec)
	for i := range outlook {
		outlook[i] = Neutral
	}

	return vec, match
}

// BuildCareerVector maps a catalog record onto the feature space. Skill
// features blend normalized importance and level when both are present;
// interest and work-value axes come from the record's O*NET profiles,
// defaulting to neutral when the record omits them.
func (s *Space) BuildCareerVector(career *types.CareerRecord) []float64 {
	vec := make([]float64, s.Size())

	for _, skill := range career.Skills {
		idx, ok := s.exactIndex[strings.ToLower(strings.TrimSpace(skill.Name))]
		if !ok {
			continue
		}
		weight := skill.Importance / types.ImportanceMax
		if skill.Level > 0 {
			weight = (weight + skill.Level/7.0) / 2
		}
		if weight > vec[idx] {
			vec[idx] = clamp01(weight)
		}
	}

	interests := s.InterestSub(vec)
	for i, category := range RIASECCategories {
		interests[i] = scaleOrNeutral(career.Interests, category, types.InterestMax)
	}

	values := s.ValueSub(vec)
	for i, name := range WorkValueNames {
		values[i] = scaleOrNeutral(career.WorkValues, name, types.WorkValueMax)
	}

	outlook := s.OutlookSub(vec)
	outlook[0], outlook[1], outlook[2] = Neutral, Neutral, Neutral
	if o := career.Outlook; o != nil {
		outlook[0] = clamp01(Neutral + o.GrowthRate/(2*growthSpan))
		if o.MedianWage > 0 {
			outlook[1] = clamp01(o.MedianWage / wageCeiling)
		}
		if o.StabilityScore > 0 {
			outlook[2] = clamp01(o.StabilityScore)
		}
	}

	return vec
}

// userImportance returns the normalized importance for a user skill,
// matching the importance map case-insensitively and defaulting to the
// neutral midpoint when the user supplied no importance.
func userImportance(profile *types.UserProfile, skill string) float64 {
	if v, ok := profile.SkillImportance[skill]; ok {
		return clamp01(v / types.ImportanceMax)
	}
	lower := strings.ToLower(skill)
	for name, v := range profile.SkillImportance {
		if strings.ToLower(name) == lower {
			return clamp01(v / types.ImportanceMax)
		}
	}
	return Neutral
}

// scaleOrNeutral normalizes scores[key] by max, or returns Neutral when
// the key is absent. Keys are matched case-insensitively.
func scaleOrNeutral(scores map[string]float64, key string, max float64) float64 {
	if v, ok := scores[key]; ok {
		return clamp01(v / max)
	}
	lower := strings.ToLower(key)
	for name, v := range scores {
		if strings.ToLower(name) == lower {
			return clamp01(v / max)
		}
	}
	return Neutral
}
