package ranking

import (
	"github.com/jonathan/fairpath/internal/features"
	"github.com/jonathan/fairpath/internal/types"
)

// Component weights for the baseline score. Skill coverage carries the
// most weight; interest and work-value affinity refine the ordering.
const (
	skillWeight    = 0.60
	interestWeight = 0.25
	valueWeight    = 0.15

	// emptyProfileScore is the uniform score returned when the user
	// supplied no usable signal at all, so a ranked list still renders.
	emptyProfileScore = 0.30
)

// BaselineRanker is the deterministic, weight-based scorer. It needs no
// trained artifact and is the system's fairness fallback: identical
// inputs always yield bit-identical scores.
type BaselineRanker struct {
	space *features.Space
}

// NewBaselineRanker creates a baseline scorer over the given feature space.
func NewBaselineRanker(space *features.Space) *BaselineRanker {
	return &BaselineRanker{space: space}
}

// Method returns the baseline provenance tag.
func (r *BaselineRanker) Method() string { return types.MethodBaseline }

// Score combines weighted skill coverage with interest and work-value
// affinity. A fully neutral user vector gets the uniform empty-profile
// score for every career.
func (r *BaselineRanker) Score(userVec, careerVec []float64) float64 {
	userSkills := r.space.SkillSub(userVec)
	if features.IsAllZero(userSkills) &&
		isAllNeutral(r.space.InterestSub(userVec)) &&
		isAllNeutral(r.space.ValueSub(userVec)) {
		return emptyProfileScore
	}

	// Coverage rewards careers that value the skills the user has and
	// ignores career skills the user never mentioned: a career whose
	// skill weights dominate another's pointwise never scores below it.
	skillScore := coverage(userSkills, r.space.SkillSub(careerVec))
	interestScore := features.Affinity(r.space.InterestSub(userVec), r.space.InterestSub(careerVec))
	valueScore := features.Affinity(r.space.ValueSub(userVec), r.space.ValueSub(careerVec))

	score := skillWeight*skillScore + interestWeight*interestScore + valueWeight*valueScore
	return features.Clamp01(score)
}

// coverage measures how strongly the career weights the user's skill
// mass: sum of career weight times user weight over the user's total
// skill weight. Returns 0 when the user has no skill signal.
func coverage(userSkills, careerSkills []float64) float64 {
	var matched, total float64
	for i, u := range userSkills {
		if u == 0 {
			continue
		}
		total += u
		matched += u * careerSkills[i]
	}
	if total == 0 {
		return 0
	}
	return features.Clamp01(matched / total)
}

// isAllNeutral reports whether every element sits at the neutral midpoint.
func isAllNeutral(vec []float64) bool {
	for _, v := range vec {
		if v != features.Neutral {
			return false
		}
	}
	return true
}
