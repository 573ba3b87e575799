// Package explain derives per-recommendation explanations and
// confidence estimates from feature vectors.
package explain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/fairpath/internal/features"
	"github.com/jonathan/fairpath/internal/types"
)

const (
	// maxContributingSkills caps the skill list in an explanation.
	maxContributingSkills = 5
	// contributionThreshold filters out skills whose contribution is
	// too small to justify a "why" claim.
	contributionThreshold = 0.1
	// affinityCallout is the affinity above which interest or
	// work-value alignment earns its own why point.
	affinityCallout = 0.75
)

// Explain produces the explanation for a single scored career. The
// contribution of a skill feature is the product of the user's and the
// career's weight for it; only the demographic-free feature vocabulary
// can ever appear in the output.
func Explain(space *features.Space, userVec, careerVec []float64, method string, unmatched []string) types.Explanation {
	userSkills := space.SkillSub(userVec)
	careerSkills := space.SkillSub(careerVec)

	contributions := make([]types.SkillContribution, 0, maxContributingSkills)
	for i, u := range userSkills {
		if u == 0 {
			continue
		}
		c := u * careerSkills[i]
		if c <= contributionThreshold {
			continue
		}
		contributions = append(contributions, types.SkillContribution{
			Skill:           space.SkillName(i),
			UserValue:       u,
			OccupationValue: careerSkills[i],
			Contribution:    c,
		})
	}

	// Highest contribution first; ties broken by name for stable output.
	sort.Slice(contributions, func(i, j int) bool {
		if contributions[i].Contribution != contributions[j].Contribution {
			return contributions[i].Contribution > contributions[j].Contribution
		}
		return contributions[i].Skill < contributions[j].Skill
	})
	if len(contributions) > maxContributingSkills {
		contributions = contributions[:maxContributingSkills]
	}

	breakdown := types.SimilarityBreakdown{
		SkillSimilarity:   features.Cosine(userSkills, careerSkills),
		InterestAffinity:  features.Affinity(space.InterestSub(userVec), space.InterestSub(careerVec)),
		WorkValueAffinity: features.Affinity(space.ValueSub(userVec), space.ValueSub(careerVec)),
	}

	// An untouched interest or value sub-vector sits at the neutral
	// midpoint and would trivially match any equally neutral career, so
	// affinity callouts require the user to have actually scored axes.
	hasInterests := !isNeutral(space.InterestSub(userVec))
	hasValues := !isNeutral(space.ValueSub(userVec))

	return types.Explanation{
		Method:                method,
		TopContributingSkills: contributions,
		WhyPoints:             whyPoints(contributions, breakdown, unmatched, hasInterests, hasValues),
		SimilarityBreakdown:   breakdown,
		UnmatchedSkills:       unmatched,
	}
}

func isNeutral(vec []float64) bool {
	for _, v := range vec {
		if v != features.Neutral {
			return false
		}
	}
	return true
}

// whyPoints renders the fixed-template explanation bullets.
func whyPoints(contributions []types.SkillContribution, breakdown types.SimilarityBreakdown, unmatched []string, hasInterests, hasValues bool) []string {
	var points []string

	for _, c := range contributions {
		switch {
		case c.Contribution >= 0.5:
			points = append(points, fmt.Sprintf(
				"%s is central to this career and one of your strongest skills (match strength %.0f%%)",
				c.Skill, c.Contribution*100))
		case c.Contribution >= 0.25:
			points = append(points, fmt.Sprintf(
				"Your %s skill maps directly onto this career's requirements (match strength %.0f%%)",
				c.Skill, c.Contribution*100))
		default:
			points = append(points, fmt.Sprintf(
				"%s gives you a partial head start here (match strength %.0f%%)",
				c.Skill, c.Contribution*100))
		}
	}

	if hasInterests && breakdown.InterestAffinity >= affinityCallout {
		points = append(points, "Your interest profile closely matches people who thrive in this career")
	}
	if hasValues && breakdown.WorkValueAffinity >= affinityCallout {
		points = append(points, "This career's typical work environment matches what you value")
	}

	if len(unmatched) > 0 {
		points = append(points, fmt.Sprintf(
			"Skills we could not match to this career's profile and did not score: %s",
			strings.Join(unmatched, ", ")))
	}

	if len(points) == 0 {
		points = append(points, "Ranked on overall profile similarity; add skills or interests for a more specific explanation")
	}

	return points
}
