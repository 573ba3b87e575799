package explain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fairpath/internal/features"
	"github.com/jonathan/fairpath/internal/types"
)

func testSpace() *features.Space {
	return features.NewSpace([]string{"Communication", "Databases", "Design", "Programming", "Statistics"})
}

func hasPointContaining(points []string, sub string) bool {
	for _, p := range points {
		if strings.Contains(p, sub) {
			return true
		}
	}
	return false
}

func TestExplain_TopContributingSkills(t *testing.T) {
	space := testSpace()

	userVec, match := space.BuildUserVector(&types.UserProfile{
		Skills:          []string{"Programming", "Databases"},
		SkillImportance: map[string]float64{"Programming": 5.0, "Databases": 4.0},
	}, true)
	careerVec := space.BuildCareerVector(&types.CareerRecord{
		CareerID: "dev",
		Skills: []types.SkillRating{
			{Name: "Programming", Importance: 5, Level: 7},
			{Name: "Databases", Importance: 4, Level: 4},
		},
	})

	exp := Explain(space, userVec, careerVec, types.MethodBaseline, match.Unmatched)

	require.Len(t, exp.TopContributingSkills, 2)
	assert.Equal(t, "Programming", exp.TopContributingSkills[0].Skill,
		"highest contribution listed first")
	assert.Greater(t, exp.TopContributingSkills[0].Contribution,
		exp.TopContributingSkills[1].Contribution)
	assert.Equal(t, types.MethodBaseline, exp.Method)
	assert.NotEmpty(t, exp.WhyPoints)
}

func TestExplain_SmallContributionsFiltered(t *testing.T) {
	space := testSpace()

	// Contribution is 0.2 * 0.2 = 0.04, below the reporting threshold.
	userVec, _ := space.BuildUserVector(&types.UserProfile{
		Skills:          []string{"Communication"},
		SkillImportance: map[string]float64{"Communication": 1.0},
	}, true)
	careerVec := space.BuildCareerVector(&types.CareerRecord{
		CareerID: "x",
		Skills:   []types.SkillRating{{Name: "Communication", Importance: 1.0}},
	})

	exp := Explain(space, userVec, careerVec, types.MethodBaseline, nil)
	assert.Empty(t, exp.TopContributingSkills)
}

func TestExplain_CapsAtFiveSkills(t *testing.T) {
	space := testSpace()

	all := []string{"Communication", "Databases", "Design", "Programming", "Statistics"}
	userVec, _ := space.BuildUserVector(&types.UserProfile{
		Skills: all,
		SkillImportance: map[string]float64{
			"Communication": 5, "Databases": 5, "Design": 5, "Programming": 5, "Statistics": 5,
		},
	}, true)

	ratings := make([]types.SkillRating, 0, len(all))
	for _, name := range all {
		ratings = append(ratings, types.SkillRating{Name: name, Importance: 5, Level: 7})
	}
	careerVec := space.BuildCareerVector(&types.CareerRecord{CareerID: "x", Skills: ratings})

	exp := Explain(space, userVec, careerVec, types.MethodBaseline, nil)

	assert.LessOrEqual(t, len(exp.TopContributingSkills), 5)
	// Equal contributions fall back to name order.
	assert.Equal(t, "Communication", exp.TopContributingSkills[0].Skill)
}

func TestExplain_UnmatchedSkillsSurfaced(t *testing.T) {
	space := testSpace()

	userVec, match := space.BuildUserVector(&types.UserProfile{
		Skills: []string{"Programming", "Falconry"},
	}, true)
	careerVec := space.BuildCareerVector(&types.CareerRecord{
		CareerID: "dev",
		Skills:   []types.SkillRating{{Name: "Programming", Importance: 5, Level: 7}},
	})

	exp := Explain(space, userVec, careerVec, types.MethodBaseline, match.Unmatched)

	assert.Equal(t, []string{"Falconry"}, exp.UnmatchedSkills)
	assert.True(t, hasPointContaining(exp.WhyPoints, "Falconry"),
		"unmatched skills get a transparency point")
	assert.True(t, hasPointContaining(exp.WhyPoints, "did not score"))
}

func TestExplain_EmptyProfileFallbackPoint(t *testing.T) {
	space := testSpace()

	userVec, _ := space.BuildUserVector(&types.UserProfile{}, true)
	careerVec := space.BuildCareerVector(&types.CareerRecord{CareerID: "x"})

	exp := Explain(space, userVec, careerVec, types.MethodBaseline, nil)

	require.Len(t, exp.WhyPoints, 1)
	assert.Contains(t, exp.WhyPoints[0], "overall profile similarity")
	assert.False(t, hasPointContaining(exp.WhyPoints, "interest profile"),
		"neutral interest vectors must not claim alignment")
}

func TestExplain_InterestAffinityCallout(t *testing.T) {
	space := testSpace()

	interests := map[string]float64{
		"Realistic": 2, "Investigative": 6, "Artistic": 3,
		"Social": 1, "Enterprising": 4, "Conventional": 5,
	}
	userVec, _ := space.BuildUserVector(&types.UserProfile{
		Skills:    []string{"Programming"},
		Interests: interests,
	}, true)
	careerVec := space.BuildCareerVector(&types.CareerRecord{
		CareerID:  "dev",
		Skills:    []types.SkillRating{{Name: "Programming", Importance: 5, Level: 7}},
		Interests: interests,
	})

	exp := Explain(space, userVec, careerVec, types.MethodBaseline, nil)

	assert.Equal(t, 1.0, exp.SimilarityBreakdown.InterestAffinity)
	assert.True(t, hasPointContaining(exp.WhyPoints, "interest profile"))
}

func TestExplain_WhyPointTiers(t *testing.T) {
	space := testSpace()

	userVec, _ := space.BuildUserVector(&types.UserProfile{
		Skills: []string{"Programming", "Databases"},
		SkillImportance: map[string]float64{
			"Programming": 5.0, // user weight 1.0
			"Databases":   2.0, // user weight 0.4
		},
	}, true)
	careerVec := space.BuildCareerVector(&types.CareerRecord{
		CareerID: "dev",
		Skills: []types.SkillRating{
			{Name: "Programming", Importance: 5, Level: 7}, // contribution 1.0
			{Name: "Databases", Importance: 5, Level: 7},   // contribution 0.4
		},
	})

	exp := Explain(space, userVec, careerVec, types.MethodBaseline, nil)

	assert.True(t, hasPointContaining(exp.WhyPoints, "central to this career"))
	assert.True(t, hasPointContaining(exp.WhyPoints, "maps directly onto"))
}
