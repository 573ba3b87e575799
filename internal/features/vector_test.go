package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/fairpath/internal/types"
)

func TestBuildUserVector_MatchedSkillsCarryImportance(t *testing.T) {
	s := newTestSpace()
	profile := &types.UserProfile{
		Skills:          []string{"Programming", "Databases"},
		SkillImportance: map[string]float64{"Programming": 5.0},
	}

	vec, match := s.BuildUserVector(profile, true)

	assert.Len(t, match.Matched, 2)
	assert.Equal(t, 1.0, vec[3], "importance 5 normalizes to 1.0")
	assert.Equal(t, Neutral, vec[1], "no importance supplied defaults to neutral")
	assert.Equal(t, 0.0, vec[0], "unlisted skills stay at zero")
}

func TestBuildUserVector_InterestsScaledOrNeutral(t *testing.T) {
	s := newTestSpace()
	profile := &types.UserProfile{
		Interests: map[string]float64{"Investigative": 7.0},
	}

	vec, _ := s.BuildUserVector(profile, true)
	interests := s.InterestSub(vec)

	assert.Equal(t, 1.0, interests[1], "Investigative is the second RIASEC axis")
	assert.Equal(t, Neutral, interests[0], "omitted axes sit at the neutral midpoint")
}

func TestBuildUserVector_OutlookAlwaysNeutral(t *testing.T) {
	s := newTestSpace()

	vec, _ := s.BuildUserVector(&types.UserProfile{}, true)

	for _, v := range s.OutlookSub(vec) {
		assert.Equal(t, Neutral, v)
	}
}

func TestBuildUserVector_ImportanceMatchedCaseInsensitively(t *testing.T) {
	s := newTestSpace()
	profile := &types.UserProfile{
		Skills:          []string{"programming"},
		SkillImportance: map[string]float64{"Programming": 2.5},
	}

	vec, _ := s.BuildUserVector(profile, false)

	assert.Equal(t, 0.5, vec[3])
}

func TestBuildCareerVector_BlendsImportanceAndLevel(t *testing.T) {
	s := newTestSpace()
	career := &types.CareerRecord{
		CareerID: "x",
		Skills: []types.SkillRating{
			{Name: "Programming", Importance: 5.0, Level: 7.0},
			{Name: "Databases", Importance: 2.5},
		},
	}

	vec := s.BuildCareerVector(career)

	assert.Equal(t, 1.0, vec[3], "full importance and level blend to 1.0")
	assert.Equal(t, 0.5, vec[1], "no level means importance alone")
}

func TestBuildCareerVector_OutlookNormalization(t *testing.T) {
	s := newTestSpace()
	career := &types.CareerRecord{
		CareerID: "x",
		Skills:   []types.SkillRating{{Name: "Programming", Importance: 4.0}},
		Outlook: &types.Outlook{
			GrowthRate:     20.0,
			MedianWage:     100000,
			StabilityScore: 0.9,
		},
	}

	outlook := s.OutlookSub(s.BuildCareerVector(career))

	assert.Equal(t, 1.0, outlook[0], "growth at the span maps to 1.0")
	assert.Equal(t, 0.5, outlook[1], "wage scales against the ceiling")
	assert.Equal(t, 0.9, outlook[2])
}

func TestBuildCareerVector_MissingOutlookIsNeutral(t *testing.T) {
	s := newTestSpace()
	career := &types.CareerRecord{
		CareerID: "x",
		Skills:   []types.SkillRating{{Name: "Programming", Importance: 4.0}},
	}

	for _, v := range s.OutlookSub(s.BuildCareerVector(career)) {
		assert.Equal(t, Neutral, v)
	}
}

func TestBuildCareerVector_UnknownSkillIgnored(t *testing.T) {
	s := newTestSpace()
	career := &types.CareerRecord{
		CareerID: "x",
		Skills:   []types.SkillRating{{Name: "Not In Vocabulary", Importance: 5.0}},
	}

	vec := s.BuildCareerVector(career)

	assert.True(t, IsAllZero(s.SkillSub(vec)))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-9)
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}), "zero vector yields 0")
	assert.Equal(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}))
}

func TestAffinity(t *testing.T) {
	assert.Equal(t, 1.0, Affinity([]float64{0.5, 0.5}, []float64{0.5, 0.5}))
	assert.InDelta(t, 0.5, Affinity([]float64{0, 0}, []float64{0.5, 0.5}), 1e-9)
	assert.Equal(t, 0.0, Affinity(nil, nil), "empty vectors have no affinity")
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.3))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.42, Clamp01(0.42))
}
