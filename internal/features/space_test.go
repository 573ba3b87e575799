package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSpace() *Space {
	return NewSpace([]string{"Communication", "Databases", "Node.js", "Programming", "Statistics"})
}

func TestSpace_Size(t *testing.T) {
	s := newTestSpace()
	// 5 skills + 6 RIASEC + 6 work values + 3 outlook axes
	assert.Equal(t, 20, s.Size())
	assert.Equal(t, 5, s.SkillCount())
}

func TestSpace_SubVectorsPartitionTheVector(t *testing.T) {
	s := newTestSpace()
	vec := make([]float64, s.Size())
	for i := range vec {
		vec[i] = float64(i)
	}

	total := len(s.SkillSub(vec)) + len(s.InterestSub(vec)) + len(s.ValueSub(vec)) + len(s.OutlookSub(vec))
	assert.Equal(t, s.Size(), total)

	assert.Equal(t, 6, len(s.InterestSub(vec)))
	assert.Equal(t, 6, len(s.ValueSub(vec)))
	assert.Equal(t, 3, len(s.OutlookSub(vec)))

	// Sub-vectors alias the original: the interest block starts right
	// after the skills.
	assert.Equal(t, float64(s.SkillCount()), s.InterestSub(vec)[0])
}

func TestSpace_SkillName(t *testing.T) {
	s := newTestSpace()
	assert.Equal(t, "Communication", s.SkillName(0))
	assert.Equal(t, "Statistics", s.SkillName(4))
}

func TestMatchSkills_ExactCaseInsensitive(t *testing.T) {
	s := newTestSpace()

	result := s.MatchSkills([]string{"programming", "  DATABASES  "}, false)

	assert.Len(t, result.Matched, 2)
	assert.Empty(t, result.Unmatched)
	assert.Equal(t, "programming", result.Matched[0].UserSkill)
	assert.Equal(t, 3, result.Matched[0].Index)
}

func TestMatchSkills_UnmatchedReported(t *testing.T) {
	s := newTestSpace()

	result := s.MatchSkills([]string{"Programming", "Underwater Basket Weaving"}, true)

	assert.Len(t, result.Matched, 1)
	assert.Equal(t, []string{"Underwater Basket Weaving"}, result.Unmatched)
}

func TestMatchSkills_FuzzyPunctuation(t *testing.T) {
	s := newTestSpace()

	// "node js" should reach "Node.js" only through the fuzzy index.
	exact := s.MatchSkills([]string{"node js"}, false)
	assert.Empty(t, exact.Matched)

	fuzzy := s.MatchSkills([]string{"node js"}, true)
	assert.Len(t, fuzzy.Matched, 1)
	assert.Equal(t, 2, fuzzy.Matched[0].Index)
}

func TestMatchSkills_SingularPlural(t *testing.T) {
	s := newTestSpace()

	result := s.MatchSkills([]string{"statistic", "database"}, true)

	assert.Len(t, result.Matched, 2)
	assert.Empty(t, result.Unmatched)
}

func TestMatchSkills_DuplicatesClaimOnce(t *testing.T) {
	s := newTestSpace()

	result := s.MatchSkills([]string{"Programming", "programming", "PROGRAMMING"}, true)

	assert.Len(t, result.Matched, 1, "one feature index is claimed at most once")
	assert.Empty(t, result.Unmatched, "duplicates are dropped, not reported unmatched")
}

func TestMatchSkills_EmptyStringsIgnoredAsUnmatched(t *testing.T) {
	s := newTestSpace()

	result := s.MatchSkills([]string{""}, true)

	assert.Empty(t, result.Matched)
	assert.Len(t, result.Unmatched, 1)
}
