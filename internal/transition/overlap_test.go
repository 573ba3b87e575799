package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/fairpath/internal/types"
)

func careerWithSkills(id string, names ...string) *types.CareerRecord {
	skills := make([]types.SkillRating, 0, len(names))
	for _, n := range names {
		skills = append(skills, types.SkillRating{Name: n, Importance: 4, Level: 5})
	}
	return &types.CareerRecord{CareerID: id, Name: id, Skills: skills}
}

func TestOverlap_SelfIsComplete(t *testing.T) {
	c := careerWithSkills("dev", "Programming", "Databases", "Communication")

	overlap := Overlap(c, c)

	assert.Equal(t, 100.0, overlap.OverlapPercentage)
	assert.Equal(t, []string{"Communication", "Databases", "Programming"}, overlap.MatchingSkills)
	assert.Empty(t, overlap.MissingSkills)
}

func TestOverlap_Disjoint(t *testing.T) {
	source := careerWithSkills("a", "Design", "Creativity")
	target := careerWithSkills("b", "Programming", "Databases")

	overlap := Overlap(source, target)

	assert.Equal(t, 0.0, overlap.OverlapPercentage)
	assert.Empty(t, overlap.MatchingSkills)
	assert.Equal(t, []string{"Databases", "Programming"}, overlap.MissingSkills)
}

func TestOverlap_CaseInsensitive(t *testing.T) {
	source := careerWithSkills("a", "programming", "DATABASES")
	target := careerWithSkills("b", "Programming", "Databases", "Statistics", "Design")

	overlap := Overlap(source, target)

	assert.Equal(t, 50.0, overlap.OverlapPercentage)
	assert.Equal(t, []string{"Databases", "Programming"}, overlap.MatchingSkills)
	assert.Equal(t, []string{"Design", "Statistics"}, overlap.MissingSkills)
}

func TestOverlap_TargetDuplicatesCountOnce(t *testing.T) {
	source := careerWithSkills("a", "Programming")
	target := careerWithSkills("b", "Programming", "programming", "Databases")

	overlap := Overlap(source, target)

	assert.Equal(t, 50.0, overlap.OverlapPercentage)
	assert.Len(t, overlap.MatchingSkills, 1)
}

func TestOverlap_SkilllessTarget(t *testing.T) {
	source := careerWithSkills("a", "Programming")
	target := &types.CareerRecord{CareerID: "b", Name: "b"}

	overlap := Overlap(source, target)

	assert.Equal(t, 0.0, overlap.OverlapPercentage)
	assert.Empty(t, overlap.MatchingSkills)
	assert.Empty(t, overlap.MissingSkills)
}
