package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationRank(t *testing.T) {
	assert.Equal(t, 0.0, EducationRank("high_school"))
	assert.Equal(t, 3.0, EducationRank("bachelors"))
	assert.Equal(t, 4.5, EducationRank("professional"))
	assert.Equal(t, 5.0, EducationRank("doctoral"))

	assert.Equal(t, 2.5, EducationRank(""), "unknown levels rank mid-scale")
	assert.Equal(t, 2.5, EducationRank("bootcamp"))
}

func TestEducationRank_Ordering(t *testing.T) {
	levels := []string{"high_school", "some_college", "associates", "bachelors", "masters", "professional", "doctoral"}
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, EducationRank(levels[i]), EducationRank(levels[i-1]),
			"%s must outrank %s", levels[i], levels[i-1])
	}
}

func TestCareerRecord_SkillNames(t *testing.T) {
	c := CareerRecord{
		Skills: []SkillRating{
			{Name: "Programming", Importance: 5},
			{Name: "Databases", Importance: 4},
		},
	}
	assert.Equal(t, []string{"Programming", "Databases"}, c.SkillNames())

	empty := CareerRecord{}
	assert.Empty(t, empty.SkillNames())
}

func TestUserProfile_IsEmpty(t *testing.T) {
	assert.True(t, (&UserProfile{}).IsEmpty())
	assert.True(t, (&UserProfile{InterestNote: "outdoors"}).IsEmpty(),
		"free text alone is not rankable signal")
	assert.False(t, (&UserProfile{Skills: []string{"Programming"}}).IsEmpty())
	assert.False(t, (&UserProfile{Interests: map[string]float64{"Realistic": 5}}).IsEmpty())
	assert.False(t, (&UserProfile{WorkValues: map[string]float64{"Support": 5}}).IsEmpty())
}
