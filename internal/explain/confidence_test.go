package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/fairpath/internal/types"
)

func TestRichness(t *testing.T) {
	profile := &types.UserProfile{
		Interests:  map[string]float64{"Investigative": 6},
		WorkValues: map[string]float64{"Achievement": 6, "Independence": 5},
	}
	assert.Equal(t, 6, Richness(3, profile))
	assert.Equal(t, 0, Richness(0, &types.UserProfile{}))
}

func TestEstimate_Tiers(t *testing.T) {
	tests := []struct {
		name      string
		richness  int
		wantLevel string
		wantWidth float64
	}{
		{"empty", 0, types.ConfidenceLow, 0.25},
		{"sparse", 2, types.ConfidenceLow, 0.20},
		{"medium low edge", 3, types.ConfidenceMedium, 0.12},
		{"medium high edge", 7, types.ConfidenceMedium, 0.12},
		{"rich", 8, types.ConfidenceHigh, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, band := Estimate(0.5, tt.richness)
			assert.Equal(t, tt.wantLevel, level)
			assert.InDelta(t, 0.5-tt.wantWidth, band.Min, 1e-9)
			assert.InDelta(t, 0.5+tt.wantWidth, band.Max, 1e-9)
			assert.Equal(t, 0.5, band.PointEstimate)
		})
	}
}

func TestEstimate_TwoSkillsOneInterestReachesMedium(t *testing.T) {
	profile := &types.UserProfile{
		Skills:    []string{"Python", "Data Analysis"},
		Interests: map[string]float64{"Investigative": 6},
	}

	level, _ := Estimate(0.8, Richness(2, profile))
	assert.Equal(t, types.ConfidenceMedium, level,
		"two matched skills plus one scored interest axis must not read as Low")
}

func TestEstimate_BandWidthNeverGrowsWithRichness(t *testing.T) {
	prevWidth := 1.0
	for richness := 0; richness <= 12; richness++ {
		_, band := Estimate(0.5, richness)
		width := band.Max - band.Min
		assert.LessOrEqual(t, width, prevWidth, "richness %d", richness)
		prevWidth = width
	}
}

func TestEstimate_BandClampedToUnitRange(t *testing.T) {
	_, high := Estimate(0.95, 0)
	assert.Equal(t, 1.0, high.Max)
	assert.InDelta(t, 0.70, high.Min, 1e-9)

	_, low := Estimate(0.05, 0)
	assert.Equal(t, 0.0, low.Min)
	assert.InDelta(t, 0.30, low.Max, 1e-9)
}

func TestInputQuality(t *testing.T) {
	assert.Equal(t, types.InputQualityEmpty, InputQuality(&types.UserProfile{}))

	assert.Equal(t, types.InputQualityThin, InputQuality(&types.UserProfile{
		Skills: []string{"Programming"},
	}))

	assert.Equal(t, types.InputQualitySufficient, InputQuality(&types.UserProfile{
		Skills:    []string{"Programming"},
		Interests: map[string]float64{"Investigative": 6},
	}))

	assert.Equal(t, types.InputQualitySufficient, InputQuality(&types.UserProfile{
		Skills:      []string{"Programming"},
		Constraints: &types.Constraints{MinWage: 50000},
	}))
}
