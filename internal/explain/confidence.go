package explain

import (
	"github.com/jonathan/fairpath/internal/features"
	"github.com/jonathan/fairpath/internal/types"
)

// Richness tiers and their confidence levels / band half-widths. Width
// is monotonically non-increasing in richness: sparse input produces a
// wide uncertainty range, rich input a narrow one.
const (
	richnessThin   = 3 // below this: Low confidence
	richnessStrong = 8 // at or above this: High confidence

	bandWidthEmpty  = 0.25
	bandWidthSparse = 0.20
	bandWidthMedium = 0.12
	bandWidthNarrow = 0.05
)

// Richness counts the non-neutral signal the user actually supplied:
// matched skills plus explicitly scored interest and work-value axes.
func Richness(matched int, profile *types.UserProfile) int {
	return matched + len(profile.Interests) + len(profile.WorkValues)
}

// Estimate assigns a confidence level and a symmetric uncertainty band
// around score. The band is clamped to [0,1]; point estimates are never
// surfaced without it.
func Estimate(score float64, richness int) (string, types.ScoreRange) {
	var level string
	var halfWidth float64

	switch {
	case richness <= 0:
		level = types.ConfidenceLow
		halfWidth = bandWidthEmpty
	case richness < richnessThin:
		level = types.ConfidenceLow
		halfWidth = bandWidthSparse
	case richness < richnessStrong:
		level = types.ConfidenceMedium
		halfWidth = bandWidthMedium
	default:
		level = types.ConfidenceHigh
		halfWidth = bandWidthNarrow
	}

	band := types.ScoreRange{
		Min:           features.Clamp01(score - halfWidth),
		Max:           features.Clamp01(score + halfWidth),
		PointEstimate: score,
	}
	return level, band
}

// InputQuality classifies how much signal the profile carries, counting
// the distinct kinds of input supplied (skills, interests, work values,
// constraints).
func InputQuality(profile *types.UserProfile) string {
	kinds := 0
	if len(profile.Skills) > 0 {
		kinds++
	}
	if len(profile.Interests) > 0 {
		kinds++
	}
	if len(profile.WorkValues) > 0 {
		kinds++
	}
	if profile.Constraints != nil {
		kinds++
	}

	switch {
	case kinds == 0:
		return types.InputQualityEmpty
	case kinds == 1:
		return types.InputQualityThin
	default:
		return types.InputQualitySufficient
	}
}
