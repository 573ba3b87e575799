// Package transition analyzes career switches: skill overlap, transfer
// maps, difficulty classification, and transition-time estimates.
package transition

import (
	"sort"
	"strings"

	"github.com/jonathan/fairpath/internal/types"
)

// Overlap computes the name-set comparison between two careers'
// skills. Matching is the case-insensitive intersection, missing is
// what the target requires that the source lacks, and the percentage is
// |matching| / |target skills| (0 when the target has no skills, so a
// skill-less target never divides by zero).
func Overlap(source, target *types.CareerRecord) types.SkillOverlap {
	sourceSet := make(map[string]bool, len(source.Skills))
	for _, s := range source.Skills {
		sourceSet[strings.ToLower(strings.TrimSpace(s.Name))] = true
	}

	var matching, missing []string
	seen := make(map[string]bool, len(target.Skills))
	for _, t := range target.Skills {
		key := strings.ToLower(strings.TrimSpace(t.Name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if sourceSet[key] {
			matching = append(matching, t.Name)
		} else {
			missing = append(missing, t.Name)
		}
	}

	sort.Strings(matching)
	sort.Strings(missing)

	overlap := types.SkillOverlap{
		MatchingSkills: matching,
		MissingSkills:  missing,
	}
	if total := len(seen); total > 0 {
		overlap.OverlapPercentage = float64(len(matching)) / float64(total) * 100
	}
	return overlap
}
