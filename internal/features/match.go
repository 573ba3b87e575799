package features

import "strings"

// MatchedSkill records a user skill string resolved to a skill feature.
type MatchedSkill struct {
	Index     int    // feature index in the space
	UserSkill string // the user's original skill text
}

// MatchResult is the outcome of resolving user skill strings against the
// catalog vocabulary. Unmatched skills contribute nothing to any feature
// but are retained for explanation text.
type MatchResult struct {
	Matched   []MatchedSkill
	Unmatched []string
}

// MatchSkills resolves free-text user skills against the vocabulary
// using case-insensitive exact matching first, then (when fuzzy is true)
// punctuation/whitespace-insensitive matching with a singular/plural
// fallback. Each feature index is claimed at most once; later user
// skills resolving to an already-claimed feature are dropped as
// duplicates rather than reported unmatched.
func (s *Space) MatchSkills(skills []string, fuzzy bool) MatchResult {
	var result MatchResult
	claimed := make(map[int]bool, len(skills))

	for _, skill := range skills {
		idx, found := s.lookup(skill, fuzzy)
		if !found {
			result.Unmatched = append(result.Unmatched, skill)
			continue
		}
		if claimed[idx] {
			continue
		}
		claimed[idx] = true
		result.Matched = append(result.Matched, MatchedSkill{Index: idx, UserSkill: skill})
	}

	return result
}

// lookup resolves one skill string to a feature index.
func (s *Space) lookup(skill string, fuzzy bool) (int, bool) {
	exact := strings.ToLower(strings.TrimSpace(skill))
	if exact == "" {
		return 0, false
	}
	if idx, ok := s.exactIndex[exact]; ok {
		return idx, true
	}
	if !fuzzy {
		return 0, false
	}

	key := fuzzyKey(skill)
	if idx, ok := s.fuzzyIndex[key]; ok {
		return idx, true
	}

	// Singular/plural tail: "statistic" matches "statistics" and vice versa.
	if trimmed, ok := strings.CutSuffix(key, "s"); ok {
		if idx, ok := s.fuzzyIndex[trimmed]; ok {
			return idx, true
		}
	} else if idx, ok := s.fuzzyIndex[key+"s"]; ok {
		return idx, true
	}

	return 0, false
}

// fuzzyKey lowercases a skill name and replaces punctuation with spaces,
// collapsing runs of whitespace, so "Node.js" and "node js" compare equal.
func fuzzyKey(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(lower))
	lastSpace := false
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}
