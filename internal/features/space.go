// Package features builds comparable numeric vectors for user profiles
// and career records over a shared, stable feature ordering.
package features

import "strings"

// RIASECCategories are the six Holland Code interest axes, in their
// fixed feature order.
var RIASECCategories = []string{
	"Realistic",
	"Investigative",
	"Artistic",
	"Social",
	"Enterprising",
	"Conventional",
}

// WorkValueNames are the O*NET work-value axes, in their fixed feature order.
var WorkValueNames = []string{
	"Achievement",
	"Independence",
	"Recognition",
	"Relationships",
	"Support",
	"Working Conditions",
}

// OutlookAxisCount is the number of trailing outlook features
// (growth, wage, stability).
const OutlookAxisCount = 3

// Space defines the shared feature ordering: the catalog skill
// vocabulary, then the RIASEC axes, then the work-value axes, then the
// outlook axes. A Space is immutable once built, which keeps feature
// order stable across the process lifetime.
type Space struct {
	skills     []string       // display names in stable (sorted) order
	exactIndex map[string]int // lowercased trimmed name -> feature index
	fuzzyIndex map[string]int // punctuation/whitespace-insensitive key -> feature index
}

// NewSpace builds a feature space from the catalog skill vocabulary.
// The vocabulary must already be in its stable order.
func NewSpace(vocabulary []string) *Space {
	s := &Space{
		skills:     vocabulary,
		exactIndex: make(map[string]int, len(vocabulary)),
		fuzzyIndex: make(map[string]int, len(vocabulary)),
	}
	for i, name := range vocabulary {
		s.exactIndex[strings.ToLower(strings.TrimSpace(name))] = i
		key := fuzzyKey(name)
		if _, exists := s.fuzzyIndex[key]; !exists {
			s.fuzzyIndex[key] = i
		}
	}
	return s
}

// Size returns the total feature vector length.
func (s *Space) Size() int {
	return len(s.skills) + len(RIASECCategories) + len(WorkValueNames) + OutlookAxisCount
}

// SkillCount returns the number of skill features.
func (s *Space) SkillCount() int { return len(s.skills) }

// SkillName returns the display name of the skill feature at index i.
func (s *Space) SkillName(i int) string { return s.skills[i] }

// Sub-vector boundaries.
func (s *Space) interestOffset() int { return len(s.skills) }
func (s *Space) valueOffset() int    { return len(s.skills) + len(RIASECCategories) }
func (s *Space) outlookOffset() int  { return s.valueOffset() + len(WorkValueNames) }

// SkillSub returns the skill portion of a full-length vector.
// The returned slice aliases vec.
func (s *Space) SkillSub(vec []float64) []float64 { return vec[:len(s.skills)] }

// InterestSub returns the RIASEC portion of a full-length vector.
func (s *Space) InterestSub(vec []float64) []float64 {
	return vec[s.interestOffset():s.valueOffset()]
}

// ValueSub returns the work-value portion of a full-length vector.
func (s *Space) ValueSub(vec []float64) []float64 {
	return vec[s.valueOffset():s.outlookOffset()]
}

// OutlookSub returns the outlook portion of a full-length vector.
func (s *Space) OutlookSub(vec []float64) []float64 {
	return vec[s.outlookOffset():]
}
