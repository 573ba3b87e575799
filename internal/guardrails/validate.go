package guardrails

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/fairpath/internal/types"
)

// Validator validates raw user profiles: structural limits first, then a
// demographic deny-list scan over every string field. Validation is pure
// and deterministic; a rejected profile is never partially processed.
type Validator struct {
	deny     *DenyList
	validate *validator.Validate
}

// NewValidator creates a Validator with the default deny list plus any
// extra configured terms.
func NewValidator(extraDenyTerms map[string]string) *Validator {
	return &Validator{
		deny:     NewDenyList(extraDenyTerms),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateProfile checks a raw profile and returns a cleaned copy:
// skills are trimmed and deduplicated case-insensitively, everything
// else passes through untouched. Out-of-range numeric fields are
// rejected, not clamped. Any demographic match anywhere rejects the
// whole request with a GuardrailViolation.
func (v *Validator) ValidateProfile(profile *types.UserProfile) (*types.UserProfile, error) {
	if profile == nil {
		return nil, &ValidationError{Field: "profile", Message: "profile is required"}
	}

	// Structural bounds and numeric ranges via struct tags.
	if err := v.validate.Struct(profile); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, &ValidationError{
				Field:   fe.Namespace(),
				Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
			}
		}
		return nil, &ValidationError{Field: "profile", Message: err.Error()}
	}

	// Demographic scan over every string field. The scan runs before any
	// cleaning so the reported match reflects the raw input.
	if err := v.scanProfile(profile); err != nil {
		return nil, err
	}

	cleaned := *profile
	cleaned.Skills = dedupeSkills(profile.Skills)
	return &cleaned, nil
}

// scanProfile runs the deny list over all string content in the profile.
func (v *Validator) scanProfile(profile *types.UserProfile) error {
	for i, skill := range profile.Skills {
		if category, match, found := v.deny.Scan(skill); found {
			return &GuardrailViolation{
				Field:    fmt.Sprintf("skills[%d]", i),
				Category: category,
				Match:    match,
			}
		}
	}

	// Map keys are scanned in sorted order so the reported violation is
	// deterministic when more than one key matches.
	for _, name := range sortedScoreKeys(profile.SkillImportance) {
		if category, match, found := v.deny.Scan(name); found {
			return &GuardrailViolation{Field: "skill_importance", Category: category, Match: match}
		}
	}
	for _, name := range sortedScoreKeys(profile.Interests) {
		if category, match, found := v.deny.Scan(name); found {
			return &GuardrailViolation{Field: "interests", Category: category, Match: match}
		}
	}
	for _, name := range sortedScoreKeys(profile.WorkValues) {
		if category, match, found := v.deny.Scan(name); found {
			return &GuardrailViolation{Field: "work_values", Category: category, Match: match}
		}
	}

	if category, match, found := v.deny.Scan(profile.InterestNote); found {
		return &GuardrailViolation{Field: "interest_note", Category: category, Match: match}
	}

	if profile.Constraints != nil {
		for i, loc := range profile.Constraints.Locations {
			if category, match, found := v.deny.Scan(loc); found {
				return &GuardrailViolation{
					Field:    fmt.Sprintf("constraints.locations[%d]", i),
					Category: category,
					Match:    match,
				}
			}
		}
	}

	return nil
}

func sortedScoreKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// dedupeSkills trims skills and removes case-insensitive duplicates,
// keeping first occurrences in order.
func dedupeSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}
