package guardrails

import (
	"regexp"
	"sort"
	"strings"
)

// Deny-list categories. Every rejected term or pattern maps to one of
// these so callers can report what kind of demographic signal was found.
const (
	CategoryAge         = "age"
	CategoryGender      = "gender"
	CategoryRace        = "race"
	CategoryEthnicity   = "ethnicity"
	CategoryReligion    = "religion"
	CategoryNationality = "nationality"
	CategoryDisability  = "disability"
	CategoryVeteran     = "veteran_status"
	CategoryMarital     = "marital_status"
	CategoryCustom      = "custom"
)

// defaultDenyTerms is the concrete deny list. Terms are matched on word
// boundaries, case-insensitively, so "Age Management" is caught while
// "Manager" is not. The list is safety-relevant configuration: it can be
// extended via config, never reduced.
var defaultDenyTerms = map[string]string{
	"age":               CategoryAge,
	"aged":              CategoryAge,
	"birthday":          CategoryAge,
	"elderly":           CategoryAge,
	"gender":            CategoryGender,
	"sex":               CategoryGender,
	"male":              CategoryGender,
	"female":            CategoryGender,
	"race":              CategoryRace,
	"racial":            CategoryRace,
	"caucasian":         CategoryRace,
	"african american":  CategoryRace,
	"asian american":    CategoryRace,
	"ethnicity":         CategoryEthnicity,
	"ethnic":            CategoryEthnicity,
	"hispanic":          CategoryEthnicity,
	"latino":            CategoryEthnicity,
	"latina":            CategoryEthnicity,
	"religion":          CategoryReligion,
	"religious":         CategoryReligion,
	"christian":         CategoryReligion,
	"muslim":            CategoryReligion,
	"jewish":            CategoryReligion,
	"hindu":             CategoryReligion,
	"buddhist":          CategoryReligion,
	"atheist":           CategoryReligion,
	"nationality":       CategoryNationality,
	"birth":             CategoryNationality,
	"born":              CategoryNationality,
	"country of origin": CategoryNationality,
	"national origin":   CategoryNationality,
	"citizenship":       CategoryNationality,
	"immigrant":         CategoryNationality,
	"disability":        CategoryDisability,
	"disabled":          CategoryDisability,
	"handicap":          CategoryDisability,
	"veteran":           CategoryVeteran,
	"marital":           CategoryMarital,
	"married":           CategoryMarital,
	"divorced":          CategoryMarital,
	"widowed":           CategoryMarital,
	"single mother":     CategoryMarital,
	"single father":     CategoryMarital,
}

// denyPattern is a compiled regex with its category.
type denyPattern struct {
	re       *regexp.Regexp
	category string
}

// defaultDenyPatterns covers demographic signal that keyword matching
// misses: age phrases, age ranges, and gendered pronouns in isolation.
var defaultDenyPatterns = []denyPattern{
	{regexp.MustCompile(`(?i)\b\d{1,3}\s*(?:years?|yrs?)[\s-]*old\b`), CategoryAge},
	{regexp.MustCompile(`(?i)\b\d{1,2}\s*-\s*\d{1,3}\s*(?:years?|yrs?)\b`), CategoryAge},
	{regexp.MustCompile(`(?i)\bage[ds]?\s*[:=]?\s*\d{1,3}\b`), CategoryAge},
	{regexp.MustCompile(`(?i)\b(?:he|she|him|her|his|hers)\b`), CategoryGender},
}

// DenyList scans strings for demographic terms and patterns.
type DenyList struct {
	termPatterns []denyPattern
	patterns     []denyPattern
}

// NewDenyList builds the default deny list plus any extra terms. Extra
// terms are matched on word boundaries like the defaults and are
// assigned to the given category map entry, defaulting to their own name
// as category when not mapped.
func NewDenyList(extraTerms map[string]string) *DenyList {
	dl := &DenyList{}

	// Compile in sorted term order so the first-match category reported
	// for a given input is the same in every process.
	for _, term := range sortedKeys(defaultDenyTerms) {
		dl.termPatterns = append(dl.termPatterns, compileTerm(term, defaultDenyTerms[term]))
	}
	for _, term := range sortedKeys(extraTerms) {
		category := extraTerms[term]
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if category == "" {
			category = term
		}
		dl.termPatterns = append(dl.termPatterns, compileTerm(term, category))
	}

	dl.patterns = defaultDenyPatterns
	return dl
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// compileTerm builds a case-insensitive word-boundary matcher for a term.
func compileTerm(term, category string) denyPattern {
	return denyPattern{
		re:       regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
		category: category,
	}
}

// Scan checks a single string for demographic content. It returns the
// matched category and text, or ok=false when the string is clean.
func (dl *DenyList) Scan(text string) (category, match string, found bool) {
	if text == "" {
		return "", "", false
	}

	for _, tp := range dl.termPatterns {
		if m := tp.re.FindString(text); m != "" {
			return tp.category, m, true
		}
	}
	for _, p := range dl.patterns {
		if m := p.re.FindString(text); m != "" {
			return p.category, m, true
		}
	}
	return "", "", false
}
