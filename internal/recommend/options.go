// Package recommend orchestrates the recommendation pipeline: scorer
// selection, catalog-wide scoring, ordering, and result-count guardrails.
package recommend

// Result-count guardrails. A single best match is never returned alone;
// at least MinRecommendations are produced (catalog permitting) and at
// most MaxRecommendations, regardless of what the caller asked for.
const (
	MinRecommendations = 3
	MaxRecommendations = 20
	DefaultTopN        = 5
)

// Options control a single recommendation request.
type Options struct {
	// TopN is the requested result count. Zero means DefaultTopN;
	// out-of-range values are clamped, not rejected.
	TopN int

	// UseML selects the trained model when it is available. The
	// baseline is used when false or when the model failed to load.
	UseML bool
}

// normalized clamps the options into their valid ranges.
func (o Options) normalized() Options {
	if o.TopN == 0 {
		o.TopN = DefaultTopN
	}
	if o.TopN < MinRecommendations {
		o.TopN = MinRecommendations
	}
	if o.TopN > MaxRecommendations {
		o.TopN = MaxRecommendations
	}
	return o
}
