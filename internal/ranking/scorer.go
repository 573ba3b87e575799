// Package ranking provides the scorers that rate a user profile against
// career records: a deterministic baseline and a trained-model ranker
// with lazy artifact loading and automatic fallback.
package ranking

// Scorer rates a user vector against a career vector. Both vectors must
// be built over the same feature space. Implementations are pure: no
// I/O, no randomness, identical inputs give identical scores.
type Scorer interface {
	// Score returns a relevance score in [0,1].
	Score(userVec, careerVec []float64) float64

	// Method returns the provenance tag disclosed in explanations:
	// "ml_model" or "baseline".
	Method() string
}
