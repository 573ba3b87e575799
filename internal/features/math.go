package features

import "math"

// Cosine returns the cosine similarity of two equal-length vectors,
// clamped to [0,1]. Either vector being all-zero yields 0.
func Cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return clamp01(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// Affinity returns 1 minus the mean absolute difference of two
// equal-length vectors of [0,1] values: 1.0 for identical vectors,
// approaching 0 as they diverge.
func Affinity(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	var total float64
	for i := range a {
		total += math.Abs(a[i] - b[i])
	}
	return clamp01(1 - total/float64(len(a)))
}

// IsAllZero reports whether every element of vec is zero.
func IsAllZero(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp01 bounds v to [0,1].
func Clamp01(v float64) float64 { return clamp01(v) }
