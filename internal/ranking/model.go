package ranking

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/jonathan/fairpath/internal/features"
	"github.com/jonathan/fairpath/internal/types"
)

// Artifact is the trained model in its exported linear form: one weight
// per feature of the shared feature space plus a bias, applied to the
// elementwise product of user and career vectors through a sigmoid
// link. Read-only after load; shared by all requests.
type Artifact struct {
	Version      string    `json:"version"`
	FeatureCount int       `json:"feature_count"`
	Weights      []float64 `json:"weights"`
	Bias         float64   `json:"bias"`
	TrainedAt    string    `json:"trained_at,omitempty"`
}

// LoadArtifact reads and validates a model artifact against the feature
// space. Any mismatch between the artifact's feature count and the
// current vocabulary is a load failure: the weights would not align
// with the feature ordering.
func LoadArtifact(path string, space *features.Space) (*Artifact, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ArtifactError{
			Message: fmt.Sprintf("failed to read artifact %s", path),
			Cause:   err,
		}
	}

	var artifact Artifact
	if err := json.Unmarshal(content, &artifact); err != nil {
		return nil, &ArtifactError{
			Message: "failed to unmarshal artifact JSON",
			Cause:   err,
		}
	}

	if artifact.FeatureCount != len(artifact.Weights) {
		return nil, &ArtifactError{
			Message: fmt.Sprintf("artifact declares %d features but carries %d weights",
				artifact.FeatureCount, len(artifact.Weights)),
		}
	}
	if artifact.FeatureCount != space.Size() {
		return nil, &ArtifactError{
			Message: fmt.Sprintf("artifact trained on %d features but vocabulary has %d",
				artifact.FeatureCount, space.Size()),
		}
	}

	return &artifact, nil
}

// ModelRanker scores with the trained artifact. It shares the Scorer
// contract with BaselineRanker so the recommender can swap them freely.
type ModelRanker struct {
	space    *features.Space
	artifact *Artifact
}

// NewModelRanker wraps a validated artifact in a scorer.
func NewModelRanker(space *features.Space, artifact *Artifact) *ModelRanker {
	return &ModelRanker{space: space, artifact: artifact}
}

// Method returns the trained-model provenance tag.
func (r *ModelRanker) Method() string { return types.MethodMLModel }

// Version returns the artifact version string.
func (r *ModelRanker) Version() string { return r.artifact.Version }

// Score applies the linear weights to the elementwise product of the
// two vectors and squashes through a sigmoid.
func (r *ModelRanker) Score(userVec, careerVec []float64) float64 {
	z := r.artifact.Bias
	for i, w := range r.artifact.Weights {
		z += w * userVec[i] * careerVec[i]
	}
	return features.Clamp01(1 / (1 + math.Exp(-z)))
}
