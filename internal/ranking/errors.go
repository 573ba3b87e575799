package ranking

import "fmt"

// ArtifactError represents a failure to load or validate the trained
// model artifact. It is internal only: callers fall back to the baseline
// scorer and never see this error directly.
type ArtifactError struct {
	Message string
	Cause   error
}

func (e *ArtifactError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model artifact error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model artifact error: %s", e.Message)
}

func (e *ArtifactError) Unwrap() error {
	return e.Cause
}
