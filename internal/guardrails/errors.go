// Package guardrails rejects demographic content and enforces structural
// limits on raw recommendation input before it reaches the pipeline.
package guardrails

import "fmt"

// GuardrailViolation indicates demographic content was detected in the
// input. The request must be rejected outright; no recommendation may be
// produced from it.
type GuardrailViolation struct {
	Field    string // which input field contained the match
	Category string // deny-list category (age, gender, ...)
	Match    string // the matched term or pattern text
}

func (e *GuardrailViolation) Error() string {
	return fmt.Sprintf("guardrail violation in %s: detected %s term %q", e.Field, e.Category, e.Match)
}

// ValidationError indicates malformed or out-of-range input other than
// demographic content.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input in %s: %s", e.Field, e.Message)
}
