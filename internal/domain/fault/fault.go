// Package fault defines the domain error family for the churn scoring
// service. Callers distinguish expected domain problems from unexpected
// internal faults by asserting against these types.
package fault

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError marks errors that belong to the churn domain family.
// Anything not satisfying it is an internal fault and must be surfaced
// generically without leaking details to the end user.
type DomainError interface {
	error
	domainError()
}

// ModelLoadError reports a failure to locate or load the trained classifier.
// It is fatal for any prediction attempt and is not retried automatically.
type ModelLoadError struct {
	Path string
	Err  error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("failed to load model from %s: %v", e.Path, e.Err)
}

func (e *ModelLoadError) Unwrap() error { return e.Err }
func (e *ModelLoadError) domainError() {}

// ValidationError carries the human-readable messages produced by the
// validation engine. It is an expected, recoverable condition.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Messages, "; "))
}

func (e *ValidationError) domainError() {}

// PredictionError reports a failure during classifier invocation, most
// importantly a mismatch between the encoded feature set and the model's
// expected feature set.
type PredictionError struct {
	Reason  string
	Missing []string
}

func (e *PredictionError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("prediction failed: %s (missing features: %s)", e.Reason, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("prediction failed: %s", e.Reason)
}

func (e *PredictionError) domainError() {}

// EncodingError reports a malformed raw-to-record conversion, such as an
// unparseable numeric string or an unknown categorical label. In batch
// contexts it is caught and reported per row.
type EncodingError struct {
	Field string
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot convert field %q: %v", e.Field, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
func (e *EncodingError) domainError() {}

// IsDomain reports whether err belongs to the domain error family,
// unwrapping as needed.
func IsDomain(err error) bool {
	var de DomainError
	return errors.As(err, &de)
}
