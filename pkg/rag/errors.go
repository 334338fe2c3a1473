package rag

import "fmt"

// ValidationError reports a malformed ContentRequest. It is raised before
// any retrieval or generation call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// RetrievalError reports that the vector store was unreachable or a
// collection could not be resolved. Fatal for the current request.
type RetrievalError struct {
	Collection string
	Err        error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed for collection %q: %v", e.Collection, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// NotFoundError reports that the model returned no usable text. It carries
// the normalized request so callers can surface what was asked for, plus a
// suggestion for refining the inputs. A recoverable business outcome, not
// an operational failure.
type NotFoundError struct {
	Request    ContentRequest
	Suggestion string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no content generated for subject %q topic %q grade %q", e.Request.Subject, e.Request.Topic, e.Request.Grade)
}

// TimeoutError reports that a pipeline stage exceeded its per-request
// deadline. Kept apart from ProviderError so callers can distinguish a slow
// dependency from a broken one.
type TimeoutError struct {
	Stage string
	Err   error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out: %v", e.Stage, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// ProviderError reports an authentication, quota, or transport failure from
// the model provider. Fatal for the current request.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("generation provider failed: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
