// Package excuse holds the domain model and error taxonomy shared by all
// tiers of the excuse pipeline.
package excuse

import (
	"errors"
	"fmt"
)

// Kind classifies application errors so entry adapters can map any failure
// to a user-facing status uniformly.
type Kind int

const (
	// KindInvalidRequest indicates input failed a local validation rule.
	KindInvalidRequest Kind = iota

	// KindConfiguration indicates required configuration is missing or a
	// provider has no data to serve.
	KindConfiguration

	// KindAIService indicates the wrapped AI backend failed, timed out, or
	// returned an unusable result.
	KindAIService

	// KindProviderMismatch indicates an operation was executed against a
	// repository provider it was not written for.
	KindProviderMismatch
)

// String returns the kind name.
func (k Kind) String() string {
	names := []string{
		"invalid_request",
		"configuration",
		"ai_service",
		"provider_mismatch",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Sentinels for errors.Is checks. Every *AppError matches exactly one of
// these through its Is method.
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrConfiguration    = errors.New("configuration error")
	ErrAIService        = errors.New("ai service error")
	ErrProviderMismatch = errors.New("provider mismatch")
)

// AppError is the common application error. All failures surfaced by the
// service, repository, and agent tiers are *AppError values; raw transport
// errors are kept only as the wrapped cause.
type AppError struct {
	kind Kind
	msg  string
	err  error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Kind returns the error classification.
func (e *AppError) Kind() Kind { return e.kind }

// Unwrap returns the wrapped cause, if any.
func (e *AppError) Unwrap() error { return e.err }

// Is matches the sentinel corresponding to the error's kind.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrInvalidRequest:
		return e.kind == KindInvalidRequest
	case ErrConfiguration:
		return e.kind == KindConfiguration
	case ErrAIService:
		return e.kind == KindAIService
	case ErrProviderMismatch:
		return e.kind == KindProviderMismatch
	}
	return false
}

// NewInvalidRequest creates a validation error.
func NewInvalidRequest(msg string) *AppError {
	return &AppError{kind: KindInvalidRequest, msg: msg}
}

// NewConfiguration creates a configuration error.
func NewConfiguration(msg string) *AppError {
	return &AppError{kind: KindConfiguration, msg: msg}
}

// NewAIService creates an AI service error wrapping the underlying cause.
func NewAIService(msg string, err error) *AppError {
	return &AppError{kind: KindAIService, msg: msg, err: err}
}

// NewProviderMismatch creates a provider mismatch error.
func NewProviderMismatch(msg string) *AppError {
	return &AppError{kind: KindProviderMismatch, msg: msg}
}

// KindOf returns the kind of err if it is (or wraps) an *AppError. The
// second return reports whether a kind was found.
func KindOf(err error) (Kind, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.kind, true
	}
	return 0, false
}
