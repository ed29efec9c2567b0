// Package apperr defines the error taxonomy every component reports in.
// Errors carry a Kind that maps to HTTP status at the API boundary and
// drives retry decisions inside the federator and worker runtime.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindUnauthorized  Kind = "unauthorized"
	KindForbidden     Kind = "forbidden"
	KindRateLimited   Kind = "rate_limited"
	KindCircuitOpen   Kind = "circuit_open"
	KindUpstream      Kind = "upstream_error"
	KindTimeout       Kind = "timeout"
	KindPoolExhausted Kind = "pool_exhausted"
	KindQualityBelow  Kind = "quality_below_threshold"
	KindInternal      Kind = "internal"
)

// Error is the typed error carried across component boundaries.
type Error struct {
	Kind    Kind
	Message string
	// UpstreamStatus holds the HTTP status for KindUpstream errors.
	UpstreamStatus int
	cause          error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates a cause with a kind and message.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Upstream creates an upstream error carrying the HTTP status.
func Upstream(status int, message string) *Error {
	return &Error{Kind: KindUpstream, Message: message, UpstreamStatus: status}
}

// KindOf extracts the Kind from err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// UpstreamStatusOf extracts the upstream HTTP status, or 0.
func UpstreamStatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.UpstreamStatus
	}
	return 0
}

// Retriable reports whether a call failing with err may be retried:
// timeouts, pool exhaustion and upstream 5xx. 4xx and everything else is
// terminal.
func Retriable(err error) bool {
	switch KindOf(err) {
	case KindTimeout, KindPoolExhausted:
		return true
	case KindUpstream:
		return UpstreamStatusOf(err) >= 500
	default:
		return false
	}
}
