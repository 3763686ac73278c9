// Package services defines the read-side business logic for categories,
// reviews, comments, and users. This file centralizes the service-level error
// taxonomy so that every failure reaching the HTTP layer carries exactly one
// classification.
//
// Translation into status codes and response bodies is performed by the
// error classifier in the handler layer; services only decide the Kind.
package services

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure.
type Kind uint8

const (
	// KindUnknown is never produced by constructors; the classifier treats it
	// like KindStorage.
	KindUnknown Kind = iota
	// KindInvalidParameter means a path parameter failed strict validation.
	KindInvalidParameter
	// KindNotFound means a well-formed identifier matched zero rows.
	KindNotFound
	// KindStorage means the persistence gateway failed.
	KindStorage
	// KindRouteNotFound means no route matched the request.
	KindRouteNotFound
	// KindRateLimited means the client exhausted its request budget.
	KindRateLimited
	// KindInternal means a handler panicked.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	case KindRouteNotFound:
		return "route_not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the tagged error returned by services.
//
// Param names the offending path parameter (e.g. "review_id") for
// KindInvalidParameter and KindNotFound. Reason completes the invalid-parameter
// message ("is not a number"). Cause holds the underlying gateway error for
// KindStorage and is never shown to clients.
type Error struct {
	Kind   Kind
	Param  string
	Reason string
	Cause  error
}

// Sentinels for errors.Is checks; matching is by Kind only.
var (
	ErrInvalidParameter = &Error{Kind: KindInvalidParameter}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrStorage          = &Error{Kind: KindStorage}
	ErrRouteNotFound    = &Error{Kind: KindRouteNotFound}
	ErrRateLimited      = &Error{Kind: KindRateLimited}
)

// Public messages that do not depend on a parameter.
const (
	MsgRouteNotFound   = "Route not found"
	MsgTooManyRequests = "Too many requests"
	MsgInternal        = "Internal server error"
)

const reasonNotANumber = "is not a number"

// InvalidParameter reports that param failed strict validation.
func InvalidParameter(param, reason string) *Error {
	return &Error{Kind: KindInvalidParameter, Param: param, Reason: reason}
}

// NotANumber reports a non-numeric identifier parameter.
func NotANumber(param string) *Error { return InvalidParameter(param, reasonNotANumber) }

// NotFound reports that param was well formed but matched nothing.
func NotFound(param string) *Error { return &Error{Kind: KindNotFound, Param: param} }

// Storage wraps a gateway failure.
func Storage(cause error) *Error { return &Error{Kind: KindStorage, Cause: cause} }

// Internal wraps a recovered panic.
func Internal(cause error) *Error { return &Error{Kind: KindInternal, Cause: cause} }

// Message returns the client-facing text for e.
func (e *Error) Message() string {
	switch e.Kind {
	case KindInvalidParameter:
		return fmt.Sprintf("bad request - %s %s", e.Param, e.Reason)
	case KindNotFound:
		return e.Param + " not found"
	case KindRouteNotFound:
		return MsgRouteNotFound
	case KindRateLimited:
		return MsgTooManyRequests
	default:
		return MsgInternal
	}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	if e.Param == "" && e.Kind != KindRouteNotFound && e.Kind != KindRateLimited {
		return e.Kind.String()
	}
	return e.Message()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind carried by err, or KindUnknown when err is not a
// service error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}
