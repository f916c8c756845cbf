// ABOUTME: Error taxonomy for backend API failures
// ABOUTME: Maps transport and status errors to kinds the UI can act on

package api

import (
	"errors"
	"fmt"
)

// Kind classifies an API failure. Every failure surfaced by the client is
// exactly one of these; callers branch on the kind, never on status codes.
type Kind int

const (
	// KindUnauthorized means no or invalid token. Callers should clear the
	// session and send the user back to login.
	KindUnauthorized Kind = iota
	// KindForbidden means a valid token with insufficient role.
	KindForbidden
	// KindNotFound means the identifier is stale; callers should refresh
	// their list.
	KindNotFound
	// KindValidationFailed means the payload was rejected; the message is
	// surfaced verbatim to the user.
	KindValidationFailed
	// KindNetworkUnavailable means no response was received at all.
	KindNetworkUnavailable
	// KindServerError covers every other failure.
	KindServerError
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidationFailed:
		return "validation_failed"
	case KindNetworkUnavailable:
		return "network_unavailable"
	default:
		return "server_error"
	}
}

// Error is a classified backend failure.
type Error struct {
	Kind    Kind
	Message string
	Status  int // HTTP status when a response was received, else 0
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return "backend request failed"
}

func newError(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Message: message, Status: status}
}

// KindOf returns the kind of an API error, or KindServerError for anything
// the client did not classify.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindServerError
}

// IsUnauthorized reports whether err is an authorization failure that should
// end the session.
func IsUnauthorized(err error) bool {
	return isKind(err, KindUnauthorized)
}

// IsForbidden reports whether err is a role failure.
func IsForbidden(err error) bool {
	return isKind(err, KindForbidden)
}

// IsNotFound reports whether err refers to a stale identifier.
func IsNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

// IsValidationFailed reports whether err is a rejected payload.
func IsValidationFailed(err error) bool {
	return isKind(err, KindValidationFailed)
}

func isKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
