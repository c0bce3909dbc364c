package paperforge

import (
	"fmt"
	"net/http"
)

// Kind classifies a Generate failure. The taxonomy is total: every non-2xx
// status maps to a kind, with unmapped statuses folded into KindServer.
type Kind int

// The eight error kinds returned by Generate.
const (
	KindValidation Kind = iota
	KindAuthentication
	KindForbidden
	KindNotFound
	KindRateLimit
	KindServer
	KindTimeout
	KindNetwork
)

// String returns the kind name for logging and error messages.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindRateLimit:
		return "rate limit"
	case KindServer:
		return "server"
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by Generate. The Kind field is
// the discriminant; RetryAfter is set only for KindRateLimit and Cause only
// for KindNetwork.
type Error struct {
	Kind       Kind
	StatusCode int // original HTTP status, 0 for KindTimeout and KindNetwork
	Code       string
	Message    string
	Details    any
	RetryAfter *int // seconds, from the Retry-After header
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("paperforge: %s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("paperforge: %s error: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsNotFound checks if the error indicates the template does not exist.
func (e *Error) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsAuthFailure checks if the error indicates a credential or permission
// problem.
func (e *Error) IsAuthFailure() bool {
	return e.Kind == KindAuthentication || e.Kind == KindForbidden
}

// IsRetryable checks if the error is worth retrying by the caller.
func (e *Error) IsRetryable() bool {
	switch e.Kind {
	case KindRateLimit, KindServer, KindTimeout, KindNetwork:
		return true
	}
	return false
}

// classifyStatus maps a non-2xx HTTP status to its error kind.
func classifyStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindAuthentication
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusTooManyRequests:
		return KindRateLimit
	default:
		return KindServer
	}
}
