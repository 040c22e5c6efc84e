// Package apierr classifies failures reported by the Chaparral API so callers
// can branch on the failure class instead of raw status codes.
package apierr

import (
	"errors"
	"fmt"
)

// Kind is the failure class of an API call.
type Kind int

const (
	// KindAuth covers expired or invalid tokens (401, 403).
	KindAuth Kind = iota

	// KindNotFound covers unknown identifiers (404).
	KindNotFound

	// KindValidation covers malformed request payloads, rejected either
	// client-side before the request is sent or server-side (400, 422).
	KindValidation

	// KindServer covers 5xx responses.
	KindServer

	// KindTransport covers network-level failures: connection refused,
	// DNS errors, timeouts. StatusCode is 0 for these.
	KindTransport

	// KindNotImplemented marks endpoints the service does not support yet.
	KindNotImplemented
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindTransport:
		return "transport"
	case KindNotImplemented:
		return "not_implemented"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// APIError carries the failure class plus whatever the service reported.
type APIError struct {
	Kind       Kind
	Op         string // operation that failed, e.g. "get project"
	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Body       string // response body, if any
	Err        error  // underlying error, if any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: [%s] HTTP %d: %s", e.Op, e.Kind, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: [%s] %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: [%s]", e.Op, e.Kind)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *APIError) Unwrap() error { return e.Err }

// Is lets errors.Is match two APIErrors by kind alone, so sentinel values
// like ErrNotImplemented compare cleanly.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Kind == e.Kind
}

// ErrNotImplemented is returned by stubbed operations whose remote endpoint
// does not exist yet. No request is made.
var ErrNotImplemented = &APIError{Kind: KindNotImplemented, Op: "create fasta"}

// KindOf extracts the failure class from err, or KindTransport if err is not
// an APIError (a bare error can only come from the transport layer).
func KindOf(err error) Kind {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindTransport
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, k Kind) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Kind == k
}
