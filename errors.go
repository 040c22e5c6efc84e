package chaparral

import "github.com/chaparral-bio/chaparral-go/internal/apierr"

// APIError is the concrete error type behind every classified failure.
// Callers usually go through the Is* helpers; errors.As against *APIError
// exposes the status code and response body when needed.
type APIError = apierr.APIError

// ErrNotImplemented is returned by CreateFasta: the remote endpoint does not
// exist yet, so no request is ever made.
var ErrNotImplemented error = apierr.ErrNotImplemented

// IsAuth reports whether err is an authentication failure (expired or
// invalid token). The token is never refreshed; obtain a fresh one and build
// a new Client.
func IsAuth(err error) bool { return apierr.IsKind(err, apierr.KindAuth) }

// IsNotFound reports whether err means the identifier does not exist.
func IsNotFound(err error) bool { return apierr.IsKind(err, apierr.KindNotFound) }

// IsValidation reports whether err is a malformed-request failure, detected
// either client-side before sending or server-side.
func IsValidation(err error) bool { return apierr.IsKind(err, apierr.KindValidation) }

// IsServer reports whether err is a 5xx response.
func IsServer(err error) bool { return apierr.IsKind(err, apierr.KindServer) }

// IsTransport reports whether err is a network-level failure such as a
// refused connection or timeout.
func IsTransport(err error) bool { return apierr.IsKind(err, apierr.KindTransport) }

// IsNotImplemented reports whether err marks a stubbed endpoint.
func IsNotImplemented(err error) bool { return apierr.IsKind(err, apierr.KindNotImplemented) }
