package apierr

import "fmt"

// FromStatus maps a non-2xx HTTP response to a classified error.
func FromStatus(op string, statusCode int, body string) *APIError {
	return &APIError{
		Kind:       kindForStatus(statusCode),
		Op:         op,
		StatusCode: statusCode,
		Body:       body,
	}
}

// kindForStatus maps HTTP status codes to failure classes.
func kindForStatus(statusCode int) Kind {
	switch {
	case statusCode == 401 || statusCode == 403:
		return KindAuth
	case statusCode == 404:
		return KindNotFound
	case statusCode == 400 || statusCode == 422:
		return KindValidation
	case statusCode >= 500 && statusCode < 600:
		return KindServer
	default:
		// Unexpected status codes land on the server bucket rather than
		// inventing a class the caller cannot act on.
		return KindServer
	}
}

// Network wraps a transport-level failure (no HTTP status available).
func Network(op string, err error) *APIError {
	return &APIError{
		Kind: KindTransport,
		Op:   op,
		Err:  fmt.Errorf("network error: %w", err),
	}
}

// Validation wraps a client-side schema validation failure. The request was
// never sent.
func Validation(op string, err error) *APIError {
	return &APIError{
		Kind: KindValidation,
		Op:   op,
		Err:  err,
	}
}
