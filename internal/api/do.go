// Package api holds one free function per Chaparral endpoint. Functions take
// the HTTP client and base URL explicitly; authentication is handled by the
// transport configured on the client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chaparral-bio/chaparral-go/internal/apierr"
)

// errorBodyLimit caps how much of a failed response is kept for the error.
const errorBodyLimit = 8 << 10

// doJSON performs one request and decodes a 2xx JSON response into out.
// out may be nil for endpoints whose body is irrelevant (deletes, invites).
// Non-2xx responses and network failures come back as *apierr.APIError.
func doJSON(ctx context.Context, httpClient *http.Client, op, method, url string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewBuffer(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	// Note: Authorization header is added by the transport layer.

	requestsTotal.WithLabelValues(op).Inc()
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		// Context errors surface as-is so callers see cancellation, not
		// a transport failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		apiErr := apierr.Network(op, err)
		failuresTotal.WithLabelValues(op, apiErr.Kind.String()).Inc()
		return apiErr
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		apiErr := apierr.FromStatus(op, resp.StatusCode, strings.TrimSpace(string(raw)))
		failuresTotal.WithLabelValues(op, apiErr.Kind.String()).Inc()
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// getJSON is doJSON for body-less GET requests.
func getJSON(ctx context.Context, httpClient *http.Client, op, url string, out any) error {
	return doJSON(ctx, httpClient, op, http.MethodGet, url, nil, out)
}
