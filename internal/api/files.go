package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chaparral-bio/chaparral-go/internal/apierr"
)

// FetchFile GETs a presigned artifact URL and returns the body as text.
// Artifacts are modest in size, so the whole payload is read in one pass.
// The caller must pass an HTTP client WITHOUT the bearer transport: presigned
// object-store URLs carry their own credentials and reject extra
// Authorization headers.
func FetchFile(ctx context.Context, httpClient *http.Client, url string) (string, error) {
	const op = "fetch file"
	if err := ctx.Err(); err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", op, err)
	}

	requestsTotal.WithLabelValues(op).Inc()
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		apiErr := apierr.Network(op, err)
		failuresTotal.WithLabelValues(op, apiErr.Kind.String()).Inc()
		return "", apiErr
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		apiErr := apierr.FromStatus(op, resp.StatusCode, strings.TrimSpace(string(raw)))
		failuresTotal.WithLabelValues(op, apiErr.Kind.String()).Inc()
		return "", apiErr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read body: %w", op, err)
	}
	return string(raw), nil
}
