package chaparral

import (
	"context"
	"errors"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/chaparral-bio/chaparral-go/internal/api"
)

// errStillRunning drives the backoff loop; it never escapes AwaitSearchResult.
var errStillRunning = errors.New("search still running")

// AwaitSearchResult polls a search result until its status is terminal
// (SUCCEEDED or FAILED) and returns the final record. A FAILED search is not
// an error here; check Status on the returned record.
//
// Each poll is an independent GET with exponential spacing between polls
// (tunable via WithPollInterval). API errors abort the wait immediately;
// cancellation of ctx returns ctx.Err().
func (c *Client) AwaitSearchResult(ctx context.Context, searchResultID string) (*SearchResult, error) {
	var result *SearchResult

	operation := func() error {
		r, err := api.GetSearchResult(ctx, c.http, c.baseURL, searchResultID)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !r.Status.Terminal() {
			return errStillRunning
		}
		result = r
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.pollInitialInterval
	bo.MaxInterval = c.pollMaxInterval
	bo.MaxElapsedTime = 0 // bounded by ctx alone

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return result, nil
}
