package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chaparral-bio/chaparral-go/internal/types"
)

// GetQcScores returns the score-distribution histogram for a search result.
func GetQcScores(ctx context.Context, httpClient *http.Client, baseURL, searchResultID string) ([]types.QcScore, error) {
	var scores []types.QcScore
	url := fmt.Sprintf("%s/search_results/%s/qc/scores", baseURL, searchResultID)
	if err := getJSON(ctx, httpClient, "get qc scores", url, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// GetQcIDs returns the per-file identification counts for a search result.
func GetQcIDs(ctx context.Context, httpClient *http.Client, baseURL, searchResultID string) ([]types.QcID, error) {
	var ids []types.QcID
	url := fmt.Sprintf("%s/search_results/%s/qc/ids", baseURL, searchResultID)
	if err := getJSON(ctx, httpClient, "get qc ids", url, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetQcPrecursors returns the per-file precursor quantiles for a search result.
func GetQcPrecursors(ctx context.Context, httpClient *http.Client, baseURL, searchResultID string) ([]types.QcPrecursor, error) {
	var precursors []types.QcPrecursor
	url := fmt.Sprintf("%s/search_results/%s/qc/precursors", baseURL, searchResultID)
	if err := getJSON(ctx, httpClient, "get qc precursors", url, &precursors); err != nil {
		return nil, err
	}
	return precursors, nil
}
