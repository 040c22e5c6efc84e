package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	neturl "net/url"

	"github.com/chaparral-bio/chaparral-go/internal/types"
)

// ListSearchResults returns every search result in the organization.
func ListSearchResults(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.SearchResult, error) {
	var results []types.SearchResult
	url := fmt.Sprintf("%s/search_results", baseURL)
	if err := getJSON(ctx, httpClient, "list search results", url, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ListProjectSearchResults returns the search results belonging to one project.
func ListProjectSearchResults(ctx context.Context, httpClient *http.Client, baseURL, projectID string) ([]types.SearchResult, error) {
	var results []types.SearchResult
	url := fmt.Sprintf("%s/projects/%s/search_results", baseURL, projectID)
	if err := getJSON(ctx, httpClient, "list project search results", url, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetSearchResult retrieves a single search result by ID.
func GetSearchResult(ctx context.Context, httpClient *http.Client, baseURL, searchResultID string) (*types.SearchResult, error) {
	var result types.SearchResult
	url := fmt.Sprintf("%s/search_results/%s", baseURL, searchResultID)
	if err := getJSON(ctx, httpClient, "get search result", url, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateSearch submits a new search for a project. The config schema is owned
// by the service, so it is passed through verbatim.
func CreateSearch(ctx context.Context, httpClient *http.Client, baseURL, projectID string, searchConfig json.RawMessage) error {
	url := fmt.Sprintf("%s/projects/%s/search", baseURL, projectID)
	return doJSON(ctx, httpClient, "create search", http.MethodPost, url, searchConfig, nil)
}

// DeleteSearchResult deletes a search result by ID.
func DeleteSearchResult(ctx context.Context, httpClient *http.Client, baseURL, searchResultID string) error {
	url := fmt.Sprintf("%s/search_results/%s", baseURL, searchResultID)
	return doJSON(ctx, httpClient, "delete search result", http.MethodDelete, url, nil, nil)
}

// GetSearchResultDownload retrieves the presigned artifact URL manifest for a
// search result.
func GetSearchResultDownload(ctx context.Context, httpClient *http.Client, baseURL, searchResultID string) (*types.SearchResultDownload, error) {
	var download types.SearchResultDownload
	url := fmt.Sprintf("%s/search_results/%s/download", baseURL, searchResultID)
	if err := getJSON(ctx, httpClient, "get search result download", url, &download); err != nil {
		return nil, err
	}
	return &download, nil
}

// GetPeptidesByProtein returns the PSMs matching a protein within a search result.
func GetPeptidesByProtein(ctx context.Context, httpClient *http.Client, baseURL, searchResultID, proteinID string) ([]types.PeptideResult, error) {
	var peptides []types.PeptideResult
	url := fmt.Sprintf("%s/search_results/%s/protein/%s", baseURL, searchResultID, neturl.PathEscape(proteinID))
	if err := getJSON(ctx, httpClient, "get peptides by protein", url, &peptides); err != nil {
		return nil, err
	}
	return peptides, nil
}

// GetPeptidesByPeptide returns the PSMs matching a peptide within a search result.
func GetPeptidesByPeptide(ctx context.Context, httpClient *http.Client, baseURL, searchResultID, peptideID string) ([]types.PeptideResult, error) {
	var peptides []types.PeptideResult
	url := fmt.Sprintf("%s/search_results/%s/peptide/%s", baseURL, searchResultID, neturl.PathEscape(peptideID))
	if err := getJSON(ctx, httpClient, "get peptides by peptide", url, &peptides); err != nil {
		return nil, err
	}
	return peptides, nil
}

// GetPsmAnnotations returns the annotated fragment ions for one PSM.
func GetPsmAnnotations(ctx context.Context, httpClient *http.Client, baseURL, searchResultID string, psmID int64) ([]types.FragmentData, error) {
	var fragments []types.FragmentData
	url := fmt.Sprintf("%s/search_results/%s/psm_annotation/%d", baseURL, searchResultID, psmID)
	if err := getJSON(ctx, httpClient, "get psm annotations", url, &fragments); err != nil {
		return nil, err
	}
	return fragments, nil
}

// GetSpectra returns the spectrum scans for a scan number within an input file.
func GetSpectra(ctx context.Context, httpClient *http.Client, baseURL, searchResultID, filename, scanNr string) ([]types.ScanData, error) {
	var scans []types.ScanData
	url := fmt.Sprintf("%s/search_results/%s/%s/%s/mzparquet",
		baseURL, searchResultID, neturl.PathEscape(filename), neturl.PathEscape(scanNr))
	if err := getJSON(ctx, httpClient, "get spectra", url, &scans); err != nil {
		return nil, err
	}
	return scans, nil
}
