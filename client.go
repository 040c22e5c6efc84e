// Package chaparral is a typed client for the Chaparral proteomics search
// platform. Every method is one HTTP request against the REST/JSON API,
// authenticated with a bearer token the caller obtains out of band.
package chaparral

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/chaparral-bio/chaparral-go/internal/api"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.us-west.chaparral.ai"

// defaultHTTPTimeout bounds a single request end to end.
const defaultHTTPTimeout = 10 * time.Second

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client calls the Chaparral API. It holds only the token and base URL and
// keeps no state across calls, so it is safe to share between goroutines.
// Tokens expire after eight hours and are never refreshed by the client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client // bearer transport installed
	files   *http.Client // no Authorization header, for presigned URLs

	pollInitialInterval time.Duration
	pollMaxInterval     time.Duration
}

// New constructs a Client for the given token. Additional options can be
// provided via functional arguments.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	c := &Client{
		baseURL:             DefaultBaseURL,
		token:               token,
		http:                &http.Client{Timeout: defaultHTTPTimeout},
		pollInitialInterval: 2 * time.Second,
		pollMaxInterval:     30 * time.Second,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// The files client shares the transport stack captured here, before the
	// bearer wrapper goes on: presigned object-store URLs carry their own
	// credentials and reject an extra Authorization header.
	c.files = &http.Client{Timeout: c.http.Timeout, Transport: c.http.Transport}

	c.wrapTransportWithToken()

	return c, nil
}

// wrapTransportWithToken wraps the HTTP client's transport to add the
// Authorization header to every API request.
func (c *Client) wrapTransportWithToken() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{
		base:  baseTransport,
		token: c.token,
	}
}

// bearerTransport wraps an http.RoundTripper to add the Authorization header.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone so the caller's request is not mutated.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Project operations - delegated to internal/api
// --------------------------------------------------------------------

// ListProjects returns every project visible to the token.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	return api.ListProjects(ctx, c.http, c.baseURL)
}

// GetProject retrieves a project by ID.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	return api.GetProject(ctx, c.http, c.baseURL, projectID)
}

// CreateProject creates a new project and returns the created record.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	return api.CreateProject(ctx, c.http, c.baseURL, req)
}

// UpdateProject replaces a project's name and description.
func (c *Client) UpdateProject(ctx context.Context, projectID string, req UpdateProjectRequest) (*Project, error) {
	return api.UpdateProject(ctx, c.http, c.baseURL, projectID, req)
}

// DeleteProject deletes a project by ID.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return api.DeleteProject(ctx, c.http, c.baseURL, projectID)
}

// ListProjectFiles returns the raw data files uploaded to a project.
func (c *Client) ListProjectFiles(ctx context.Context, projectID string) ([]ProjectFile, error) {
	return api.ListProjectFiles(ctx, c.http, c.baseURL, projectID)
}

// --------------------------------------------------------------------
// Organization and profile operations
// --------------------------------------------------------------------

// GetOrganization retrieves the organization the token belongs to.
func (c *Client) GetOrganization(ctx context.Context) (*Organization, error) {
	return api.GetOrganization(ctx, c.http, c.baseURL)
}

// UpdateOrganization renames the organization. Only the name is mutable.
func (c *Client) UpdateOrganization(ctx context.Context, req UpdateOrganizationRequest) (*Organization, error) {
	return api.UpdateOrganization(ctx, c.http, c.baseURL, req)
}

// InviteToOrganization invites a user into the organization by email.
func (c *Client) InviteToOrganization(ctx context.Context, email string) error {
	return api.InviteToOrganization(ctx, c.http, c.baseURL, InviteRequest{Email: email})
}

// GetOrganizationUsage reports the organization's storage and compute usage.
func (c *Client) GetOrganizationUsage(ctx context.Context) (*OrganizationUsage, error) {
	return api.GetOrganizationUsage(ctx, c.http, c.baseURL)
}

// GetProfile retrieves the user profile behind the token.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	return api.GetProfile(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// FASTA database operations
// --------------------------------------------------------------------

// ListFastas returns every FASTA database in the organization.
func (c *Client) ListFastas(ctx context.Context) ([]Fasta, error) {
	return api.ListFastas(ctx, c.http, c.baseURL)
}

// GetFasta retrieves a FASTA database by ID.
func (c *Client) GetFasta(ctx context.Context, fastaID string) (*Fasta, error) {
	return api.GetFasta(ctx, c.http, c.baseURL, fastaID)
}

// CreateFasta is a stub: the service has no database-creation endpoint yet.
// It returns ErrNotImplemented without making a request.
func (c *Client) CreateFasta(ctx context.Context) error {
	return ErrNotImplemented
}

// UpdateFasta replaces the mutable metadata of a FASTA database. A nil
// DecoyTag in the request is sent as JSON null and clears the field.
func (c *Client) UpdateFasta(ctx context.Context, fastaID string, req UpdateFastaRequest) (*Fasta, error) {
	return api.UpdateFasta(ctx, c.http, c.baseURL, fastaID, req)
}

// DeleteFasta deletes a FASTA database by ID.
func (c *Client) DeleteFasta(ctx context.Context, fastaID string) error {
	return api.DeleteFasta(ctx, c.http, c.baseURL, fastaID)
}

// --------------------------------------------------------------------
// Search result operations
// --------------------------------------------------------------------

// ListSearchResults returns every search result in the organization.
func (c *Client) ListSearchResults(ctx context.Context) ([]SearchResult, error) {
	return api.ListSearchResults(ctx, c.http, c.baseURL)
}

// ListProjectSearchResults returns the search results of one project.
func (c *Client) ListProjectSearchResults(ctx context.Context, projectID string) ([]SearchResult, error) {
	return api.ListProjectSearchResults(ctx, c.http, c.baseURL, projectID)
}

// GetSearchResult retrieves a single search result by ID.
func (c *Client) GetSearchResult(ctx context.Context, searchResultID string) (*SearchResult, error) {
	return api.GetSearchResult(ctx, c.http, c.baseURL, searchResultID)
}

// CreateSearch submits a new search for a project. The config schema is owned
// by the service and passed through verbatim.
func (c *Client) CreateSearch(ctx context.Context, projectID string, searchConfig json.RawMessage) error {
	return api.CreateSearch(ctx, c.http, c.baseURL, projectID, searchConfig)
}

// DeleteSearchResult deletes a search result by ID.
func (c *Client) DeleteSearchResult(ctx context.Context, searchResultID string) error {
	return api.DeleteSearchResult(ctx, c.http, c.baseURL, searchResultID)
}

// GetSearchResultDownload retrieves the presigned artifact URL manifest for a
// search result. The URLs are ephemeral.
func (c *Client) GetSearchResultDownload(ctx context.Context, searchResultID string) (*SearchResultDownload, error) {
	return api.GetSearchResultDownload(ctx, c.http, c.baseURL, searchResultID)
}

// GetPeptidesByProtein returns the PSMs matching a protein in a search result.
func (c *Client) GetPeptidesByProtein(ctx context.Context, searchResultID, proteinID string) ([]PeptideResult, error) {
	return api.GetPeptidesByProtein(ctx, c.http, c.baseURL, searchResultID, proteinID)
}

// GetPeptidesByPeptide returns the PSMs matching a peptide in a search result.
func (c *Client) GetPeptidesByPeptide(ctx context.Context, searchResultID, peptideID string) ([]PeptideResult, error) {
	return api.GetPeptidesByPeptide(ctx, c.http, c.baseURL, searchResultID, peptideID)
}

// GetPsmAnnotations returns the annotated fragment ions for one PSM.
func (c *Client) GetPsmAnnotations(ctx context.Context, searchResultID string, psmID int64) ([]FragmentData, error) {
	return api.GetPsmAnnotations(ctx, c.http, c.baseURL, searchResultID, psmID)
}

// GetSpectra returns the spectrum scans for a scan number within an input file.
func (c *Client) GetSpectra(ctx context.Context, searchResultID, filename, scanNr string) ([]ScanData, error) {
	return api.GetSpectra(ctx, c.http, c.baseURL, searchResultID, filename, scanNr)
}

// --------------------------------------------------------------------
// QC operations
// --------------------------------------------------------------------

// GetQcScores returns the score-distribution histogram for a search result.
func (c *Client) GetQcScores(ctx context.Context, searchResultID string) ([]QcScore, error) {
	return api.GetQcScores(ctx, c.http, c.baseURL, searchResultID)
}

// GetQcIDs returns the per-file identification counts for a search result.
func (c *Client) GetQcIDs(ctx context.Context, searchResultID string) ([]QcID, error) {
	return api.GetQcIDs(ctx, c.http, c.baseURL, searchResultID)
}

// GetQcPrecursors returns the per-file precursor quantiles for a search result.
func (c *Client) GetQcPrecursors(ctx context.Context, searchResultID string) ([]QcPrecursor, error) {
	return api.GetQcPrecursors(ctx, c.http, c.baseURL, searchResultID)
}

// --------------------------------------------------------------------
// Artifact fetches - manifest lookup plus one plain GET per file
// --------------------------------------------------------------------

// FetchFile GETs a presigned artifact URL and returns the payload as text.
func (c *Client) FetchFile(ctx context.Context, url string) (string, error) {
	return api.FetchFile(ctx, c.files, url)
}

// FetchConfigJSON downloads the submitted search configuration.
func (c *Client) FetchConfigJSON(ctx context.Context, searchResultID string) (string, error) {
	return c.fetchArtifact(ctx, searchResultID, func(d *SearchResultDownload) string { return d.ConfigJSON })
}

// FetchMatchedFragmentsParquet downloads the matched-fragments parquet artifact.
func (c *Client) FetchMatchedFragmentsParquet(ctx context.Context, searchResultID string) (string, error) {
	return c.fetchArtifact(ctx, searchResultID, func(d *SearchResultDownload) string { return d.MatchedFragmentsParquet })
}

// FetchPeptideCSV downloads the peptide report.
func (c *Client) FetchPeptideCSV(ctx context.Context, searchResultID string) (string, error) {
	return c.fetchArtifact(ctx, searchResultID, func(d *SearchResultDownload) string { return d.PeptideCSV })
}

// FetchProteinsCSV downloads the protein-group report.
func (c *Client) FetchProteinsCSV(ctx context.Context, searchResultID string) (string, error) {
	return c.fetchArtifact(ctx, searchResultID, func(d *SearchResultDownload) string { return d.ProteinsCSV })
}

// FetchResultsJSON downloads the results summary.
func (c *Client) FetchResultsJSON(ctx context.Context, searchResultID string) (string, error) {
	return c.fetchArtifact(ctx, searchResultID, func(d *SearchResultDownload) string { return d.ResultsJSON })
}

// FetchResultsParquet downloads the full results parquet artifact.
func (c *Client) FetchResultsParquet(ctx context.Context, searchResultID string) (string, error) {
	return c.fetchArtifact(ctx, searchResultID, func(d *SearchResultDownload) string { return d.ResultsParquet })
}

func (c *Client) fetchArtifact(ctx context.Context, searchResultID string, pick func(*SearchResultDownload) string) (string, error) {
	download, err := c.GetSearchResultDownload(ctx, searchResultID)
	if err != nil {
		return "", err
	}
	return api.FetchFile(ctx, c.files, pick(download))
}
