package chaparral

import "github.com/chaparral-bio/chaparral-go/internal/types"

// Public type aliases so SDK consumers can import only the chaparral package.
type (
	// Requests
	CreateProjectRequest      = types.CreateProjectRequest
	UpdateProjectRequest      = types.UpdateProjectRequest
	UpdateOrganizationRequest = types.UpdateOrganizationRequest
	InviteRequest             = types.InviteRequest
	UpdateFastaRequest        = types.UpdateFastaRequest

	// Domain entities
	Project              = types.Project
	Organization         = types.Organization
	OrganizationUsage    = types.OrganizationUsage
	Profile              = types.Profile
	ProjectFile          = types.ProjectFile
	Fasta                = types.Fasta
	SearchResult         = types.SearchResult
	SearchResultDownload = types.SearchResultDownload
	SearchStatus         = types.SearchStatus
	QcScore              = types.QcScore
	QcID                 = types.QcID
	QcPrecursor          = types.QcPrecursor
	PeptideResult        = types.PeptideResult
	FragmentData         = types.FragmentData
	ScanData             = types.ScanData
)

// Search job lifecycle states.
const (
	StatusSubmitted = types.StatusSubmitted
	StatusPending   = types.StatusPending
	StatusRunnable  = types.StatusRunnable
	StatusStarting  = types.StatusStarting
	StatusRunning   = types.StatusRunning
	StatusSucceeded = types.StatusSucceeded
	StatusFailed    = types.StatusFailed
)

// Errors re-exported in errors.go
