package types

import (
	"encoding/json"
	"time"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Project represents a project
type Project struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Organization represents the organization owning the token
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrganizationUsage reports accumulated storage and compute consumption.
// The service returns the figures as strings.
type OrganizationUsage struct {
	Storage       string `json:"storage"`
	ComputeCPUSec string `json:"compute_cpu_s"`
	ComputeMemSec string `json:"compute_mem_s"`
}

// Profile represents the user profile behind the token
type Profile struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Agreed        bool      `json:"agreed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Fasta represents a FASTA sequence database
type Fasta struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	CRC32          int64   `json:"crc32"`
	Size           int64   `json:"size"`
	ProteinCount   int     `json:"protein_count"`
	Organism       *string `json:"organism,omitempty"`
	DecoyTag       *string `json:"decoy_tag,omitempty"`
	Key            string  `json:"key"`
	OrganizationID string  `json:"organization_id"`
}

// ProjectFile represents a raw data file uploaded to a project
type ProjectFile struct {
	ID             string    `json:"id"`
	File           string    `json:"file"`
	Extension      string    `json:"extension"`
	CRC32          int64     `json:"crc32"`
	Size           int64     `json:"size"`
	ProjectID      string    `json:"project_id"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	JobID          *string   `json:"job_id,omitempty"`
	JobStatus      *string   `json:"job_status,omitempty"`
}

// SearchStatus is the lifecycle state of a search job.
type SearchStatus string

const (
	StatusSubmitted SearchStatus = "SUBMITTED"
	StatusPending   SearchStatus = "PENDING"
	StatusRunnable  SearchStatus = "RUNNABLE"
	StatusStarting  SearchStatus = "STARTING"
	StatusRunning   SearchStatus = "RUNNING"
	StatusSucceeded SearchStatus = "SUCCEEDED"
	StatusFailed    SearchStatus = "FAILED"
)

// Terminal reports whether the status is final and will not change again.
func (s SearchStatus) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// SearchResult represents a completed or in-flight search.
// Params carries the submitted search configuration verbatim; its schema is
// owned by the service and left to the caller to interpret.
type SearchResult struct {
	ID              string          `json:"id"`
	Notes           *string         `json:"notes,omitempty"`
	PassingPsms     *int            `json:"passing_psms,omitempty"`
	PassingPeptides *int            `json:"passing_peptides,omitempty"`
	PassingProteins *int            `json:"passing_proteins,omitempty"`
	InputFiles      []string        `json:"input_files"`
	Params          json.RawMessage `json:"params"`
	ProjectID       string          `json:"project_id"`
	ProjectName     string          `json:"project_name"`
	OrganizationID  string          `json:"organization_id"`
	JobID           string          `json:"job_id"`
	CreatedAt       time.Time       `json:"created_at"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	FinishedAt      *time.Time      `json:"finished_at,omitempty"`
	Status          SearchStatus    `json:"status"`
	CPU             int             `json:"cpu"`
	Memory          int             `json:"memory"`
}

// SearchResultDownload is the set of presigned artifact URLs for one search
// result. Keys on the wire are the literal artifact filenames. URLs are
// ephemeral and should be fetched promptly.
type SearchResultDownload struct {
	ConfigJSON              string `json:"config.json"`
	MatchedFragmentsParquet string `json:"matched_fragments.sage.parquet"`
	PeptideCSV              string `json:"peptide.csv"`
	ProteinsCSV             string `json:"proteins.csv"`
	ResultsJSON             string `json:"results.json"`
	ResultsParquet          string `json:"results.sage.parquet"`
}

// ------------------------------
// QC metrics (scoped to one search result)
// ------------------------------

// QcScore is one histogram bin of the score distribution.
type QcScore struct {
	Bin     float64 `json:"bin"`
	Count   int     `json:"count"`
	IsDecoy bool    `json:"is_decoy"`
}

// QcID is the per-file identification count summary.
type QcID struct {
	Filename      string `json:"filename"`
	Peptides      int    `json:"peptides"`
	ProteinGroups int    `json:"protein_groups"`
	Psms          int    `json:"psms"`
}

// QcPrecursor is the per-file precursor intensity quantile summary.
type QcPrecursor struct {
	Filename string  `json:"filename"`
	Q10      float64 `json:"q10"`
	Q25      float64 `json:"q25"`
	Q50      float64 `json:"q50"`
	Q75      float64 `json:"q75"`
	Q90      float64 `json:"q90"`
}

// ------------------------------
// Per-PSM detail records
// ------------------------------

// PeptideResult is one peptide-spectrum match.
type PeptideResult struct {
	CalcMass float64 `json:"calcmass"`
	Charge   int     `json:"charge"`
	ExpMass  float64 `json:"expmass"`
	Filename string  `json:"filename"`
	Peptide  string  `json:"peptide"`
	PsmID    int64   `json:"psm_id"`
	ScanNr   string  `json:"scannr"`
}

// FragmentData is one annotated fragment ion of a PSM.
type FragmentData struct {
	FragmentCharge         int     `json:"fragment_charge"`
	FragmentIntensity      float64 `json:"fragment_intensity"`
	FragmentMzCalculated   float64 `json:"fragment_mz_calculated"`
	FragmentMzExperimental float64 `json:"fragment_mz_experimental"`
	FragmentOrdinals       int     `json:"fragment_ordinals"`
	FragmentType           string  `json:"fragment_type"`
	PsmID                  int64   `json:"psm_id"`
}

// ScanData is one spectrum scan record.
type ScanData struct {
	Intensity       int64   `json:"intensity"`
	IsolationLower  float64 `json:"isolation_lower"`
	IsolationUpper  float64 `json:"isolation_upper"`
	Level           int     `json:"level"`
	Mz              float64 `json:"mz"`
	PrecursorCharge int     `json:"precursor_charge"`
	PrecursorMz     float64 `json:"precursor_mz"`
	PrecursorScan   int     `json:"precursor_scan"`
	RT              float64 `json:"rt"`
	Scan            int     `json:"scan"`
}
