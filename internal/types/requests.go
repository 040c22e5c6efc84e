package types

// ------------------------------
// Request Types
// ------------------------------

// CreateProjectRequest holds parameters for a new project
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProjectRequest replaces a project's name and description
type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateOrganizationRequest renames the organization
type UpdateOrganizationRequest struct {
	Name string `json:"name"`
}

// InviteRequest invites a user into the organization by email
type InviteRequest struct {
	Email string `json:"email"`
}

// UpdateFastaRequest replaces the mutable metadata of a FASTA database.
// A nil DecoyTag is sent as JSON null so the server clears the field.
type UpdateFastaRequest struct {
	Name     string  `json:"name"`
	Organism string  `json:"organism"`
	DecoyTag *string `json:"decoy_tag"`
}
