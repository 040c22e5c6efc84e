package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chaparral-bio/chaparral-go/internal/apierr"
	"github.com/chaparral-bio/chaparral-go/internal/types"
)

// ListProjects returns every project visible to the token.
func ListProjects(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Project, error) {
	var projects []types.Project
	url := fmt.Sprintf("%s/projects", baseURL)
	if err := getJSON(ctx, httpClient, "list projects", url, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject retrieves a project by ID.
func GetProject(ctx context.Context, httpClient *http.Client, baseURL, projectID string) (*types.Project, error) {
	var project types.Project
	url := fmt.Sprintf("%s/projects/%s", baseURL, projectID)
	if err := getJSON(ctx, httpClient, "get project", url, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a new project and returns the created record.
func CreateProject(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateProjectRequest) (*types.Project, error) {
	const op = "create project"
	if err := req.Validate(); err != nil {
		return nil, apierr.Validation(op, err)
	}
	var project types.Project
	url := fmt.Sprintf("%s/projects", baseURL)
	if err := doJSON(ctx, httpClient, op, http.MethodPost, url, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject replaces a project's name and description.
func UpdateProject(ctx context.Context, httpClient *http.Client, baseURL, projectID string, req types.UpdateProjectRequest) (*types.Project, error) {
	const op = "update project"
	if err := req.Validate(); err != nil {
		return nil, apierr.Validation(op, err)
	}
	var project types.Project
	url := fmt.Sprintf("%s/projects/%s", baseURL, projectID)
	if err := doJSON(ctx, httpClient, op, http.MethodPut, url, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project by ID.
func DeleteProject(ctx context.Context, httpClient *http.Client, baseURL, projectID string) error {
	url := fmt.Sprintf("%s/projects/%s", baseURL, projectID)
	return doJSON(ctx, httpClient, "delete project", http.MethodDelete, url, nil, nil)
}

// ListProjectFiles returns the raw data files uploaded to a project.
func ListProjectFiles(ctx context.Context, httpClient *http.Client, baseURL, projectID string) ([]types.ProjectFile, error) {
	var files []types.ProjectFile
	url := fmt.Sprintf("%s/projects/%s/files", baseURL, projectID)
	if err := getJSON(ctx, httpClient, "list project files", url, &files); err != nil {
		return nil, err
	}
	return files, nil
}
