package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chaparral-bio/chaparral-go/internal/apierr"
	"github.com/chaparral-bio/chaparral-go/internal/types"
)

// GetOrganization retrieves the single organization the token belongs to.
func GetOrganization(ctx context.Context, httpClient *http.Client, baseURL string) (*types.Organization, error) {
	var org types.Organization
	url := fmt.Sprintf("%s/organization", baseURL)
	if err := getJSON(ctx, httpClient, "get organization", url, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// UpdateOrganization renames the organization. Only the name is mutable.
func UpdateOrganization(ctx context.Context, httpClient *http.Client, baseURL string, req types.UpdateOrganizationRequest) (*types.Organization, error) {
	const op = "update organization"
	if err := req.Validate(); err != nil {
		return nil, apierr.Validation(op, err)
	}
	var org types.Organization
	url := fmt.Sprintf("%s/organization", baseURL)
	if err := doJSON(ctx, httpClient, op, http.MethodPut, url, req, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// InviteToOrganization invites a user into the organization by email.
func InviteToOrganization(ctx context.Context, httpClient *http.Client, baseURL string, req types.InviteRequest) error {
	const op = "invite to organization"
	if err := req.Validate(); err != nil {
		return apierr.Validation(op, err)
	}
	url := fmt.Sprintf("%s/organization/invite", baseURL)
	return doJSON(ctx, httpClient, op, http.MethodPost, url, req, nil)
}

// GetOrganizationUsage reports the organization's storage and compute usage.
func GetOrganizationUsage(ctx context.Context, httpClient *http.Client, baseURL string) (*types.OrganizationUsage, error) {
	var usage types.OrganizationUsage
	url := fmt.Sprintf("%s/organization/usage", baseURL)
	if err := getJSON(ctx, httpClient, "get organization usage", url, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}
