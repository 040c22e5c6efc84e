package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chaparral-bio/chaparral-go/internal/apierr"
	"github.com/chaparral-bio/chaparral-go/internal/types"
)

// ListFastas returns every FASTA database in the organization.
func ListFastas(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Fasta, error) {
	var fastas []types.Fasta
	url := fmt.Sprintf("%s/databases", baseURL)
	if err := getJSON(ctx, httpClient, "list fastas", url, &fastas); err != nil {
		return nil, err
	}
	return fastas, nil
}

// GetFasta retrieves a FASTA database by ID.
func GetFasta(ctx context.Context, httpClient *http.Client, baseURL, fastaID string) (*types.Fasta, error) {
	var fasta types.Fasta
	url := fmt.Sprintf("%s/databases/%s", baseURL, fastaID)
	if err := getJSON(ctx, httpClient, "get fasta", url, &fasta); err != nil {
		return nil, err
	}
	return &fasta, nil
}

// UpdateFasta replaces the mutable metadata of a FASTA database.
func UpdateFasta(ctx context.Context, httpClient *http.Client, baseURL, fastaID string, req types.UpdateFastaRequest) (*types.Fasta, error) {
	const op = "update fasta"
	if err := req.Validate(); err != nil {
		return nil, apierr.Validation(op, err)
	}
	var fasta types.Fasta
	url := fmt.Sprintf("%s/databases/%s", baseURL, fastaID)
	if err := doJSON(ctx, httpClient, op, http.MethodPut, url, req, &fasta); err != nil {
		return nil, err
	}
	return &fasta, nil
}

// DeleteFasta deletes a FASTA database by ID.
func DeleteFasta(ctx context.Context, httpClient *http.Client, baseURL, fastaID string) error {
	url := fmt.Sprintf("%s/databases/%s", baseURL, fastaID)
	return doJSON(ctx, httpClient, "delete fasta", http.MethodDelete, url, nil, nil)
}
