package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chaparral-bio/chaparral-go/internal/types"
)

// GetProfile retrieves the user profile behind the token.
func GetProfile(ctx context.Context, httpClient *http.Client, baseURL string) (*types.Profile, error) {
	var profile types.Profile
	url := fmt.Sprintf("%s/profile", baseURL)
	if err := getJSON(ctx, httpClient, "get profile", url, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
