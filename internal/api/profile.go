package api

import (
	"context"
	"net/http"

	"github.com/dznutri/dznutri/internal/models"
)

func (c *HTTPClient) Profile(ctx context.Context) (*models.HealthProfile, error) {
	var p models.HealthProfile
	if err := c.getJSON(ctx, "/profile", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile saves the profile and returns the server's copy, which
// includes the recomputed daily calorie and protein targets. Callers replace
// their local profile wholesale with the returned one.
func (c *HTTPClient) UpdateProfile(ctx context.Context, profile *models.HealthProfile) (*models.HealthProfile, error) {
	var p models.HealthProfile
	if err := c.sendJSON(ctx, http.MethodPut, "/profile", profile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
