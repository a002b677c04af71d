package services

import (
	"context"

	"github.com/dznutri/dznutri/internal/api"
	"github.com/dznutri/dznutri/internal/logging"
	"github.com/dznutri/dznutri/internal/models"
)

// Profile reads and saves the user's health profile. The server owns the
// derived daily targets, so Save always replaces the local copy wholesale
// with the response.
type Profile struct {
	client api.Client
	logger logging.Logger
}

func NewProfile(client api.Client, logger logging.Logger) *Profile {
	return &Profile{client: client, logger: logger}
}

func (p *Profile) Load(ctx context.Context) (*models.HealthProfile, error) {
	return p.client.Profile(ctx)
}

// Save uploads the profile and returns the server's copy with the
// recomputed daily calorie and protein targets.
func (p *Profile) Save(ctx context.Context, profile *models.HealthProfile) (*models.HealthProfile, error) {
	return p.client.UpdateProfile(ctx, profile)
}
