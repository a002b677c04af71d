// Package services holds the screen-facing use cases of both apps. Each
// service composes the backend client with the reconciliation layer and the
// session manager; the apps only call services, never the client directly.
package services

import (
	"context"

	"github.com/dznutri/dznutri/internal/models"
)

// SessionWriter is the slice of the session manager the services mutate.
type SessionWriter interface {
	Save(ctx context.Context, token string, user *models.User) error
	Clear(ctx context.Context) error
}
