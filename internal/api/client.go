// Package api is the HTTP client for the DZnutri backend. It owns request
// construction, bearer-token attachment, and the error taxonomy; callers
// only ever see typed results or one of the sentinel errors.
package api

import (
	"context"

	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
)

// Client is the full backend surface consumed by the two apps. Services
// depend on this interface so tests can substitute fakes.
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (*models.Session, error)
	LoginAdmin(ctx context.Context, username, password string) (*models.Session, error)
	Register(ctx context.Context, email, password string) (*models.Session, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	RegisterPushToken(ctx context.Context, token string) error

	// Products.
	Product(ctx context.Context, barcode string) (*models.ProductResult, error)
	UpdateProduct(ctx context.Context, barcode string, edit *payload.ProductEdit) error
	CreateSubmission(ctx context.Context, form *payload.SubmissionForm) error

	// Moderation.
	Submissions(ctx context.Context, status string) (*models.SubmissionList, error)
	ApproveSubmission(ctx context.Context, id int64, edit *payload.ProductEdit) error
	RejectSubmission(ctx context.Context, id int64) error
	AdminProfile(ctx context.Context) (*models.User, error)

	// Reports.
	Reports(ctx context.Context) ([]models.Report, error)
	CreateReport(ctx context.Context, report *models.ReportCreate) error

	// History.
	History(ctx context.Context) ([]models.HistoryEntry, error)
	SaveHistory(ctx context.Context, productID int64) error
	DeleteHistory(ctx context.Context, id int64) error
	HistoryStats(ctx context.Context) (*models.HistoryStats, error)

	// Profile.
	Profile(ctx context.Context) (*models.HealthProfile, error)
	UpdateProfile(ctx context.Context, profile *models.HealthProfile) (*models.HealthProfile, error)
}
