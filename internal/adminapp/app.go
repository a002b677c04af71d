// Package adminapp is the moderation client: review crowd submissions,
// triage reports, and correct product data.
package adminapp

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dznutri/dznutri/internal/api"
	"github.com/dznutri/dznutri/internal/config"
	"github.com/dznutri/dznutri/internal/logging"
	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
	"github.com/dznutri/dznutri/internal/services"
	"github.com/dznutri/dznutri/internal/session"
	"github.com/dznutri/dznutri/internal/storage"

	_ "modernc.org/sqlite"
)

type authService interface {
	LoginAdmin(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
}

type moderationService interface {
	Refresh(ctx context.Context, status string) ([]models.Submission, error)
	Submissions() []models.Submission
	Approve(ctx context.Context, id int64, edit *payload.ProductEdit) error
	Reject(ctx context.Context, id int64) error
	Counts(ctx context.Context) map[string]int
	Profile(ctx context.Context) (*models.User, error)
	Invalidate()
}

type reportsService interface {
	Refresh(ctx context.Context) ([]services.ReportView, error)
	Tab(t models.ReportType) []services.ReportView
	All() []services.ReportView
	SaveProduct(ctx context.Context, barcode string, edit *payload.ProductEdit) error
	Invalidate()
}

type sessionState interface {
	IsAuthenticated() bool
	IsAdmin() bool
	User() *models.User
}

type App struct {
	config     *config.Config
	logger     logging.Logger
	auth       authService
	moderation moderationService
	reports    reportsService
	session    sessionState
	reader     *bufio.Reader
	out        io.Writer
}

// NewApp wires the dependency chain the same way the scan client does; the
// two clients share the session store format, so an admin login from either
// binary is picked up by the other.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	sess := session.NewManager(db)
	if err := sess.Load(ctx); err != nil {
		return nil, err
	}

	client := api.NewHTTPClient(cfg.ServerEndpointAddr, cfg.RequestTimeout, sess, logger)

	return &App{
		config:     cfg,
		logger:     logger,
		auth:       services.NewAuth(client, sess, logger),
		moderation: services.NewModeration(client, logger),
		reports:    services.NewReports(client, logger),
		session:    sess,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated() && a.session.IsAdmin()
}
