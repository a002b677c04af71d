// Package scanapp is the consumer-facing command-line client: scan a
// barcode, read the score, browse history, maintain the health profile,
// and send corrections back to the backend.
package scanapp

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

// The app depends on the slices of the services it actually calls, so tests
// can run the command handlers against lightweight fakes.

type authService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	RegisterPushToken(ctx context.Context, token string)
}

type catalogService interface {
	Scan(ctx context.Context, barcode string) (*models.ProductResult, error)
	Report(ctx context.Context, report *models.ReportCreate) error
	Submit(ctx context.Context, form *payload.SubmissionForm) error
}

type historyService interface {
	Refresh(ctx context.Context) ([]models.HistoryEntry, error)
	Entries() []models.HistoryEntry
	Delete(ctx context.Context, ids ...int64) error
	Stats(ctx context.Context) (*models.HistoryStats, error)
	Invalidate()
}

type profileService interface {
	Load(ctx context.Context) (*models.HealthProfile, error)
	Save(ctx context.Context, profile *models.HealthProfile) (*models.HealthProfile, error)
}

type sessionState interface {
	IsAuthenticated() bool
	User() *models.User
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	auth    authService
	catalog catalogService
	history historyService
	profile profileService
	session sessionState
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the full dependency chain: local database, session manager,
// HTTP client, services. The stored session (if any) is restored before the
// first prompt.
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
		config:  cfg,
		logger:  logger,
		auth:    services.NewAuth(client, sess, logger),
		catalog: services.NewCatalog(client, logger),
		history: services.NewHistory(client, logger),
		profile: services.NewProfile(client, logger),
		session: sess,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
