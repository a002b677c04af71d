package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/dznutri/dznutri/internal/api"
	"github.com/dznutri/dznutri/internal/logging"
	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient lets each test override just the calls it cares about. An
// unset func panics so tests fail loudly on unexpected calls.
type fakeClient struct {
	loginFn             func(ctx context.Context, email, password string) (*models.Session, error)
	loginAdminFn        func(ctx context.Context, username, password string) (*models.Session, error)
	registerFn          func(ctx context.Context, email, password string) (*models.Session, error)
	forgotPasswordFn    func(ctx context.Context, email string) error
	resetPasswordFn     func(ctx context.Context, token, newPassword string) error
	registerPushFn      func(ctx context.Context, token string) error
	productFn           func(ctx context.Context, barcode string) (*models.ProductResult, error)
	updateProductFn     func(ctx context.Context, barcode string, edit *payload.ProductEdit) error
	createSubmissionFn  func(ctx context.Context, form *payload.SubmissionForm) error
	submissionsFn       func(ctx context.Context, status string) (*models.SubmissionList, error)
	approveSubmissionFn func(ctx context.Context, id int64, edit *payload.ProductEdit) error
	rejectSubmissionFn  func(ctx context.Context, id int64) error
	adminProfileFn      func(ctx context.Context) (*models.User, error)
	reportsFn           func(ctx context.Context) ([]models.Report, error)
	createReportFn      func(ctx context.Context, report *models.ReportCreate) error
	historyFn           func(ctx context.Context) ([]models.HistoryEntry, error)
	saveHistoryFn       func(ctx context.Context, productID int64) error
	deleteHistoryFn     func(ctx context.Context, id int64) error
	historyStatsFn      func(ctx context.Context) (*models.HistoryStats, error)
	profileFn           func(ctx context.Context) (*models.HealthProfile, error)
	updateProfileFn     func(ctx context.Context, p *models.HealthProfile) (*models.HealthProfile, error)
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeClient) LoginAdmin(ctx context.Context, username, password string) (*models.Session, error) {
	return f.loginAdminFn(ctx, username, password)
}

func (f *fakeClient) Register(ctx context.Context, email, password string) (*models.Session, error) {
	return f.registerFn(ctx, email, password)
}

func (f *fakeClient) ForgotPassword(ctx context.Context, email string) error {
	return f.forgotPasswordFn(ctx, email)
}

func (f *fakeClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	return f.resetPasswordFn(ctx, token, newPassword)
}

func (f *fakeClient) RegisterPushToken(ctx context.Context, token string) error {
	return f.registerPushFn(ctx, token)
}

func (f *fakeClient) Product(ctx context.Context, barcode string) (*models.ProductResult, error) {
	return f.productFn(ctx, barcode)
}

func (f *fakeClient) UpdateProduct(ctx context.Context, barcode string, edit *payload.ProductEdit) error {
	return f.updateProductFn(ctx, barcode, edit)
}

func (f *fakeClient) CreateSubmission(ctx context.Context, form *payload.SubmissionForm) error {
	return f.createSubmissionFn(ctx, form)
}

func (f *fakeClient) Submissions(ctx context.Context, status string) (*models.SubmissionList, error) {
	return f.submissionsFn(ctx, status)
}

func (f *fakeClient) ApproveSubmission(ctx context.Context, id int64, edit *payload.ProductEdit) error {
	return f.approveSubmissionFn(ctx, id, edit)
}

func (f *fakeClient) RejectSubmission(ctx context.Context, id int64) error {
	return f.rejectSubmissionFn(ctx, id)
}

func (f *fakeClient) AdminProfile(ctx context.Context) (*models.User, error) {
	return f.adminProfileFn(ctx)
}

func (f *fakeClient) Reports(ctx context.Context) ([]models.Report, error) {
	return f.reportsFn(ctx)
}

func (f *fakeClient) CreateReport(ctx context.Context, report *models.ReportCreate) error {
	return f.createReportFn(ctx, report)
}

func (f *fakeClient) History(ctx context.Context) ([]models.HistoryEntry, error) {
	return f.historyFn(ctx)
}

func (f *fakeClient) SaveHistory(ctx context.Context, productID int64) error {
	return f.saveHistoryFn(ctx, productID)
}

func (f *fakeClient) DeleteHistory(ctx context.Context, id int64) error {
	return f.deleteHistoryFn(ctx, id)
}

func (f *fakeClient) HistoryStats(ctx context.Context) (*models.HistoryStats, error) {
	return f.historyStatsFn(ctx)
}

func (f *fakeClient) Profile(ctx context.Context) (*models.HealthProfile, error) {
	return f.profileFn(ctx)
}

func (f *fakeClient) UpdateProfile(ctx context.Context, p *models.HealthProfile) (*models.HealthProfile, error) {
	return f.updateProfileFn(ctx, p)
}

// fakeSessionWriter records Save/Clear calls.
type fakeSessionWriter struct {
	mu      sync.Mutex
	token   string
	user    *models.User
	saved   int
	cleared int
}

func (s *fakeSessionWriter) Save(ctx context.Context, token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	s.saved++
	return nil
}

func (s *fakeSessionWriter) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.cleared++
	return nil
}
