package adminapp

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
	"github.com/dznutri/dznutri/internal/services"
)

type fakeAuth struct {
	loginAdminFn func(ctx context.Context, username, password string) (*models.User, error)
	logoutFn     func(ctx context.Context) error
}

func (f *fakeAuth) LoginAdmin(ctx context.Context, username, password string) (*models.User, error) {
	return f.loginAdminFn(ctx, username, password)
}

func (f *fakeAuth) Logout(ctx context.Context) error { return f.logoutFn(ctx) }

type fakeModeration struct {
	refreshFn     func(ctx context.Context, status string) ([]models.Submission, error)
	submissionsFn func() []models.Submission
	approveFn     func(ctx context.Context, id int64, edit *payload.ProductEdit) error
	rejectFn      func(ctx context.Context, id int64) error
	countsFn      func(ctx context.Context) map[string]int
	profileFn     func(ctx context.Context) (*models.User, error)
}

func (f *fakeModeration) Refresh(ctx context.Context, status string) ([]models.Submission, error) {
	return f.refreshFn(ctx, status)
}

func (f *fakeModeration) Submissions() []models.Submission { return f.submissionsFn() }

func (f *fakeModeration) Approve(ctx context.Context, id int64, edit *payload.ProductEdit) error {
	return f.approveFn(ctx, id, edit)
}

func (f *fakeModeration) Reject(ctx context.Context, id int64) error { return f.rejectFn(ctx, id) }

func (f *fakeModeration) Counts(ctx context.Context) map[string]int { return f.countsFn(ctx) }

func (f *fakeModeration) Profile(ctx context.Context) (*models.User, error) {
	return f.profileFn(ctx)
}

func (f *fakeModeration) Invalidate() {}

type fakeReports struct {
	refreshFn     func(ctx context.Context) ([]services.ReportView, error)
	tabFn         func(t models.ReportType) []services.ReportView
	allFn         func() []services.ReportView
	saveProductFn func(ctx context.Context, barcode string, edit *payload.ProductEdit) error
}

func (f *fakeReports) Refresh(ctx context.Context) ([]services.ReportView, error) {
	return f.refreshFn(ctx)
}

func (f *fakeReports) Tab(t models.ReportType) []services.ReportView { return f.tabFn(t) }

func (f *fakeReports) All() []services.ReportView { return f.allFn() }

func (f *fakeReports) SaveProduct(ctx context.Context, barcode string, edit *payload.ProductEdit) error {
	return f.saveProductFn(ctx, barcode, edit)
}

func (f *fakeReports) Invalidate() {}

type fakeSessionState struct {
	user *models.User
}

func (f *fakeSessionState) IsAuthenticated() bool { return f.user != nil }
func (f *fakeSessionState) IsAdmin() bool         { return f.user != nil && f.user.IsAdmin }
func (f *fakeSessionState) User() *models.User    { return f.user }

func testApp() (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     out,
		session: &fakeSessionState{},
	}, out
}

func swapInput(lines []string, password string) func() {
	origText := getSimpleText
	origPassword := getPassword

	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}

	return func() {
		getSimpleText = origText
		getPassword = origPassword
	}
}
