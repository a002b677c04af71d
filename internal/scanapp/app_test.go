package scanapp

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
)

type fakeAuth struct {
	loginFn      func(ctx context.Context, email, password string) (*models.User, error)
	registerFn   func(ctx context.Context, email, password string) (*models.User, error)
	logoutFn     func(ctx context.Context) error
	forgotFn     func(ctx context.Context, email string) error
	resetFn      func(ctx context.Context, token, newPassword string) error
	pushedTokens []string
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.User, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuth) Register(ctx context.Context, email, password string) (*models.User, error) {
	return f.registerFn(ctx, email, password)
}

func (f *fakeAuth) Logout(ctx context.Context) error { return f.logoutFn(ctx) }

func (f *fakeAuth) ForgotPassword(ctx context.Context, email string) error {
	return f.forgotFn(ctx, email)
}

func (f *fakeAuth) ResetPassword(ctx context.Context, token, newPassword string) error {
	return f.resetFn(ctx, token, newPassword)
}

func (f *fakeAuth) RegisterPushToken(ctx context.Context, token string) {
	f.pushedTokens = append(f.pushedTokens, token)
}

type fakeCatalog struct {
	scanFn   func(ctx context.Context, barcode string) (*models.ProductResult, error)
	reportFn func(ctx context.Context, report *models.ReportCreate) error
	submitFn func(ctx context.Context, form *payload.SubmissionForm) error
}

func (f *fakeCatalog) Scan(ctx context.Context, barcode string) (*models.ProductResult, error) {
	return f.scanFn(ctx, barcode)
}

func (f *fakeCatalog) Report(ctx context.Context, report *models.ReportCreate) error {
	return f.reportFn(ctx, report)
}

func (f *fakeCatalog) Submit(ctx context.Context, form *payload.SubmissionForm) error {
	return f.submitFn(ctx, form)
}

type fakeHistory struct {
	refreshFn func(ctx context.Context) ([]models.HistoryEntry, error)
	entriesFn func() []models.HistoryEntry
	deleteFn  func(ctx context.Context, ids ...int64) error
	statsFn   func(ctx context.Context) (*models.HistoryStats, error)
}

func (f *fakeHistory) Refresh(ctx context.Context) ([]models.HistoryEntry, error) {
	return f.refreshFn(ctx)
}

func (f *fakeHistory) Entries() []models.HistoryEntry { return f.entriesFn() }

func (f *fakeHistory) Delete(ctx context.Context, ids ...int64) error {
	return f.deleteFn(ctx, ids...)
}

func (f *fakeHistory) Stats(ctx context.Context) (*models.HistoryStats, error) {
	return f.statsFn(ctx)
}

func (f *fakeHistory) Invalidate() {}

type fakeProfile struct {
	loadFn func(ctx context.Context) (*models.HealthProfile, error)
	saveFn func(ctx context.Context, p *models.HealthProfile) (*models.HealthProfile, error)
}

func (f *fakeProfile) Load(ctx context.Context) (*models.HealthProfile, error) {
	return f.loadFn(ctx)
}

func (f *fakeProfile) Save(ctx context.Context, p *models.HealthProfile) (*models.HealthProfile, error) {
	return f.saveFn(ctx, p)
}

type fakeSessionState struct {
	user *models.User
}

func (f *fakeSessionState) IsAuthenticated() bool { return f.user != nil }
func (f *fakeSessionState) User() *models.User    { return f.user }

// testApp builds an App with fakes, scripted stdin lines, and a captured
// output buffer.
func testApp(input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
		session: &fakeSessionState{},
	}, out
}

// swapInput replaces the interactive input seams for one test and returns a
// restore func.
func swapInput(lines []string, password string) func() {
	origText := getSimpleText
	origPassword := getPassword
	origMultiline := getMultiline

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
	getMultiline = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}

	return func() {
		getSimpleText = origText
		getPassword = origPassword
		getMultiline = origMultiline
	}
}
