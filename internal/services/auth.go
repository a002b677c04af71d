package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dznutri/dznutri/internal/api"
	"github.com/dznutri/dznutri/internal/logging"
	"github.com/dznutri/dznutri/internal/models"
)

// ErrInvalidCredentials is returned when the backend rejected the login
// itself, as opposed to being unreachable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotAdmin is returned when a valid account without moderator rights
// tries the admin login.
var ErrNotAdmin = errors.New("account has no admin rights")

// Auth owns the login/logout lifecycle. On success the session is persisted
// before the call returns, so a crash right after login does not lose it.
type Auth struct {
	client  api.Client
	session SessionWriter
	logger  logging.Logger
}

func NewAuth(client api.Client, session SessionWriter, logger logging.Logger) *Auth {
	return &Auth{client: client, session: session, logger: logger}
}

func (a *Auth) Login(ctx context.Context, email, password string) (*models.User, error) {
	s, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, loginError(err)
	}
	return a.install(ctx, s)
}

// LoginAdmin authenticates against the admin endpoint and additionally
// requires the account to be a moderator. A non-admin session is never
// persisted.
func (a *Auth) LoginAdmin(ctx context.Context, username, password string) (*models.User, error) {
	s, err := a.client.LoginAdmin(ctx, username, password)
	if err != nil {
		return nil, loginError(err)
	}
	if s.User == nil || !s.User.IsAdmin {
		return nil, ErrNotAdmin
	}
	return a.install(ctx, s)
}

func (a *Auth) Register(ctx context.Context, email, password string) (*models.User, error) {
	s, err := a.client.Register(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return a.install(ctx, s)
}

func (a *Auth) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	return a.client.ForgotPassword(ctx, email)
}

func (a *Auth) ResetPassword(ctx context.Context, token, newPassword string) error {
	return a.client.ResetPassword(ctx, token, newPassword)
}

// RegisterPushToken is fire-and-forget from the caller's perspective; a
// failure is logged but never blocks login.
func (a *Auth) RegisterPushToken(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := a.client.RegisterPushToken(ctx, token); err != nil {
		a.logger.Warn(ctx, "failed to register push token", "error", err)
	}
}

func (a *Auth) install(ctx context.Context, s *models.Session) (*models.User, error) {
	if err := a.session.Save(ctx, s.Token, s.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return s.User, nil
}

// loginError translates the transport's 401 into a credentials failure so
// the login screen can tell "wrong password" apart from "server down".
func loginError(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return ErrInvalidCredentials
	}
	return err
}
