package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var s models.Session
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login", credentials{Email: email, Password: password}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoginAdmin uses the backend's form-encoded admin endpoint. The field is
// named username on the wire even though the value is an email address.
func (c *HTTPClient) LoginAdmin(ctx context.Context, username, password string) (*models.Session, error) {
	form := payload.AdminLoginForm(username, password)
	var s models.Session
	if err := c.do(ctx, http.MethodPost, "/auth/login-admin", "application/x-www-form-urlencoded", strings.NewReader(form), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Register creates an account and, like Login, returns a ready session.
func (c *HTTPClient) Register(ctx context.Context, email, password string) (*models.Session, error) {
	var s models.Session
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/register", credentials{Email: email, Password: password}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.sendJSON(ctx, http.MethodPost, "/auth/forgot-password", body, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}{Token: token, NewPassword: newPassword}
	return c.sendJSON(ctx, http.MethodPost, "/auth/reset-password", body, nil)
}

// RegisterPushToken uploads the device push token. The wire field keeps the
// backend's expo_push_token name.
func (c *HTTPClient) RegisterPushToken(ctx context.Context, token string) error {
	body := struct {
		ExpoPushToken string `json:"expo_push_token"`
	}{ExpoPushToken: token}
	return c.sendJSON(ctx, http.MethodPost, "/api/me/push-token", body, nil)
}
