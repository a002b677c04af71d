// Package session manages the client's authenticated session: one bearer
// token plus the user object it was issued for. Both survive process
// restarts via the local metadata store and are destroyed together on
// logout or on any unauthorized response.
//
// The manager is injected into the HTTP transport and the apps; nothing
// reads the token from ambient storage directly.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dznutri/dznutri/internal/dbx"
	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/storage"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Manager holds the current session in memory and mirrors it to the local
// metadata store. Safe for concurrent use.
type Manager struct {
	db *sql.DB

	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// Load restores a previously persisted session, if any. Called once at
// startup.
func (m *Manager) Load(ctx context.Context) error {
	repo := storage.NewSQLiteMetadata(m.db)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("failed to load session token: %w", err)
	}

	var user *models.User
	raw, err := repo.Get(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("failed to load session user: %w", err)
	}
	if len(raw) > 0 {
		user = &models.User{}
		if err := json.Unmarshal(raw, user); err != nil {
			return fmt.Errorf("failed to decode session user: %w", err)
		}
	}

	m.mu.Lock()
	m.token = string(token)
	m.user = user
	m.mu.Unlock()
	return nil
}

// Save persists a new session. Token and user are written in a single
// transaction so a crash cannot leave one without the other.
func (m *Manager) Save(ctx context.Context, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	err = dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteMetadata(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, raw)
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.mu.Unlock()
	return nil
}

// Clear destroys the session, in memory and on disk. Used both for logout
// and for the global unauthorized path.
func (m *Manager) Clear(ctx context.Context) error {
	repo := storage.NewSQLiteMetadata(m.db)
	if err := repo.Clear(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
	return nil
}

// Token returns the current bearer token, or "" when unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns the user the session belongs to, or nil.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// IsAuthenticated reports whether a usable token is present. A token whose
// exp claim has passed counts as absent: the backend would reject it anyway,
// so callers go straight to the login screen instead of burning a request.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != "" && !tokenExpired(m.token)
}

// IsAdmin reports whether the session user has moderation rights.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.IsAdmin
}

// tokenExpired decodes the token without verifying its signature (the
// client has no signing key; the backend stays the authority) and checks
// the exp claim. Opaque or claim-less tokens are treated as live.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
