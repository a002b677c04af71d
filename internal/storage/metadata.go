package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dznutri/dznutri/internal/dbx"
)

// MetadataRepository is a durable key-value store for small client-local
// values (the bearer token and the serialized user object).
type MetadataRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// SQLiteMetadata implements MetadataRepository on the metadata table.
// It accepts a dbx.DBTX so it can participate in transactions.
type SQLiteMetadata struct {
	db dbx.DBTX
}

func NewSQLiteMetadata(db dbx.DBTX) *SQLiteMetadata {
	return &SQLiteMetadata{db: db}
}

// Get returns the stored value for key, or nil when the key is absent.
func (r *SQLiteMetadata) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteMetadata) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteMetadata) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteMetadata) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata`)
	if err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}
