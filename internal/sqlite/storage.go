package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/symbiosecorp/dashboard001/internal/repository"
)

// ReadKey returns the payload stored under key, or repository.ErrNotFound
// when the key has never been written.
func (db *DB) ReadKey(ctx context.Context, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM storage WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

// WriteKey replaces the payload stored under key. Last writer wins.
func (db *DB) WriteKey(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// DeleteKey removes a key. Deleting an unknown key is a no-op.
func (db *DB) DeleteKey(ctx context.Context, key string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM storage WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}
