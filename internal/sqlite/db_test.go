package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symbiosecorp/dashboard001/internal/repository"
)

func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestStorage_ReadWriteDelete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ReadKey(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, db.WriteKey(ctx, "k", "v1"))
	value, err := db.ReadKey(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v1", value)

	// Second write replaces, last writer wins.
	require.NoError(t, db.WriteKey(ctx, "k", "v2"))
	value, err = db.ReadKey(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v2", value)

	require.NoError(t, db.DeleteKey(ctx, "k"))
	_, err = db.ReadKey(ctx, "k")
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Deleting again is a no-op.
	require.NoError(t, db.DeleteKey(ctx, "k"))
}
