package memstore

import (
	"context"
	"testing"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/require"
	"github.com/symbiosecorp/dashboard001/internal/domain/session"
	"github.com/symbiosecorp/dashboard001/internal/repository"
)

func TestSessionStore_FreshProcessHasNoSession(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionStore_SetReplacesUnconditionally(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, session.Admin()))
	sess, err := store.Get(ctx)
	require.NoError(t, err)
	require.True(t, sess.IsAdmin())

	require.NoError(t, store.Set(ctx, session.Client("CLI-003")))
	sess, err = store.Get(ctx)
	require.NoError(t, err)
	require.True(t, sess.IsClient())
	require.Equal(t, "CLI-003", sess.ClientID)
}

func TestSessionStore_Clear(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, session.Admin()))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Clearing an already empty store is fine.
	require.NoError(t, store.Clear(ctx))
}

func TestSessionStore_MalformedPayloadDegradesToNoSession(t *testing.T) {
	store := NewSessionStore()

	store.cache.Set(sessionKey, `{"role":`, cache.NoExpiration)

	_, err := store.Get(context.Background())
	require.ErrorIs(t, err, repository.ErrNotFound)
}
