package memstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/patrickmn/go-cache"
	"github.com/symbiosecorp/dashboard001/internal/domain/session"
	"github.com/symbiosecorp/dashboard001/internal/repository"
)

// sessionKey mirrors the original dashboard's session storage key.
const sessionKey = "dashboard_session"

// SessionStore keeps the single active session in process memory as a
// keyed JSON blob. It is scoped to the process lifetime: a fresh process
// always starts logged out.
type SessionStore struct {
	cache *cache.Cache
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{cache: cache.New(cache.NoExpiration, 0)}
}

// Get returns the active session, or repository.ErrNotFound when none is
// set. A malformed payload degrades to no session.
func (s *SessionStore) Get(_ context.Context) (*session.Session, error) {
	raw, ok := s.cache.Get(sessionKey)
	if !ok {
		return nil, repository.ErrNotFound
	}

	payload, ok := raw.(string)
	if !ok {
		return nil, repository.ErrNotFound
	}

	var sess session.Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return nil, repository.ErrNotFound
	}
	return &sess, nil
}

// Set replaces the active session unconditionally.
func (s *SessionStore) Set(_ context.Context, sess session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	s.cache.Set(sessionKey, string(data), cache.NoExpiration)
	return nil
}

// Clear removes the active session.
func (s *SessionStore) Clear(_ context.Context) error {
	s.cache.Delete(sessionKey)
	return nil
}
