package session

import "context"

// Store holds the single active session for this process. A fresh process
// starts with no session; the store never outlives the process.
type Store interface {
	Get(ctx context.Context) (*Session, error)
	Set(ctx context.Context, sess Session) error
	Clear(ctx context.Context) error
}
