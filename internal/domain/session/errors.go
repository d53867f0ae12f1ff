package session

import "errors"

var (
	// ErrInvalidSession indicates a session payload that doesn't match the
	// tagged-union shape.
	ErrInvalidSession = errors.New("invalid session")
)
