package auth

import "errors"

var (
	// ErrInvalidCredentials indicates a wrong admin password.
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	// ErrUnknownClient indicates a client id with no matching project.
	ErrUnknownClient = errors.New("unknown client id")
	// ErrNotLoggedIn indicates no active session.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrWrongRole indicates a session that doesn't match the entered view.
	ErrWrongRole = errors.New("wrong role for this view")
)
