package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/symbiosecorp/dashboard001/internal/domain/project"
	"github.com/symbiosecorp/dashboard001/internal/domain/session"
	"github.com/symbiosecorp/dashboard001/internal/repository"
)

// Service handles login, logout and role gating. The admin credential is a
// static shared secret compared verbatim; there is no hashing or rate
// limiting here, matching the single-user local scope of the dashboard.
type Service struct {
	projects      project.Repository
	sessions      session.Store
	adminPassword string
	logger        *slog.Logger
}

// NewService creates a new auth service.
func NewService(projects project.Repository, sessions session.Store, adminPassword string, logger *slog.Logger) *Service {
	return &Service{
		projects:      projects,
		sessions:      sessions,
		adminPassword: adminPassword,
		logger:        logger,
	}
}

// LoginAdmin validates the admin password and stores an admin session.
func (s *Service) LoginAdmin(ctx context.Context, password string) error {
	if password != s.adminPassword {
		return ErrInvalidCredentials
	}

	if err := s.sessions.Set(ctx, session.Admin()); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}

	s.logger.Info("admin logged in")
	return nil
}

// LoginClient validates the client id against the project collection and
// stores a client session bound to it. The matched project is returned so
// the client view can render without a second lookup.
func (s *Service) LoginClient(ctx context.Context, clientID string) (*project.Project, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrUnknownClient
	}

	proj, err := s.projects.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownClient
		}
		return nil, fmt.Errorf("looking up client: %w", err)
	}

	if err := s.sessions.Set(ctx, session.Client(clientID)); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}

	s.logger.Info("client logged in", "client_id", clientID)
	return proj, nil
}

// Logout clears the active session.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// RequireAdmin returns the active session if it holds the admin role.
// Views call this on entry and redirect to the login surface on error.
func (s *Service) RequireAdmin(ctx context.Context) (*session.Session, error) {
	sess, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.IsAdmin() {
		return nil, ErrWrongRole
	}
	return sess, nil
}

// RequireClient returns the active session if it holds the client role.
func (s *Service) RequireClient(ctx context.Context) (*session.Session, error) {
	sess, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.IsClient() {
		return nil, ErrWrongRole
	}
	return sess, nil
}

func (s *Service) current(ctx context.Context) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}
	return sess, nil
}
