package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/symbiosecorp/dashboard001/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name        string
	Description string
	ClientName  string
	ClientID    string
	Deadline    *time.Time
	Status      Status
	Notes       string
}

// UpdateRequest carries a full replacement record for an existing project.
// There is no partial merge: unchanged fields must be supplied too.
type UpdateRequest struct {
	ID string
	CreateRequest
}

// Create creates a new project with a generated id.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	status := req.Status
	if status == "" {
		status = StatusActive
	}

	proj := &Project{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ClientName:  req.ClientName,
		ClientID:    strings.TrimSpace(req.ClientID),
		Deadline:    req.Deadline,
		Status:      status,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}

	if err := proj.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Upsert(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "id", proj.ID, "client_id", proj.ClientID)
	return proj, nil
}

// Update replaces an existing project in place. The id and creation
// timestamp of the stored record are preserved.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Project, error) {
	existing, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}

	proj := &Project{
		ID:          existing.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ClientName:  req.ClientName,
		ClientID:    strings.TrimSpace(req.ClientID),
		Deadline:    req.Deadline,
		Status:      req.Status,
		Notes:       req.Notes,
		CreatedAt:   existing.CreatedAt,
	}

	if err := proj.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Upsert(ctx, proj); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	s.logger.Info("project updated", "id", proj.ID)
	return proj, nil
}

// Delete removes a project. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	s.logger.Info("project deleted", "id", id)
	return nil
}

// Get fetches a project by id.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// GetByClientID fetches the first project bound to a client identifier.
// Client id uniqueness is expected but not enforced, so on duplicates the
// earliest record in collection order wins.
func (s *Service) GetByClientID(ctx context.Context, clientID string) (*Project, error) {
	proj, err := s.repo.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project by client id: %w", err)
	}
	return proj, nil
}

// List returns the full collection in stored order.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}
