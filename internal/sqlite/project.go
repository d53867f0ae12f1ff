package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/symbiosecorp/dashboard001/internal/domain/project"
	"github.com/symbiosecorp/dashboard001/internal/repository"
)

// projectsKey is the storage key holding the whole project collection as
// one JSON array, matching the original dashboard's durable layout.
const projectsKey = "dashboard_projects"

// ProjectRepository implements project.Repository over a single
// keyed JSON array. The collection is read fully, edited in memory and
// written back whole; there is no per-record row and no concurrent-writer
// protection beyond last-write-wins.
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns the full collection in stored order. A missing or malformed
// payload degrades to an empty collection, never an error.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	raw, err := r.db.ReadKey(ctx, projectsKey)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read project collection: %w", err)
	}

	var projects []project.Project
	if err := json.Unmarshal([]byte(raw), &projects); err != nil {
		// Corrupt persisted data is treated as no data.
		return nil, nil
	}
	return projects, nil
}

// Get returns the first project with the given id.
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByClientID returns the first project bound to the given client id.
// Duplicate client ids are not rejected; the earliest record wins.
func (r *ProjectRepository) GetByClientID(ctx context.Context, clientID string) (*project.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].ClientID == clientID {
			return &projects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// Upsert replaces the record with the same id in place, preserving its
// position, or appends a new record at the end.
func (r *ProjectRepository) Upsert(ctx context.Context, proj *project.Project) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range projects {
		if projects[i].ID == proj.ID {
			projects[i] = *proj
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append(projects, *proj)
	}

	return r.save(ctx, projects)
}

// Remove filters the record out and persists the result. Removing an
// unknown id is a no-op.
func (r *ProjectRepository) Remove(ctx context.Context, id string) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	return r.save(ctx, kept)
}

func (r *ProjectRepository) save(ctx context.Context, projects []project.Project) error {
	if projects == nil {
		projects = []project.Project{}
	}

	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to encode project collection: %w", err)
	}

	if err := r.db.WriteKey(ctx, projectsKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist project collection: %w", err)
	}
	return nil
}
