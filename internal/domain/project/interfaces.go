package project

import "context"

// Repository provides persistence for the project collection.
type Repository interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (*Project, error)
	GetByClientID(ctx context.Context, clientID string) (*Project, error)
	Upsert(ctx context.Context, proj *Project) error
	Remove(ctx context.Context, id string) error
}
