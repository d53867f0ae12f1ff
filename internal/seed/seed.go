package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/symbiosecorp/dashboard001/internal/domain/project"
)

const day = 24 * time.Hour

// Seeder populates an empty repository with demo projects so a fresh
// install isn't an empty dashboard.
type Seeder struct {
	repo   project.Repository
	logger *slog.Logger
}

// NewSeeder creates a new Seeder.
func NewSeeder(repo project.Repository, logger *slog.Logger) *Seeder {
	return &Seeder{repo: repo, logger: logger}
}

// Fixtures returns the demo projects with deadlines relative to now. Two
// of them are already overdue so the red/expired paths show up on a fresh
// install.
func Fixtures(now time.Time) []project.Project {
	due := func(offset time.Duration) *time.Time {
		t := now.Add(offset)
		return &t
	}

	return []project.Project{
		{
			ID:          "proj-1",
			Name:        "Corporate Website Redesign",
			Description: "Full site refresh with new branding, design system and UX fixes.",
			ClientName:  "Carlos Mendoza",
			ClientID:    "CLI-001",
			Deadline:    due(2 * day),
			Status:      project.StatusActive,
			Notes:       "Delivery covers homepage, about, contact and three inner pages.",
			CreatedAt:   now,
		},
		{
			ID:          "proj-2",
			Name:        "Mobile Commerce App",
			Description: "iOS and Android storefront with cart, payments and push notifications.",
			ClientName:  "Sofia Ramirez",
			ClientID:    "CLI-002",
			Deadline:    due(18 * day),
			Status:      project.StatusActive,
			Notes:       "Sprint 1 done (auth, catalog). Sprint 2 in progress: cart and checkout.",
			CreatedAt:   now,
		},
		{
			ID:          "proj-3",
			Name:        "Invoicing Integration",
			Description: "Tax-authority integration for stamped invoices with automatic email delivery.",
			ClientName:  "Luis Torres",
			ClientID:    "CLI-003",
			Deadline:    due(5 * day),
			Status:      project.StatusActive,
			Notes:       "Pending fiscal validations; waiting on the client's updated certificate.",
			CreatedAt:   now,
		},
		{
			ID:          "proj-4",
			Name:        "Realtime Analytics Dashboard",
			Description: "Metrics panel with interactive charts, spreadsheet export and alerts.",
			ClientName:  "Ana Flores",
			ClientID:    "CLI-004",
			Deadline:    due(-1 * day),
			Status:      project.StatusActive,
			Notes:       "Urgent review required. Analytics API integration still pending.",
			CreatedAt:   now,
		},
		{
			ID:          "proj-5",
			Name:        "Online Course Platform",
			Description: "LMS with video streaming, assessments, certificates and progress tracking.",
			ClientName:  "Mariana Vega",
			ClientID:    "CLI-005",
			Deadline:    due(30 * day),
			Status:      project.StatusActive,
			Notes:       "First module content ready; waiting on client video recordings.",
			CreatedAt:   now,
		},
		{
			ID:          "proj-6",
			Name:        "Real Estate CRM",
			Description: "Client and property management with sales tracking and automatic reports.",
			ClientName:  "Roberto Salinas",
			ClientID:    "CLI-006",
			Deadline:    due(-12 * time.Hour),
			Status:      project.StatusActive,
			Notes:       "Final delivery. Push to production before 6pm.",
			CreatedAt:   now,
		},
	}
}

// Run seeds the repository if and only if it is empty, and reports how
// many projects were written. A non-empty collection is never touched.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing projects: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	seeded := 0
	for _, p := range Fixtures(time.Now()) {
		if err := s.repo.Upsert(ctx, &p); err != nil {
			return seeded, fmt.Errorf("seeding project %s: %w", p.ID, err)
		}
		seeded++
	}

	s.logger.Info("seeded demo projects", "count", seeded)
	return seeded, nil
}
