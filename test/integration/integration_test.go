package integration_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/symbiosecorp/dashboard001/internal/domain/auth"
	"github.com/symbiosecorp/dashboard001/internal/domain/deadline"
	"github.com/symbiosecorp/dashboard001/internal/domain/project"
	"github.com/symbiosecorp/dashboard001/internal/memstore"
	"github.com/symbiosecorp/dashboard001/internal/seed"
	"github.com/symbiosecorp/dashboard001/internal/sqlite"
)

const adminPassword = "admin123"

type testEnv struct {
	db          *sqlite.DB
	projectRepo *sqlite.ProjectRepository
	sessions    *memstore.SessionStore

	projectSvc *project.Service
	authSvc    *auth.Service
	seeder     *seed.Seeder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	projectRepo := sqlite.NewProjectRepository(db)
	sessions := memstore.NewSessionStore()

	return &testEnv{
		db:          db,
		projectRepo: projectRepo,
		sessions:    sessions,
		projectSvc:  project.NewService(projectRepo, logger),
		authSvc:     auth.NewService(projectRepo, sessions, adminPassword, logger),
		seeder:      seed.NewSeeder(projectRepo, logger),
	}
}

// Fresh install: seed, log in as a demo client, read the countdown.
func TestClientCountdownFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	count, err := env.seeder.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 6, count)

	proj, err := env.authSvc.LoginClient(ctx, "CLI-001")
	require.NoError(t, err)
	require.NotNil(t, proj.Deadline)

	sess, err := env.authSvc.RequireClient(ctx)
	require.NoError(t, err)
	require.Equal(t, "CLI-001", sess.ClientID)

	// The fixture deadline is two days out: orange tier, live countdown.
	now := time.Now()
	require.Equal(t, deadline.TierOrange, deadline.TierFor(proj.Deadline, now))
	cd := deadline.Remaining(*proj.Deadline, now)
	require.False(t, cd.Expired)
	require.Equal(t, 1, cd.Days)

	// The overdue fixture shows the expired path.
	overdue, err := env.authSvc.LoginClient(ctx, "CLI-004")
	require.NoError(t, err)
	require.True(t, deadline.Remaining(*overdue.Deadline, time.Now()).Expired)
	require.Equal(t, deadline.TierRed, deadline.TierFor(overdue.Deadline, time.Now()))
}

// Admin logs in, creates, edits and deletes a project; the client bound to
// it can log in only while it exists.
func TestAdminCRUDFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.authSvc.LoginAdmin(ctx, adminPassword))
	_, err := env.authSvc.RequireAdmin(ctx)
	require.NoError(t, err)

	due := time.Now().Add(10 * 24 * time.Hour)
	created, err := env.projectSvc.Create(ctx, project.CreateRequest{
		Name:     "Booking Engine",
		ClientID: "CLI-100",
		Deadline: &due,
	})
	require.NoError(t, err)

	// The new client can now log in and sees a green tier.
	found, err := env.authSvc.LoginClient(ctx, "CLI-100")
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)
	require.Equal(t, deadline.TierGreen, deadline.TierFor(found.Deadline, time.Now()))

	// Full-record replacement keeps id and creation time.
	updated, err := env.projectSvc.Update(ctx, project.UpdateRequest{
		ID: created.ID,
		CreateRequest: project.CreateRequest{
			Name:     "Booking Engine v2",
			ClientID: "CLI-100",
			Deadline: &due,
			Status:   project.StatusPaused,
		},
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.True(t, updated.CreatedAt.Equal(created.CreatedAt), "creation time must survive updates")

	require.NoError(t, env.projectSvc.Delete(ctx, created.ID))
	_, err = env.authSvc.LoginClient(ctx, "CLI-100")
	require.ErrorIs(t, err, auth.ErrUnknownClient)
}

// Logging out drops the session; gated views then bounce to login.
func TestLogoutClearsSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.authSvc.LoginAdmin(ctx, adminPassword))
	require.NoError(t, env.authSvc.Logout(ctx))

	_, err := env.authSvc.RequireAdmin(ctx)
	require.ErrorIs(t, err, auth.ErrNotLoggedIn)
}
