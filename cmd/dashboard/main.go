package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/symbiosecorp/dashboard001/internal/config"
	"github.com/symbiosecorp/dashboard001/internal/domain/auth"
	"github.com/symbiosecorp/dashboard001/internal/domain/deadline"
	"github.com/symbiosecorp/dashboard001/internal/domain/project"
	"github.com/symbiosecorp/dashboard001/internal/memstore"
	"github.com/symbiosecorp/dashboard001/internal/seed"
	"github.com/symbiosecorp/dashboard001/internal/sqlite"
)

func main() {
	cmd := &cli.Command{
		Name:  "dashboard",
		Usage: "Local project deadline dashboard with an admin view and per-client countdowns",
		Commands: []*cli.Command{
			adminCommand(),
			clientCommand(),
			seedCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the wired services. A process owns exactly one in-memory
// session and its own view of the durable store.
type app struct {
	db       *sqlite.DB
	projects *project.Service
	auth     *auth.Service
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	repo := sqlite.NewProjectRepository(db)
	sessions := memstore.NewSessionStore()

	// First run on an empty store gets the demo fixtures, like the
	// original's mount-time seeding.
	if _, err := seed.NewSeeder(repo, logger).Run(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding: %w", err)
	}

	return &app{
		db:       db,
		projects: project.NewService(repo, logger),
		auth:     auth.NewService(repo, sessions, cfg.Admin.Password, logger),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func adminCommand() *cli.Command {
	passwordFlag := &cli.StringFlag{
		Name:    "password",
		Aliases: []string{"p"},
		Usage:   "Admin password",
		Sources: cli.EnvVars("DASHBOARD_PASSWORD"),
	}

	formFlags := []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "Project name"},
		&cli.StringFlag{Name: "description", Usage: "Project description"},
		&cli.StringFlag{Name: "client-name", Usage: "Client display name"},
		&cli.StringFlag{Name: "client-id", Usage: "Client identifier used for client login"},
		&cli.StringFlag{Name: "deadline", Usage: "Deadline (RFC 3339 or YYYY-MM-DD)"},
		&cli.StringFlag{Name: "status", Usage: "Project status (active, completed, paused)", Value: "active"},
		&cli.StringFlag{Name: "notes", Usage: "Free-form notes"},
	}

	return &cli.Command{
		Name:  "admin",
		Usage: "Manage the project list (requires the admin password)",
		Flags: []cli.Flag{passwordFlag},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all projects with urgency tiers",
				Action: withAdmin(runAdminList),
			},
			{
				Name:   "add",
				Usage:  "Create a project",
				Flags:  formFlags,
				Action: withAdmin(runAdminAdd),
			},
			{
				Name:   "edit",
				Usage:  "Replace a project record (all fields must be supplied)",
				Flags:  append([]cli.Flag{&cli.StringFlag{Name: "id", Usage: "Project id", Required: true}}, formFlags...),
				Action: withAdmin(runAdminEdit),
			},
			{
				Name:  "rm",
				Usage: "Delete a project",
				Flags: []cli.Flag{&cli.StringFlag{Name: "id", Usage: "Project id", Required: true}},
				Action: withAdmin(func(ctx context.Context, cmd *cli.Command, a *app) error {
					return a.projects.Delete(ctx, cmd.String("id"))
				}),
			},
		},
	}
}

// withAdmin wires the login/gate/logout bracket around an admin action,
// the way the admin page checks the session on entry.
func withAdmin(fn func(ctx context.Context, cmd *cli.Command, a *app) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.auth.LoginAdmin(ctx, cmd.String("password")); err != nil {
			return err
		}
		defer a.auth.Logout(ctx)

		if _, err := a.auth.RequireAdmin(ctx); err != nil {
			return err
		}

		return fn(ctx, cmd, a)
	}
}

func runAdminList(ctx context.Context, _ *cli.Command, a *app) error {
	projects, err := a.projects.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLIENT\tDEADLINE\tTIER\tSTATUS")
	for _, p := range projects {
		due := "-"
		if p.Deadline != nil {
			due = p.Deadline.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s (%s)\t%s\t%s\t%s\n",
			p.ID, p.Name, p.ClientName, p.ClientID, due, deadline.TierFor(p.Deadline, now), p.Status)
	}
	return w.Flush()
}

func runAdminAdd(ctx context.Context, cmd *cli.Command, a *app) error {
	req, err := formRequest(cmd)
	if err != nil {
		return err
	}

	proj, err := a.projects.Create(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("created %s\n", proj.ID)
	return nil
}

func runAdminEdit(ctx context.Context, cmd *cli.Command, a *app) error {
	req, err := formRequest(cmd)
	if err != nil {
		return err
	}

	proj, err := a.projects.Update(ctx, project.UpdateRequest{
		ID:            cmd.String("id"),
		CreateRequest: req,
	})
	if err != nil {
		return err
	}

	fmt.Printf("updated %s\n", proj.ID)
	return nil
}

func formRequest(cmd *cli.Command) (project.CreateRequest, error) {
	due, err := parseDeadline(cmd.String("deadline"))
	if err != nil {
		return project.CreateRequest{}, err
	}

	return project.CreateRequest{
		Name:        cmd.String("name"),
		Description: cmd.String("description"),
		ClientName:  cmd.String("client-name"),
		ClientID:    cmd.String("client-id"),
		Deadline:    due,
		Status:      project.Status(cmd.String("status")),
		Notes:       cmd.String("notes"),
	}, nil
}

func parseDeadline(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized deadline %q", raw)
}

func clientCommand() *cli.Command {
	return &cli.Command{
		Name:      "client",
		Usage:     "Show the live countdown for one client's project",
		ArgsUsage: "<client-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			proj, err := a.auth.LoginClient(ctx, cmd.Args().First())
			if err != nil {
				return err
			}
			defer a.auth.Logout(ctx)

			sess, err := a.auth.RequireClient(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%s / %s (%s)\n", proj.Name, proj.ClientName, sess.ClientID)
			if proj.Deadline == nil {
				fmt.Println("no deadline set")
				return nil
			}

			// The ticker lives exactly as long as this view: SIGINT or
			// SIGTERM cancels the context and tears it down.
			tickCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			deadline.Tick(tickCtx, time.Second, func(now time.Time) {
				cd := deadline.Remaining(*proj.Deadline, now)
				if cd.Expired {
					fmt.Printf("\rdeadline passed                        \n")
					stop()
					return
				}
				fmt.Printf("\r%dd %02dh %02dm %02ds remaining [%s] ",
					cd.Days, cd.Hours, cd.Minutes, cd.Seconds, deadline.Classify(*proj.Deadline, now))
			})
			fmt.Println()
			return nil
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Populate an empty store with demo projects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// newApp already seeds when the store is empty; this command
			// just reports the outcome explicitly.
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			projects, err := a.projects.List(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("store has %d projects\n", len(projects))
			return nil
		},
	}
}
