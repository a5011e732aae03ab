// Package cli is the terminal shell of the ResuMatch client. Every view the
// web frontend had is a command here, and every navigation goes through the
// role router against the current session snapshot.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/resumatch/resumatch-cli/internal/client/api"
	"github.com/resumatch/resumatch-cli/internal/client/config"
	"github.com/resumatch/resumatch-cli/internal/client/credentials"
	"github.com/resumatch/resumatch-cli/internal/client/output"
	"github.com/resumatch/resumatch-cli/internal/client/router"
	"github.com/resumatch/resumatch-cli/internal/client/services"
	"github.com/resumatch/resumatch-cli/internal/client/session"
	"github.com/resumatch/resumatch-cli/internal/logging"
)

type App struct {
	config  *config.Config
	api     api.Client
	session *session.Controller
	catalog *services.CatalogService
	printer *output.Printer
	store   *credentials.SQLiteStore
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	if dir := filepath.Dir(c.CredentialsPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating credentials dir: %w", err)
		}
	}
	store, err := credentials.Open(ctx, c.CredentialsPath)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, store, c.RequestTimeout)

	return &App{
		config:  c,
		api:     apiClient,
		session: session.NewController(apiClient, store, log),
		catalog: services.NewCatalogService(apiClient, log),
		printer: output.NewPrinter(),
		store:   store,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run resolves the session once and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	s := a.session.Resolve(ctx)
	if s.Phase == session.PhaseAuthenticated {
		a.printer.Noticef("Welcome back, %s", s.User.Name)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Phase == session.PhaseAuthenticated
}

// allowed routes a view request through the role router. It returns true
// when the requested view may render; a redirect renders its target here.
// Starting a navigation abandons whatever the previous view had in flight.
func (a *App) allowed(ctx context.Context, view string) (bool, error) {
	a.catalog.Invalidate()

	d := router.Decide(a.session.Snapshot(), view)
	switch d.Action {
	case router.ShowLoading:
		a.printer.Noticef("Loading...")
		return false, nil
	case router.Redirect:
		if d.Target == router.ViewAuth {
			a.printer.Noticef("Please log in first (try 'login' or 'signup').")
			return false, nil
		}
		return false, a.render(ctx, d.Target)
	default:
		return true, nil
	}
}

// Navigate requests a view and renders the router's decision.
func (a *App) Navigate(ctx context.Context, view string) error {
	ok, err := a.allowed(ctx, view)
	if !ok || err != nil {
		return err
	}
	return a.render(ctx, view)
}

// Home goes to the role-appropriate home, or the landing page when logged out.
func (a *App) Home(ctx context.Context) error {
	s := a.session.Snapshot()
	if s.Phase == session.PhaseAuthenticated {
		return a.Navigate(ctx, router.HomeFor(s.User.Role))
	}
	return a.Navigate(ctx, router.ViewLanding)
}

// Jobs shows the listings view, optionally filtered by query.
func (a *App) Jobs(ctx context.Context, query string) error {
	ok, err := a.allowed(ctx, router.ViewJobs)
	if !ok || err != nil {
		return err
	}
	return a.Listings(ctx, query)
}

// Job shows one posting.
func (a *App) Job(ctx context.Context, jobID string) error {
	ok, err := a.allowed(ctx, router.ViewJobs+"/"+jobID)
	if !ok || err != nil {
		return err
	}
	return a.JobDetail(ctx, jobID)
}

// render shows a routable view. Callers must go through navigate.
func (a *App) render(ctx context.Context, view string) error {
	switch {
	case view == router.ViewLanding:
		return a.Landing(ctx)
	case view == router.ViewAuth:
		return a.AuthMenu(ctx)
	case view == router.ViewDashboard:
		return a.Dashboard(ctx)
	case view == router.ViewEmployer:
		return a.Employer(ctx)
	case view == router.ViewJobs:
		return a.Listings(ctx, "")
	default:
		// "/jobs/<id>"
		return a.JobDetail(ctx, view[len(router.ViewJobs)+1:])
	}
}

// Landing is the public view: a short banner plus session-aware hints.
func (a *App) Landing(ctx context.Context) error {
	a.printer.Noticef("ResuMatch — match your resume to the right job.")
	if s := a.session.Snapshot(); s.Phase == session.PhaseAuthenticated {
		a.printer.Noticef("Logged in as %s (%s). Try 'home' or 'jobs'.", s.User.Name, s.User.Role)
	} else {
		a.printer.Noticef("Try 'login' or 'signup' to get started.")
	}
	return nil
}

// AuthMenu is rendered when an unauthenticated user lands on /auth.
func (a *App) AuthMenu(context.Context) error {
	a.printer.Noticef("Use 'login' to sign in or 'signup' to create an account.")
	return nil
}
