package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/resumatch/resumatch-cli/internal/client/api"
	"github.com/resumatch/resumatch-cli/internal/client/credentials"
	"github.com/resumatch/resumatch-cli/internal/client/models"
	"github.com/resumatch/resumatch-cli/internal/client/output"
	"github.com/resumatch/resumatch-cli/internal/client/router"
	"github.com/resumatch/resumatch-cli/internal/client/services"
	"github.com/resumatch/resumatch-cli/internal/client/session"
	"github.com/resumatch/resumatch-cli/internal/fakeapi"
	"github.com/resumatch/resumatch-cli/internal/logging"
)

// liveApp is an App wired against a real in-process backend, a real HTTP
// client and a real on-disk credential store.
type liveApp struct {
	*App
	out    *bytes.Buffer
	errOut *bytes.Buffer

	srv      *fakeapi.Server
	store    *credentials.SQLiteStore
	requests *atomic.Int64
}

func newLiveApp(t *testing.T) *liveApp {
	t.Helper()

	srv := fakeapi.New()
	var requests atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		srv.Handler().ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	store, err := credentials.Open(context.Background(), filepath.Join(t.TempDir(), "credentials.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	client := api.NewHTTPClient(ts.URL+"/api", store, 5*time.Second)
	log := logging.NewTextLogger(io.Discard, slog.LevelError)

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	a := &App{
		api:     client,
		session: session.NewController(client, store, log),
		catalog: services.NewCatalogService(client, log),
		printer: output.NewPrinterWithWriters(out, errOut, false),
		store:   store,
		log:     log,
		reader:  bufio.NewReader(strings.NewReader("")),
	}

	return &liveApp{
		App:      a,
		out:      out,
		errOut:   errOut,
		srv:      srv,
		store:    store,
		requests: &requests,
	}
}

func TestStartup_NoStoredTokenMakesNoRequests(t *testing.T) {
	la := newLiveApp(t)

	s := la.session.Resolve(context.Background())

	if s.Phase != session.PhaseUnauthenticated {
		t.Fatalf("phase = %s, want unauthenticated", s.Phase)
	}
	if got := la.requests.Load(); got != 0 {
		t.Fatalf("requests during cold resolve = %d, want 0", got)
	}
}

func TestStartup_StoredTokenResolvesIdentity(t *testing.T) {
	la := newLiveApp(t)
	id := la.srv.SeedUser("alice@example.org", "secret", "Alice", models.RoleJobSeeker)
	if err := la.store.Save(context.Background(), la.srv.TokenFor(id)); err != nil {
		t.Fatalf("save token: %v", err)
	}

	s := la.session.Resolve(context.Background())

	if s.Phase != session.PhaseAuthenticated {
		t.Fatalf("phase = %s, want authenticated", s.Phase)
	}
	if s.User == nil || s.User.Email != "alice@example.org" {
		t.Fatalf("resolved user: %+v", s.User)
	}

	// a logged-in user asking for the auth view is bounced to their home
	d := router.Decide(s, router.ViewAuth)
	if d.Action != router.Redirect || d.Target != router.ViewDashboard {
		t.Fatalf("auth decision = %+v", d)
	}
}

func TestStartup_RejectedTokenIsCleared(t *testing.T) {
	la := newLiveApp(t)
	if err := la.store.Save(context.Background(), "not-a-real-token"); err != nil {
		t.Fatalf("save token: %v", err)
	}

	s := la.session.Resolve(context.Background())

	if s.Phase != session.PhaseUnauthenticated {
		t.Fatalf("phase = %s, want unauthenticated", s.Phase)
	}
	if _, ok, err := la.store.Load(context.Background()); err != nil || ok {
		t.Fatalf("stale token not cleared: ok=%v err=%v", ok, err)
	}
}

func TestEndToEnd_LoginBrowseApply(t *testing.T) {
	la := newLiveApp(t)
	la.srv.SeedUser("alice@example.org", "secret", "Alice", models.RoleJobSeeker)
	j1 := la.srv.SeedJob(models.Job{Title: "Backend Engineer", Company: "Acme", Location: "Riga"})
	j2 := la.srv.SeedJob(models.Job{Title: "SRE", Company: "Acme", Location: "Riga"})

	ctx := context.Background()
	la.session.Resolve(ctx)

	stubInputs(t, "secret", "alice@example.org")
	if err := la.Login(ctx); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if !strings.Contains(la.out.String(), "Login successful!") {
		t.Fatalf("login did not succeed: %s\n%s", la.out.String(), la.errOut.String())
	}

	// apply to the first posting
	la.out.Reset()
	if err := la.Apply(ctx, j1); err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	if !strings.Contains(la.out.String(), "Application submitted successfully!") {
		t.Fatalf("first application failed: %s\n%s", la.out.String(), la.errOut.String())
	}

	// the posting now reads as applied; the second one does not
	la.out.Reset()
	if err := la.Job(ctx, j1); err != nil {
		t.Fatalf("Job err: %v", err)
	}
	if !strings.Contains(strings.ToLower(la.out.String()), "already applied") {
		t.Fatalf("applied state not shown: %s", la.out.String())
	}

	la.out.Reset()
	if err := la.Job(ctx, j2); err != nil {
		t.Fatalf("Job err: %v", err)
	}
	if !strings.Contains(la.out.String(), "apply "+j2) {
		t.Fatalf("apply hint missing for fresh posting: %s", la.out.String())
	}

	// a second attempt is stopped locally and nothing reaches the server twice
	la.out.Reset()
	if err := la.Apply(ctx, j1); err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	if !strings.Contains(la.out.String(), "You have already applied to this job.") {
		t.Fatalf("duplicate not detected: %s", la.out.String())
	}
	apps, err := la.api.ListApplications(ctx)
	if err != nil {
		t.Fatalf("ListApplications err: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("applications on server = %d, want 1", len(apps))
	}
}

func TestEndToEnd_TokenSurvivesRestart(t *testing.T) {
	la := newLiveApp(t)
	id := la.srv.SeedUser("emp@example.org", "secret", "Emp", models.RoleEmployer)
	token := la.srv.TokenFor(id)

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.db")

	first, err := credentials.Open(ctx, path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := first.Save(ctx, token); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// a fresh process sees the credential and resolves straight to the role
	second, err := credentials.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer second.Close()

	ts := httptest.NewServer(la.srv.Handler())
	defer ts.Close()
	client := api.NewHTTPClient(ts.URL+"/api", second, 5*time.Second)
	log := logging.NewTextLogger(io.Discard, slog.LevelError)

	s := session.NewController(client, second, log).Resolve(ctx)
	if s.Phase != session.PhaseAuthenticated || s.User.Role != models.RoleEmployer {
		t.Fatalf("restart resolve: %+v", s)
	}
	if got := router.HomeFor(s.User.Role); got != router.ViewEmployer {
		t.Fatalf("home = %s, want %s", got, router.ViewEmployer)
	}
}
