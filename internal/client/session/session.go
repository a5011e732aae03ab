// Package session owns the client's belief about who is logged in.
//
// Contract:
//   - Resolve: one identity resolution per process; turns a stored token
//     into a user record or tears the stale token down.
//   - Login: adopt a freshly issued token and its resolved user.
//   - Logout: drop token and user unconditionally, no server call.
//   - Snapshot: the current phase and user, for routing decisions.
//
// The invariant Phase == Authenticated ⇔ User != nil holds after every
// transition. All mutation happens on the REPL goroutine.
package session

import (
	"context"

	"github.com/resumatch/resumatch-cli/internal/client/api"
	"github.com/resumatch/resumatch-cli/internal/client/credentials"
	"github.com/resumatch/resumatch-cli/internal/client/models"
	"github.com/resumatch/resumatch-cli/internal/logging"
)

// Phase is the session readiness state.
type Phase string

const (
	// PhaseInitializing means startup resolution has not finished; nothing
	// is routable yet.
	PhaseInitializing Phase = "initializing"
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseAuthenticated   Phase = "authenticated"
)

// Snapshot is an immutable view of the session at one point in time.
// Routing decisions are made against a Snapshot, never against live state.
type Snapshot struct {
	Phase Phase
	User  *models.User
}

// Controller drives the session state machine.
type Controller struct {
	api   api.Client
	store credentials.Store
	log   logging.Logger

	phase    Phase
	user     *models.User
	resolved bool
}

func NewController(apiClient api.Client, store credentials.Store, log logging.Logger) *Controller {
	return &Controller{
		api:   apiClient,
		store: store,
		log:   log,
		phase: PhaseInitializing,
	}
}

// Snapshot returns the current phase and user. The user pointer is shared
// and must be treated as read-only.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Phase: c.phase, User: c.user}
}

// Resolve performs the startup identity resolution and returns the resulting
// snapshot. With no stored token it settles on Unauthenticated without any
// network call. With a token it asks /auth/me; on any failure — rejection or
// network — the token is cleared and the session is Unauthenticated. "Not
// logged in" is an expected steady state, so failures here are logged, never
// surfaced as errors.
//
// Subsequent calls are no-ops: exactly one resolution happens per process.
func (c *Controller) Resolve(ctx context.Context) Snapshot {
	if c.resolved {
		return c.Snapshot()
	}
	c.resolved = true

	token, ok, err := c.store.Load(ctx)
	if err != nil {
		c.log.Warn(ctx, "credential load failed", "error", err)
		c.phase = PhaseUnauthenticated
		return c.Snapshot()
	}
	if !ok {
		c.phase = PhaseUnauthenticated
		return c.Snapshot()
	}
	_ = token // attached by the transport's token source

	user, err := c.api.Me(ctx)
	if err != nil {
		c.log.Debug(ctx, "identity resolution failed, clearing credential", "error", err)
		if clearErr := c.store.Clear(ctx); clearErr != nil {
			c.log.Warn(ctx, "credential clear failed", "error", clearErr)
		}
		c.phase = PhaseUnauthenticated
		return c.Snapshot()
	}

	c.user = user
	c.phase = PhaseAuthenticated
	c.log.Info(ctx, "session resolved", "user", user.Email, "role", user.Role)
	return c.Snapshot()
}

// Login adopts a token and user the caller obtained from a successful
// login or signup call. No server round-trip happens here.
func (c *Controller) Login(ctx context.Context, token string, user models.User) error {
	if err := c.store.Save(ctx, token); err != nil {
		return err
	}
	u := user
	c.user = &u
	c.phase = PhaseAuthenticated
	return nil
}

// Logout clears the credential and the in-memory user. The in-memory state
// is dropped even when the store fails to clear; the error is still returned
// so the caller can report it.
func (c *Controller) Logout(ctx context.Context) error {
	c.user = nil
	c.phase = PhaseUnauthenticated
	return c.store.Clear(ctx)
}
