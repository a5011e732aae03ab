// Package router centralizes every role/auth redirect rule in one pure
// function, instead of scattering conditionals across views. Decide is
// re-evaluated on every navigation and holds no state of its own.
package router

import (
	"strings"

	"github.com/resumatch/resumatch-cli/internal/client/models"
	"github.com/resumatch/resumatch-cli/internal/client/session"
)

// Well-known views.
const (
	ViewLanding   = "/"
	ViewAuth      = "/auth"
	ViewDashboard = "/dashboard"
	ViewEmployer  = "/employer"
	ViewJobs      = "/jobs"
)

// Action says what the shell should do with a navigation request.
type Action int

const (
	// ShowLoading renders a neutral placeholder; the session is still
	// resolving and nothing is routable yet.
	ShowLoading Action = iota
	// Render shows the requested view.
	Render
	// Redirect navigates to Decision.Target instead.
	Redirect
)

// Decision is the outcome of a navigation request.
type Decision struct {
	Action Action
	Target string
}

// HomeFor maps a role to its landing view after authentication.
func HomeFor(role models.Role) string {
	if role == models.RoleEmployer {
		return ViewEmployer
	}
	return ViewDashboard
}

// restrictedTo returns the role a view is reserved for, if any.
func restrictedTo(view string) (models.Role, bool) {
	switch view {
	case ViewDashboard:
		return models.RoleJobSeeker, true
	case ViewEmployer:
		return models.RoleEmployer, true
	}
	return "", false
}

// Decide applies the routing rules, in order:
//
//  1. while Initializing, show the loading placeholder;
//  2. the landing view always renders;
//  3. any other view while Unauthenticated redirects to /auth
//     (/auth itself renders — that is where the user logs in);
//  4. a role-restricted view under the wrong role redirects to the
//     current user's home;
//  5. /auth while already Authenticated redirects to the user's home.
//
// Job detail views are addressed as "/jobs/<id>" and share the /jobs rules.
func Decide(s session.Snapshot, view string) Decision {
	if s.Phase == session.PhaseInitializing {
		return Decision{Action: ShowLoading}
	}

	if view == ViewLanding {
		return Decision{Action: Render, Target: view}
	}

	if s.Phase == session.PhaseUnauthenticated {
		if view == ViewAuth {
			return Decision{Action: Render, Target: view}
		}
		return Decision{Action: Redirect, Target: ViewAuth}
	}

	// authenticated from here on
	home := HomeFor(s.User.Role)

	if view == ViewAuth {
		return Decision{Action: Redirect, Target: home}
	}

	if role, ok := restrictedTo(normalize(view)); ok && s.User.Role != role {
		return Decision{Action: Redirect, Target: home}
	}

	return Decision{Action: Render, Target: view}
}

// normalize strips a trailing segment so "/jobs/j1" matches the "/jobs"
// rules. Role-restricted views have no sub-paths today.
func normalize(view string) string {
	if strings.HasPrefix(view, ViewJobs+"/") {
		return ViewJobs
	}
	return view
}
