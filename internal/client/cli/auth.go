package cli

import (
	"context"
	"os"

	"github.com/resumatch/resumatch-cli/internal/client/api"
	"github.com/resumatch/resumatch-cli/internal/client/models"
	"github.com/resumatch/resumatch-cli/internal/client/router"
	"github.com/resumatch/resumatch-cli/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// alreadyAuthenticated handles the /auth-while-logged-in redirect: when the
// router bounces the auth view, the user's home is rendered instead and true
// is returned.
func (a *App) alreadyAuthenticated(ctx context.Context) bool {
	d := router.Decide(a.session.Snapshot(), router.ViewAuth)
	if d.Action != router.Redirect {
		return false
	}
	a.printer.Noticef("Already logged in.")
	if err := a.render(ctx, d.Target); err != nil {
		a.printer.Errorf("%s", api.ErrorMessage(err))
	}
	return true
}

// Login prompts for credentials, authenticates against the server and, on
// success, adopts the issued token and navigates to the role home. A failed
// attempt prints the server's message and leaves the user at the prompt.
func (a *App) Login(ctx context.Context) error {
	if a.alreadyAuthenticated(ctx) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.printer.Errorf("%s", api.ErrorMessage(err))
		return nil
	}

	if err := a.session.Login(ctx, res.Token, res.User); err != nil {
		a.printer.Errorf("could not store credentials: %v", err)
		return nil
	}

	a.printer.Successf("Login successful!")
	return a.Navigate(ctx, router.HomeFor(res.User.Role))
}

// Signup collects the account fields, registers, and logs straight in with
// the returned token, mirroring the original sign-up flow.
func (a *App) Signup(ctx context.Context) error {
	if a.alreadyAuthenticated(ctx) {
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	roleInput, err := getSimpleText(a.reader, "Account type: job_seeker or employer", os.Stdout)
	if err != nil {
		return err
	}
	role := models.Role(roleInput)
	if role != models.RoleJobSeeker && role != models.RoleEmployer {
		a.printer.Errorf("account type must be job_seeker or employer")
		return nil
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.api.Signup(ctx, email, password, name, role)
	if err != nil {
		a.printer.Errorf("%s", api.ErrorMessage(err))
		return nil
	}

	if err := a.session.Login(ctx, res.Token, res.User); err != nil {
		a.printer.Errorf("could not store credentials: %v", err)
		return nil
	}

	a.printer.Successf("Account created successfully!")
	return a.Navigate(ctx, router.HomeFor(res.User.Role))
}

// Logout drops the session and the stored token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.printer.Noticef("Logged out.")
	return nil
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(context.Context) error {
	s := a.session.Snapshot()
	if s.Phase != session.PhaseAuthenticated {
		a.printer.Noticef("Not logged in.")
		return nil
	}
	a.printer.Noticef("%s <%s> (%s)", s.User.Name, s.User.Email, s.User.Role)
	return nil
}
