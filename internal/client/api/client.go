// Package api is the client's only gateway to the ResuMatch backend. It
// attaches the stored bearer credential to outgoing requests and classifies
// every failure into one of three shapes: ErrUnavailable (transport),
// ErrUnauthorized (rejected credential) or *APIError (anything else,
// carrying the server's message).
//
// The package never clears credentials on a 401 — that decision belongs to
// the session controller.
package api

import (
	"context"
	"io"

	"github.com/resumatch/resumatch-cli/internal/client/models"
)

// TokenSource yields the current bearer credential, if any. When ok is
// false the request goes out without an Authorization header (login and
// signup are public endpoints).
type TokenSource interface {
	Token(ctx context.Context) (token string, ok bool)
}

// AuthResult is the payload of a successful login or signup.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Client is the remote API surface the rest of the client consumes.
type Client interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, email, password, name string, role models.Role) (*AuthResult, error)
	Me(ctx context.Context) (*models.User, error)

	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, jobID string) (*models.Job, error)
	CreateJob(ctx context.Context, job models.NewJob) (*models.Job, error)
	MyJobs(ctx context.Context) ([]models.Job, error)

	ListResumes(ctx context.Context) ([]models.Resume, error)
	UploadResume(ctx context.Context, filename string, content io.Reader) (*models.Resume, error)

	ListApplications(ctx context.Context) ([]models.Application, error)
	Apply(ctx context.Context, jobID string) (*models.Application, error)
}
