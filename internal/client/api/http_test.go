package api

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumatch/resumatch-cli/internal/client/models"
	"github.com/resumatch/resumatch-cli/internal/fakeapi"
)

// staticToken is a TokenSource yielding a fixed token; empty means none.
type staticToken struct{ token string }

func (s *staticToken) Token(context.Context) (string, bool) {
	return s.token, s.token != ""
}

func newTestClient(t *testing.T, srv *fakeapi.Server, token string) *HTTPClient {
	t.Helper()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return NewHTTPClient(ts.URL+"/api", &staticToken{token: token}, 5*time.Second)
}

func TestLoginSuccess(t *testing.T) {
	srv := fakeapi.New()
	srv.SeedUser("ann@example.org", "pw", "Ann", models.RoleJobSeeker)
	c := newTestClient(t, srv, "")

	res, err := c.Login(context.Background(), "ann@example.org", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Ann", res.User.Name)
	assert.Equal(t, models.RoleJobSeeker, res.User.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := fakeapi.New()
	srv.SeedUser("ann@example.org", "pw", "Ann", models.RoleJobSeeker)
	c := newTestClient(t, srv, "")

	_, err := c.Login(context.Background(), "ann@example.org", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", ErrorMessage(err))
}

func TestSignupDuplicateEmail(t *testing.T) {
	srv := fakeapi.New()
	srv.SeedUser("ann@example.org", "pw", "Ann", models.RoleJobSeeker)
	c := newTestClient(t, srv, "")

	_, err := c.Signup(context.Background(), "ann@example.org", "pw", "Ann", models.RoleJobSeeker)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Email already exists", apiErr.Message)
}

func TestMeRequiresToken(t *testing.T) {
	srv := fakeapi.New()
	c := newTestClient(t, srv, "")

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMeWithValidToken(t *testing.T) {
	srv := fakeapi.New()
	id := srv.SeedUser("ann@example.org", "pw", "Ann", models.RoleJobSeeker)
	c := newTestClient(t, srv, srv.TokenFor(id))

	u, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "ann@example.org", u.Email)
}

func TestNetworkFailureClassifiedUnavailable(t *testing.T) {
	ts := httptest.NewServer(fakeapi.New().Handler())
	url := ts.URL
	ts.Close() // nothing is listening anymore

	c := NewHTTPClient(url+"/api", &staticToken{}, time.Second)
	_, err := c.ListJobs(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetJobNotFound(t *testing.T) {
	srv := fakeapi.New()
	id := srv.SeedUser("ann@example.org", "pw", "Ann", models.RoleJobSeeker)
	c := newTestClient(t, srv, srv.TokenFor(id))

	_, err := c.GetJob(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Job not found", apiErr.Message)
}

func TestCreateJobRejectedForSeeker(t *testing.T) {
	srv := fakeapi.New()
	id := srv.SeedUser("ann@example.org", "pw", "Ann", models.RoleJobSeeker)
	c := newTestClient(t, srv, srv.TokenFor(id))

	_, err := c.CreateJob(context.Background(), models.NewJob{Title: "X"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Status)
}

func TestCreateAndListMyJobs(t *testing.T) {
	srv := fakeapi.New()
	id := srv.SeedUser("hr@corp.example", "pw", "HR", models.RoleEmployer)
	c := newTestClient(t, srv, srv.TokenFor(id))
	ctx := context.Background()

	created, err := c.CreateJob(ctx, models.NewJob{
		Title:        "Engineer",
		Company:      "Acme",
		Location:     "NY",
		JobType:      "Full-time",
		Description:  "Build things.",
		Requirements: []string{"Go"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	mine, err := c.MyJobs(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)
}

func TestApplyAndDuplicate(t *testing.T) {
	srv := fakeapi.New()
	id := srv.SeedUser("ann@example.org", "pw", "Ann", models.RoleJobSeeker)
	jobID := srv.SeedJob(models.Job{Title: "Engineer", Company: "Acme"})
	c := newTestClient(t, srv, srv.TokenFor(id))
	ctx := context.Background()

	app, err := c.Apply(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, jobID, app.JobID)

	_, err = c.Apply(ctx, jobID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Already applied to this job", apiErr.Message)

	apps, err := c.ListApplications(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, 1, "duplicate rejection must not create a second application")
}

func TestUploadResume(t *testing.T) {
	srv := fakeapi.New()
	id := srv.SeedUser("ann@example.org", "pw", "Ann", models.RoleJobSeeker)
	c := newTestClient(t, srv, srv.TokenFor(id))
	ctx := context.Background()

	resume, err := c.UploadResume(ctx, "cv.pdf", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", resume.Filename)

	resumes, err := c.ListResumes(ctx)
	require.NoError(t, err)
	require.Len(t, resumes, 1)
	assert.Equal(t, "cv.pdf", resumes[0].Filename)
}

func TestUploadResumeServerRejectsUnsupportedType(t *testing.T) {
	srv := fakeapi.New()
	id := srv.SeedUser("ann@example.org", "pw", "Ann", models.RoleJobSeeker)
	c := newTestClient(t, srv, srv.TokenFor(id))

	_, err := c.UploadResume(context.Background(), "cv.txt", strings.NewReader("plain"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unsupported file type", apiErr.Message)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"api error uses server detail", &APIError{Status: 400, Message: "Title is required"}, "Title is required"},
		{"unavailable uses fixed phrase", ErrUnavailable, "Network error. Please try again."},
		{"wrapped unavailable", errorsJoin(ErrUnavailable), "Network error. Please try again."},
		{"other error passes through", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

func errorsJoin(err error) error {
	return &wrapped{err}
}

type wrapped struct{ inner error }

func (w *wrapped) Error() string { return "wrapped: " + w.inner.Error() }
func (w *wrapped) Unwrap() error { return w.inner }
