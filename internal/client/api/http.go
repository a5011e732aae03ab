package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resumatch/resumatch-cli/internal/client/models"
)

// HTTPClient implements Client over the backend's HTTP/JSON surface.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewHTTPClient builds a client for the API rooted at baseURL (e.g.
// "http://localhost:8000/api"). A zero timeout leaves the transport's
// default policy in place.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// detailBody is the error envelope the backend uses for every failure.
type detailBody struct {
	Detail string `json:"detail"`
}

// classify converts a non-2xx response into the package error taxonomy.
func classify(status int, body []byte) error {
	msg := ""
	var d detailBody
	if err := json.Unmarshal(body, &d); err == nil {
		msg = d.Detail
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed: %s", http.StatusText(status))
	}
	return &APIError{Status: status, Message: msg}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send executes a prepared request with the bearer header attached and
// decodes the response into out (when out is non-nil).
func (c *HTTPClient) send(req *http.Request, out any) error {
	if token, ok := c.tokens.Token(req.Context()); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classify(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	in := map[string]string{"email": email, "password": password}
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Signup(ctx context.Context, email, password, name string, role models.Role) (*AuthResult, error) {
	in := map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
		"role":     string(role),
	}
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/signup", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListJobs(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	if err := c.do(ctx, http.MethodGet, "/jobs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	var out models.Job
	if err := c.do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(jobID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateJob(ctx context.Context, job models.NewJob) (*models.Job, error) {
	var out models.Job
	if err := c.do(ctx, http.MethodPost, "/jobs", job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) MyJobs(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	if err := c.do(ctx, http.MethodGet, "/jobs/employer/my-jobs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListResumes(ctx context.Context) ([]models.Resume, error) {
	var out []models.Resume
	if err := c.do(ctx, http.MethodGet, "/resumes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UploadResume(ctx context.Context, filename string, content io.Reader) (*models.Resume, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/resumes/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out models.Resume
	if err := c.send(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListApplications(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := c.do(ctx, http.MethodGet, "/applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Apply(ctx context.Context, jobID string) (*models.Application, error) {
	in := map[string]string{"job_id": jobID}
	var out models.Application
	if err := c.do(ctx, http.MethodPost, "/applications", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
