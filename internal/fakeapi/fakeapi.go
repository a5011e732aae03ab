// Package fakeapi is an in-memory stand-in for the ResuMatch backend, used
// by integration-style tests. It reproduces the consumed surface faithfully:
// bearer-token auth, `{"detail": ...}` error bodies, the duplicate-application
// rejection, and the role check on job posting.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/resumatch/resumatch-cli/internal/client/models"
)

type userRecord struct {
	user     models.User
	password string
}

// Server holds the in-memory state behind the HTTP handler. All fields are
// guarded by mu; tests hit the handler from multiple goroutines.
type Server struct {
	secret []byte

	mu           sync.Mutex
	users        map[string]*userRecord // keyed by email
	usersByID    map[string]*userRecord
	jobs         []models.Job
	resumes      map[string][]models.Resume      // keyed by user id
	applications map[string][]models.Application // keyed by user id
}

func New() *Server {
	return &Server{
		secret:       []byte("fakeapi-secret"),
		users:        make(map[string]*userRecord),
		usersByID:    make(map[string]*userRecord),
		resumes:      make(map[string][]models.Resume),
		applications: make(map[string][]models.Application),
	}
}

// Handler returns the router, rooted at /api like the real backend.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", s.signup)
		r.Post("/auth/login", s.login)
		r.Get("/auth/me", s.me)

		r.Get("/jobs", s.listJobs)
		r.Get("/jobs/employer/my-jobs", s.myJobs)
		r.Get("/jobs/{jobID}", s.getJob)
		r.Post("/jobs", s.createJob)

		r.Get("/resumes", s.listResumes)
		r.Post("/resumes/upload", s.uploadResume)

		r.Get("/applications", s.listApplications)
		r.Post("/applications", s.apply)
	})
	return r
}

// SeedUser registers an account directly and returns its id.
func (s *Server) SeedUser(email, password, name string, role models.Role) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := &userRecord{
		user: models.User{
			ID:    uuid.NewString(),
			Email: email,
			Name:  name,
			Role:  role,
		},
		password: password,
	}
	s.users[email] = rec
	s.usersByID[rec.user.ID] = rec
	return rec.user.ID
}

// SeedJob inserts a posting directly and returns its id.
func (s *Server) SeedJob(job models.Job) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	s.jobs = append(s.jobs, job)
	return job.ID
}

// SeedApplication records an existing application for a user.
func (s *Server) SeedApplication(userID, jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[userID] = append(s.applications[userID], models.Application{
		ID:     uuid.NewString(),
		JobID:  jobID,
		Status: "submitted",
	})
}

// TokenFor mints a valid bearer token for the given user id.
func (s *Server) TokenFor(userID string) string {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return token
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// authenticate resolves the bearer token to a user, or writes a 401.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		writeDetail(w, http.StatusUnauthorized, "Missing authorization header")
		return nil, false
	}

	tok, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		writeDetail(w, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}

	sub, err := tok.Claims.GetSubject()
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}

	s.mu.Lock()
	rec, ok := s.usersByID[sub]
	s.mu.Unlock()
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "User not found")
		return nil, false
	}
	u := rec.user
	return &u, true
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Name     string      `json:"name"`
		Role     models.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	_, exists := s.users[in.Email]
	s.mu.Unlock()
	if exists {
		writeDetail(w, http.StatusBadRequest, "Email already exists")
		return
	}

	id := s.SeedUser(in.Email, in.Password, in.Name, in.Role)
	s.mu.Lock()
	user := s.usersByID[id].user
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"token": s.TokenFor(id), "user": user})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	rec, ok := s.users[in.Email]
	s.mu.Unlock()
	if !ok || rec.password != in.Password {
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"token": s.TokenFor(rec.user.ID), "user": rec.user})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	s.mu.Lock()
	jobs := append([]models.Job(nil), s.jobs...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) getJob(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	jobID := chi.URLParam(r, "jobID")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.ID == jobID {
			writeJSON(w, http.StatusOK, j)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Job not found")
}

func (s *Server) createJob(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if user.Role != models.RoleEmployer {
		writeDetail(w, http.StatusForbidden, "Only employers can post jobs")
		return
	}

	var in models.NewJob
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Title == "" {
		writeDetail(w, http.StatusBadRequest, "Title is required")
		return
	}

	job := models.Job{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Company:      in.Company,
		Location:     in.Location,
		JobType:      in.JobType,
		Description:  in.Description,
		Requirements: in.Requirements,
		SalaryRange:  in.SalaryRange,
		Status:       "active",
		EmployerID:   user.ID,
	}

	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, job)
}

func (s *Server) myJobs(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	mine := make([]models.Job, 0)
	for _, j := range s.jobs {
		if j.EmployerID == user.ID {
			mine = append(mine, j)
		}
	}
	writeJSON(w, http.StatusOK, mine)
}

func (s *Server) listResumes(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	resumes := append([]models.Resume(nil), s.resumes[user.ID]...)
	s.mu.Unlock()
	if resumes == nil {
		resumes = []models.Resume{}
	}
	writeJSON(w, http.StatusOK, resumes)
}

func (s *Server) uploadResume(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".docx" {
		writeDetail(w, http.StatusBadRequest, "Unsupported file type")
		return
	}

	resume := models.Resume{ID: uuid.NewString(), Filename: header.Filename}
	s.mu.Lock()
	s.resumes[user.ID] = append(s.resumes[user.ID], resume)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resume)
}

func (s *Server) listApplications(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	apps := append([]models.Application(nil), s.applications[user.ID]...)
	s.mu.Unlock()
	if apps == nil {
		apps = []models.Application{}
	}
	writeJSON(w, http.StatusOK, apps)
}

func (s *Server) apply(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var in struct {
		JobID string `json:"job_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, j := range s.jobs {
		if j.ID == in.JobID {
			found = true
			break
		}
	}
	if !found {
		writeDetail(w, http.StatusNotFound, "Job not found")
		return
	}

	for _, a := range s.applications[user.ID] {
		if a.JobID == in.JobID {
			writeDetail(w, http.StatusBadRequest, "Already applied to this job")
			return
		}
	}

	app := models.Application{ID: uuid.NewString(), JobID: in.JobID, Status: "submitted"}
	s.applications[user.ID] = append(s.applications[user.ID], app)
	writeJSON(w, http.StatusOK, app)
}
