// Package services orchestrates the per-view data loading: each view's
// collections are fetched concurrently, failures stay per-collection, and a
// generation counter drops results that arrive after the view moved on.
package services

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/resumatch/resumatch-cli/internal/client/api"
	"github.com/resumatch/resumatch-cli/internal/client/models"
	"github.com/resumatch/resumatch-cli/internal/logging"
)

// CatalogService fetches view-scoped collections. Nothing is cached across
// views; every load replaces its collections wholesale.
type CatalogService struct {
	api api.Client
	log logging.Logger

	// generation is bumped by every load and by Invalidate. A load whose
	// generation is no longer current throws its result away, so a view
	// that was left before its fetches settled never applies stale state.
	generation atomic.Int64
}

func NewCatalogService(apiClient api.Client, log logging.Logger) *CatalogService {
	return &CatalogService{api: apiClient, log: log}
}

// Invalidate marks every in-flight load stale. Called when a view is left.
func (s *CatalogService) Invalidate() {
	s.generation.Add(1)
}

// current reports whether a load started at generation gen may still apply.
func (s *CatalogService) current(gen int64) bool {
	return s.generation.Load() == gen
}

// DashboardData is the job seeker dashboard's view state. Each collection
// carries its own error; a failed fetch never blocks the others.
type DashboardData struct {
	Resumes      []models.Resume
	Jobs         []models.Job
	Applications []models.Application

	ResumesErr      error
	JobsErr         error
	ApplicationsErr error
}

// LoadDashboard fetches resumes, matched jobs and applications concurrently.
// It returns once all three settle — the caller's loading indicator clears
// exactly then, regardless of individual outcomes. ok=false means the load
// went stale (Invalidate or a newer load) and must be discarded unseen.
func (s *CatalogService) LoadDashboard(ctx context.Context) (data DashboardData, ok bool) {
	gen := s.generation.Add(1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Resumes, data.ResumesErr = s.api.ListResumes(ctx)
		return nil
	})
	g.Go(func() error {
		data.Jobs, data.JobsErr = s.api.ListJobs(ctx)
		return nil
	})
	g.Go(func() error {
		data.Applications, data.ApplicationsErr = s.api.ListApplications(ctx)
		return nil
	})
	_ = g.Wait() // goroutines record their own errors and return nil

	if !s.current(gen) {
		s.log.Debug(ctx, "dropping stale dashboard load", "generation", gen)
		return DashboardData{}, false
	}
	return data, true
}

// ListingsData is the job listings view state.
type ListingsData struct {
	Jobs    []models.Job
	JobsErr error
}

func (s *CatalogService) LoadListings(ctx context.Context) (data ListingsData, ok bool) {
	gen := s.generation.Add(1)

	data.Jobs, data.JobsErr = s.api.ListJobs(ctx)

	if !s.current(gen) {
		return ListingsData{}, false
	}
	return data, true
}

// EmployerData is the employer dashboard's view state.
type EmployerData struct {
	Jobs    []models.Job
	JobsErr error
}

func (s *CatalogService) LoadEmployer(ctx context.Context) (data EmployerData, ok bool) {
	gen := s.generation.Add(1)

	data.Jobs, data.JobsErr = s.api.MyJobs(ctx)

	if !s.current(gen) {
		return EmployerData{}, false
	}
	return data, true
}

// JobDetailData is the job detail view state. Applied is derived from the
// applications collection and only meaningful when ApplicationsErr is nil.
type JobDetailData struct {
	Job    *models.Job
	JobErr error

	Applications    []models.Application
	ApplicationsErr error
	Applied         bool
}

// LoadJobDetail fetches the job and, for candidates, the applications list
// used for the already-applied check. The two calls run concurrently; an
// applications failure degrades the applied hint, not the job view.
func (s *CatalogService) LoadJobDetail(ctx context.Context, jobID string, withApplications bool) (data JobDetailData, ok bool) {
	gen := s.generation.Add(1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Job, data.JobErr = s.api.GetJob(ctx, jobID)
		return nil
	})
	if withApplications {
		g.Go(func() error {
			data.Applications, data.ApplicationsErr = s.api.ListApplications(ctx)
			return nil
		})
	}
	_ = g.Wait()

	if !s.current(gen) {
		s.log.Debug(ctx, "dropping stale job detail load", "job", jobID, "generation", gen)
		return JobDetailData{}, false
	}

	if withApplications && data.ApplicationsErr == nil {
		data.Applied = HasApplied(data.Applications, jobID)
	}
	return data, true
}
