package cli

import (
	"context"

	"github.com/resumatch/resumatch-cli/internal/client/api"
	"github.com/resumatch/resumatch-cli/internal/client/models"
	"github.com/resumatch/resumatch-cli/internal/client/services"
)

func (a *App) currentRole() models.Role {
	s := a.session.Snapshot()
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Listings renders the job catalog, optionally narrowed by a search query
// matched case-insensitively against title, company and location.
func (a *App) Listings(ctx context.Context, query string) error {
	data, ok := a.catalog.LoadListings(ctx)
	if !ok {
		return nil
	}
	if data.JobsErr != nil {
		a.printer.Errorf("Error loading jobs: %s", api.ErrorMessage(data.JobsErr))
		return nil
	}

	jobs := services.FilterJobs(data.Jobs, query)
	if len(jobs) == 0 {
		a.printer.Noticef("No jobs found")
		return nil
	}

	a.printer.JobTable(a.printer.Out(), jobs, a.currentRole() == models.RoleJobSeeker)
	a.printer.Noticef("\nUse 'job <id>' for details.")
	return nil
}

// JobDetail renders a single posting. For candidates the applications list
// is fetched alongside to derive the already-applied state; a failure there
// degrades the hint, not the job view.
func (a *App) JobDetail(ctx context.Context, jobID string) error {
	seeker := a.currentRole() == models.RoleJobSeeker

	data, ok := a.catalog.LoadJobDetail(ctx, jobID, seeker)
	if !ok {
		return nil
	}
	if data.JobErr != nil {
		a.printer.Errorf("%s", api.ErrorMessage(data.JobErr))
		return nil
	}

	a.printer.JobDetail(a.printer.Out(), data.Job, data.Applied)

	if seeker && !data.Applied {
		a.printer.Noticef("\nUse 'apply %s' to apply.", jobID)
	}
	return nil
}

// Apply submits an application. The local already-applied check only gates
// the happy path; the server stays authoritative, so its duplicate rejection
// is shown as a plain notice and nothing is marked twice.
func (a *App) Apply(ctx context.Context, jobID string) error {
	if a.currentRole() != models.RoleJobSeeker {
		a.printer.Noticef("Only job seekers can apply.")
		return nil
	}

	apps, err := a.api.ListApplications(ctx)
	if err == nil && services.HasApplied(apps, jobID) {
		a.printer.Noticef("You have already applied to this job.")
		return nil
	}
	// on err: fall through and let the server decide

	if _, err := a.api.Apply(ctx, jobID); err != nil {
		a.printer.Errorf("%s", api.ErrorMessage(err))
		return nil
	}

	a.printer.Successf("Application submitted successfully!")
	return nil
}
