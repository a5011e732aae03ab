package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/resumatch/resumatch-cli/internal/client/api"
	"github.com/resumatch/resumatch-cli/internal/client/models"
)

// Dashboard renders the job seeker home: resume, match and application
// counts plus the underlying listings. The three collections load
// concurrently and each failure degrades only its own section.
func (a *App) Dashboard(ctx context.Context) error {
	data, ok := a.catalog.LoadDashboard(ctx)
	if !ok {
		return nil
	}

	a.printer.Noticef("Job Seeker Dashboard")
	a.printer.Noticef("Resumes: %d  Matched jobs: %d  Applications: %d\n",
		len(data.Resumes), len(data.Jobs), len(data.Applications))

	if data.ResumesErr != nil {
		a.printer.Errorf("Error loading resumes: %s", api.ErrorMessage(data.ResumesErr))
	} else if len(data.Resumes) > 0 {
		a.printer.Noticef("Your resumes:")
		a.printer.ResumeTable(a.printer.Out(), data.Resumes)
	} else {
		a.printer.Noticef("No resumes yet. Use 'upload <file>' to add one.")
	}

	if data.JobsErr != nil {
		a.printer.Errorf("Error loading jobs: %s", api.ErrorMessage(data.JobsErr))
	} else if len(data.Jobs) > 0 {
		a.printer.Noticef("\nMatched jobs:")
		a.printer.JobTable(a.printer.Out(), data.Jobs, true)
	}

	if data.ApplicationsErr != nil {
		a.printer.Errorf("Error loading applications: %s", api.ErrorMessage(data.ApplicationsErr))
	} else if len(data.Applications) > 0 {
		a.printer.Noticef("\nYour applications:")
		a.printer.ApplicationTable(a.printer.Out(), data.Applications)
	}

	return nil
}

// Upload sends a resume to the server. The extension check happens before
// any bytes leave the machine, mirroring the original client-side guard.
func (a *App) Upload(ctx context.Context, path string) error {
	if a.currentRole() != models.RoleJobSeeker {
		a.printer.Noticef("Only job seekers can upload resumes.")
		return nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" && ext != ".docx" {
		a.printer.Errorf("Please upload a PDF or DOCX file")
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		a.printer.Errorf("cannot open %s: %v", path, err)
		return nil
	}
	defer f.Close()

	resume, err := a.api.UploadResume(ctx, filepath.Base(path), f)
	if err != nil {
		a.printer.Errorf("%s", api.ErrorMessage(err))
		return nil
	}

	a.printer.Successf("Resume uploaded successfully: %s", resume.Filename)

	// refresh the dashboard the way the web client re-fetches after upload
	return a.Navigate(ctx, "/dashboard")
}
