package cli

import (
	"context"
	"os"
	"strings"

	"github.com/resumatch/resumatch-cli/internal/client/api"
	"github.com/resumatch/resumatch-cli/internal/client/models"
)

// Employer renders the employer home: the company's own postings.
func (a *App) Employer(ctx context.Context) error {
	data, ok := a.catalog.LoadEmployer(ctx)
	if !ok {
		return nil
	}

	a.printer.Noticef("Employer Dashboard")
	if data.JobsErr != nil {
		a.printer.Errorf("Error loading jobs: %s", api.ErrorMessage(data.JobsErr))
		return nil
	}

	if len(data.Jobs) == 0 {
		a.printer.Noticef("No postings yet. Use 'postjob' to create one.")
		return nil
	}
	a.printer.JobTable(a.printer.Out(), data.Jobs, false)
	return nil
}

// PostJob walks an employer through creating a posting. Validation failures
// come back from the server and are shown verbatim; the user stays at the
// prompt and can try again.
func (a *App) PostJob(ctx context.Context) error {
	if a.currentRole() != models.RoleEmployer {
		a.printer.Noticef("Only employers can post jobs.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Job title", os.Stdout)
	if err != nil {
		return err
	}
	company, err := getSimpleText(a.reader, "Company", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return err
	}
	jobType, err := getSimpleText(a.reader, "Job type (default Full-time)", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(jobType) == "" {
		jobType = "Full-time"
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	requirements, err := GetMultiline(a.reader, "Requirements, one per line", os.Stdout)
	if err != nil {
		return err
	}
	salary, err := getSimpleText(a.reader, "Salary range (optional)", os.Stdout)
	if err != nil {
		return err
	}

	job, err := a.api.CreateJob(ctx, models.NewJob{
		Title:        title,
		Company:      company,
		Location:     location,
		JobType:      jobType,
		Description:  description,
		Requirements: requirements,
		SalaryRange:  salary,
	})
	if err != nil {
		a.printer.Errorf("%s", api.ErrorMessage(err))
		return nil
	}

	a.printer.Successf("Job posted successfully! (id %s)", job.ID)
	return a.Navigate(ctx, "/employer")
}
