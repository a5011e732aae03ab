package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/resumatch/resumatch-cli/internal/client/models"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
}

// JobTable renders a job listing. withScore adds the candidate-facing match
// column; postings without a score show a dash.
func (p *Printer) JobTable(w io.Writer, jobs []models.Job, withScore bool) {
	header := []string{"ID", "Title", "Company", "Location", "Type"}
	if withScore {
		header = append(header, "Match")
	}

	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		row := []string{j.ID, j.Title, j.Company, j.Location, j.JobType}
		if withScore {
			cell := "-"
			if j.MatchScore != nil {
				cell = p.MatchScore(*j.MatchScore)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	t := newTable(w)
	t.Header(header)
	t.Bulk(rows)
	t.Render()
}

// ResumeTable renders the uploaded resume list.
func (p *Printer) ResumeTable(w io.Writer, resumes []models.Resume) {
	rows := make([][]string, 0, len(resumes))
	for _, r := range resumes {
		rows = append(rows, []string{r.ID, r.Filename, r.CreatedAt})
	}

	t := newTable(w)
	t.Header([]string{"ID", "Filename", "Uploaded"})
	t.Bulk(rows)
	t.Render()
}

// ApplicationTable renders the candidate's applications.
func (p *Printer) ApplicationTable(w io.Writer, apps []models.Application) {
	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, []string{a.ID, a.JobID, a.Status, a.CreatedAt})
	}

	t := newTable(w)
	t.Header([]string{"ID", "Job", "Status", "Submitted"})
	t.Bulk(rows)
	t.Render()
}

// JobDetail renders a single posting with requirements and, when present,
// the match score and reasons.
func (p *Printer) JobDetail(w io.Writer, j *models.Job, applied bool) {
	fmt.Fprintf(w, "%s\n%s — %s (%s)\n", j.Title, j.Company, j.Location, j.JobType)
	if j.SalaryRange != "" {
		fmt.Fprintf(w, "Salary: %s\n", j.SalaryRange)
	}
	if j.MatchScore != nil {
		fmt.Fprintf(w, "%s\n", p.MatchScore(*j.MatchScore))
		for _, r := range j.MatchReasons {
			fmt.Fprintf(w, "  • %s\n", r)
		}
	}
	fmt.Fprintf(w, "\n%s\n", j.Description)
	if len(j.Requirements) > 0 {
		fmt.Fprintln(w, "\nRequirements:")
		for _, r := range j.Requirements {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}
	if applied {
		fmt.Fprintln(w, "\nYou have already applied to this job.")
	}
}
