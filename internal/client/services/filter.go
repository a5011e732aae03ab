package services

import (
	"strings"

	"github.com/resumatch/resumatch-cli/internal/client/models"
)

// FilterJobs returns the jobs whose title, company or location contains
// query as a case-insensitive substring. An empty query keeps everything.
// The input slice is never mutated; recompute on every query change.
func FilterJobs(jobs []models.Job, query string) []models.Job {
	if query == "" {
		return jobs
	}
	q := strings.ToLower(query)

	filtered := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if strings.Contains(strings.ToLower(j.Title), q) ||
			strings.Contains(strings.ToLower(j.Company), q) ||
			strings.Contains(strings.ToLower(j.Location), q) {
			filtered = append(filtered, j)
		}
	}
	return filtered
}
