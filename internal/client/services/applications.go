package services

import "github.com/resumatch/resumatch-cli/internal/client/models"

// HasApplied reports whether the candidate already applied to jobID. It is
// an optimistic hint for gating the apply action: the server remains the
// authority on uniqueness, and a duplicate rejection must still be handled
// at the call site even when this returned false.
func HasApplied(applications []models.Application, jobID string) bool {
	for _, a := range applications {
		if a.JobID == jobID {
			return true
		}
	}
	return false
}
