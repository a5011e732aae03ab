package models

// Application links the authenticated candidate to a job. The applicant is
// implicit via the bearer token; the server enforces at most one application
// per (applicant, job) pair.
type Application struct {
	ID        string `json:"id"`
	JobID     string `json:"job_id"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
