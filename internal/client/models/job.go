package models

// Job is a posting in the catalog. MatchScore and MatchReasons are filled in
// by the server's matching service for candidate-facing listings only; the
// client never computes or mutates them.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	JobType      string   `json:"job_type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	SalaryRange  string   `json:"salary_range,omitempty"`
	Status       string   `json:"status,omitempty"`
	EmployerID   string   `json:"employer_id,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`

	MatchScore   *float64 `json:"match_score,omitempty"`
	MatchReasons []string `json:"match_reasons,omitempty"`
}

// NewJob is the payload for POST /jobs.
type NewJob struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	JobType      string   `json:"job_type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	SalaryRange  string   `json:"salary_range,omitempty"`
}
