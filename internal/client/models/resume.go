package models

// Resume is an uploaded document as listed by GET /resumes.
type Resume struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	CreatedAt string `json:"created_at,omitempty"`
}
