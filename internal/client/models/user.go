// Package models defines the ResuMatch domain records as the API serves
// them. All types are plain JSON carriers, read-only to the client.
package models

// Role distinguishes the two kinds of accounts on the platform.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

// User is the identity record returned by login, signup and /auth/me.
// It is immutable for the lifetime of a session and replaced wholesale
// on re-login.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}
