package model

import "time"

// Repository represents a single repository as fetched from the platform.
// Immutable once fetched; owned by the orchestrator for one analysis run.
type Repository struct {
	Name        string    `json:"name"`
	FullName    string    `json:"fullName"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Topics      []string  `json:"topics,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	SizeKB      int       `json:"sizeKb"`
	OpenIssues  int       `json:"openIssues"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	PushedAt    time.Time `json:"pushedAt"`
	Fork        bool      `json:"fork"`
	Archived    bool      `json:"archived"`
	HTMLURL     string    `json:"htmlUrl,omitempty"`
	Homepage    string    `json:"homepage,omitempty"`
}

// Owner returns the owner portion of the full name, or "" if unqualified.
func (r *Repository) Owner() string {
	for i := 0; i < len(r.FullName); i++ {
		if r.FullName[i] == '/' {
			return r.FullName[:i]
		}
	}
	return ""
}
