// Package model contains domain types for the repofolio application.
// These types are independent of any external GitHub library.
package model

import "time"

// Profile represents a user's public profile on the hosting platform.
type Profile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	Email       string    `json:"email,omitempty"`
	Blog        string    `json:"blog,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	ProfileURL  string    `json:"profileUrl,omitempty"`
	PublicRepos int       `json:"publicRepos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"createdAt"`
	Hireable    bool      `json:"hireable,omitempty"`
}

// DisplayName returns the profile's name, falling back to the login.
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
