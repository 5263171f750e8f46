// Package ghclient provides GitHub API client functionality.
package ghclient

import (
	"context"

	"github.com/repofolio/repofolio/internal/model"
)

// ProfileSource defines the interface for the GitHub API operations the
// analysis pipeline depends on. This interface enables mocking the API in
// unit tests.
type ProfileSource interface {
	// Profile and repository listing
	GetProfile(ctx context.Context, username string) (model.Profile, error)
	ListRepositories(ctx context.Context, username string) ([]model.Repository, error)

	// Per-repository detail fetches
	GetLanguages(ctx context.Context, owner, repo string) (map[string]int64, error)
	GetReadme(ctx context.Context, owner, repo string) (string, error)
	GetFile(ctx context.Context, owner, repo, path string) (string, error)

	// Remaining API quota hint, used to skip optional fetches when low
	RemainingQuota() int
}

// Ensure Client implements ProfileSource interface.
var _ ProfileSource = (*Client)(nil)
