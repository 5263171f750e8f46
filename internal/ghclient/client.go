package ghclient

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/repofolio/repofolio/internal/log"
	"github.com/repofolio/repofolio/internal/model"
	"golang.org/x/oauth2"
)

// rateLimitTransport wraps an http.RoundTripper to handle GitHub rate limits
type rateLimitTransport struct {
	base http.RoundTripper
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Check if we're already rate limited before making the request
	if globalRateLimitState.IsLimited() {
		return nil, ErrRateLimited
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	// Parse and update rate limit state from response headers
	remaining, limit, resetAt := parseRateLimitHeaders(resp)
	if remaining >= 0 && limit > 0 {
		globalRateLimitState.Update(remaining, limit, resetAt)
	}

	// Log warning if rate limit is low
	if remaining <= rateLimitLowWatermark && remaining > 0 {
		log.Debug("rate limit low", "remaining", remaining, "resets_at", resetAt.Format(time.RFC3339))
	}

	// Handle rate limit responses (403 with rate limit exceeded or 429)
	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		if resp.Header.Get("X-RateLimit-Remaining") == "0" || resp.StatusCode == http.StatusTooManyRequests {
			globalRateLimitState.SetLimited(true, resetAt)
			_ = resp.Body.Close()
			return nil, ErrRateLimited
		}
	}

	return resp, err
}

// parseRateLimitHeaders extracts rate limit info from response headers.
func parseRateLimitHeaders(resp *http.Response) (remaining, limit int, resetAt time.Time) {
	remaining = -1
	limit = -1

	if remainingStr := resp.Header.Get("X-RateLimit-Remaining"); remainingStr != "" {
		if rem, err := strconv.Atoi(remainingStr); err == nil {
			remaining = rem
		}
	}

	if limitStr := resp.Header.Get("X-RateLimit-Limit"); limitStr != "" {
		if lim, err := strconv.Atoi(limitStr); err == nil {
			limit = lim
		}
	}

	if resetStr := resp.Header.Get("X-RateLimit-Reset"); resetStr != "" {
		if resetTime, err := strconv.ParseInt(resetStr, 10, 64); err == nil {
			resetAt = time.Unix(resetTime, 0)
		}
	}

	return remaining, limit, resetAt
}

// Client wraps the GitHub API client
type Client struct {
	client *gh.Client
	// token is intentionally unexported. NEVER add String(), MarshalJSON(),
	// or any method that could expose this value in logs or serialized output.
	token string
}

// NewClient creates a new GitHub client using a personal access token.
// An empty token falls back to the GITHUB_TOKEN environment variable, and
// when neither is set the client makes unauthenticated requests with
// GitHub's much lower anonymous rate limit.
func NewClient(ctx context.Context, token string) (*Client, error) {
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Transport = &rateLimitTransport{
			base: httpClient.Transport,
		}
	} else {
		log.Debug("no GitHub token provided, using unauthenticated requests")
		httpClient = &http.Client{
			Transport: &rateLimitTransport{
				base: http.DefaultTransport,
			},
		}
	}

	client := gh.NewClient(httpClient)

	return &Client{
		client: client,
		token:  token,
	}, nil
}

// RateLimits fetches the current GitHub API rate limit status.
func (c *Client) RateLimits(ctx context.Context) (*gh.RateLimits, error) {
	limits, _, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate limits: %w", err)
	}
	return limits, nil
}

// RemainingQuota returns the best-known number of API requests remaining
// before the rate limit resets. The value is a hint derived from response
// headers, not a reservation.
func (c *Client) RemainingQuota() int {
	return globalRateLimitState.Remaining()
}

// GetProfile fetches the public profile for a GitHub user.
func (c *Client) GetProfile(ctx context.Context, username string) (model.Profile, error) {
	user, _, err := c.client.Users.Get(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return model.Profile{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return model.Profile{}, fmt.Errorf("failed to get profile for %s: %w", username, err)
	}

	return model.Profile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		Bio:         user.GetBio(),
		Company:     user.GetCompany(),
		Location:    user.GetLocation(),
		Email:       user.GetEmail(),
		Blog:        user.GetBlog(),
		AvatarURL:   user.GetAvatarURL(),
		ProfileURL:  user.GetHTMLURL(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		CreatedAt:   user.GetCreatedAt().Time,
		Hireable:    user.GetHireable(),
	}, nil
}

// ListRepositories fetches all public repositories owned by a user,
// following pagination until the listing is exhausted.
func (c *Client) ListRepositories(ctx context.Context, username string) ([]model.Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Type:      "owner",
		Sort:      "updated",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	var repos []model.Repository

	for {
		page, resp, err := c.client.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to list repositories for %s: %w", username, err)
		}

		for _, r := range page {
			repos = append(repos, repoFromGitHub(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return repos, nil
}

// repoFromGitHub converts a go-github repository to the domain type.
func repoFromGitHub(r *gh.Repository) model.Repository {
	return model.Repository{
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Topics:      r.Topics,
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		SizeKB:      r.GetSize(),
		OpenIssues:  r.GetOpenIssuesCount(),
		CreatedAt:   r.GetCreatedAt().Time,
		UpdatedAt:   r.GetUpdatedAt().Time,
		PushedAt:    r.GetPushedAt().Time,
		Fork:        r.GetFork(),
		Archived:    r.GetArchived(),
		HTMLURL:     r.GetHTMLURL(),
		Homepage:    r.GetHomepage(),
	}
}

// GetLanguages fetches the language byte breakdown for a repository.
func (c *Client) GetLanguages(ctx context.Context, owner, repo string) (map[string]int64, error) {
	langs, _, err := c.client.Repositories.ListLanguages(ctx, owner, repo)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("repository %s/%s: %w", owner, repo, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to list languages for %s/%s: %w", owner, repo, err)
	}

	out := make(map[string]int64, len(langs))
	for lang, bytes := range langs {
		out[lang] = int64(bytes)
	}
	return out, nil
}

// GetReadme fetches the decoded README content for a repository. A missing
// README is not an error: the empty string is returned with a nil error.
func (c *Client) GetReadme(ctx context.Context, owner, repo string) (string, error) {
	readme, _, err := c.client.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get README for %s/%s: %w", owner, repo, err)
	}

	content, err := readme.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode README for %s/%s: %w", owner, repo, err)
	}
	return content, nil
}

// GetFile fetches the decoded content of a file at the root of a repository's
// default branch. A missing file is not an error: the empty string is
// returned with a nil error.
func (c *Client) GetFile(ctx context.Context, owner, repo, path string) (string, error) {
	file, _, _, err := c.client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get %s from %s/%s: %w", path, owner, repo, err)
	}
	if file == nil {
		// Path resolved to a directory listing, not a file.
		return "", nil
	}

	content, err := file.GetContent()
	if err != nil {
		// Some blobs come back with unexpected encodings; fall back to
		// base64 decoding the raw content field.
		if file.Content != nil {
			if raw, decErr := base64.StdEncoding.DecodeString(*file.Content); decErr == nil {
				return string(raw), nil
			}
		}
		return "", fmt.Errorf("failed to decode %s from %s/%s: %w", path, owner, repo, err)
	}
	return content, nil
}

// isNotFound reports whether err is a GitHub API 404 response.
func isNotFound(err error) bool {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
