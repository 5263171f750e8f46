package ghclient

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"testing"
	"time"

	gh "github.com/google/go-github/v57/github"
)

func TestParseRateLimitHeaders(t *testing.T) {
	resetUnix := time.Now().Add(30 * time.Minute).Unix()
	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set("X-RateLimit-Remaining", "4200")
	resp.Header.Set("X-RateLimit-Limit", "5000")
	resp.Header.Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetUnix))

	remaining, limit, resetAt := parseRateLimitHeaders(resp)
	if remaining != 4200 {
		t.Errorf("expected remaining 4200, got %d", remaining)
	}
	if limit != 5000 {
		t.Errorf("expected limit 5000, got %d", limit)
	}
	if resetAt.Unix() != resetUnix {
		t.Errorf("expected reset %d, got %d", resetUnix, resetAt.Unix())
	}
}

func TestParseRateLimitHeadersMissing(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}
	remaining, limit, _ := parseRateLimitHeaders(resp)
	if remaining != -1 {
		t.Errorf("expected remaining -1 with no headers, got %d", remaining)
	}
	if limit != -1 {
		t.Errorf("expected limit -1 with no headers, got %d", limit)
	}
}

func TestRateLimitStateRemaining(t *testing.T) {
	s := &RateLimitState{}

	// Unknown state should not suppress optional fetches.
	if got := s.Remaining(); got != math.MaxInt {
		t.Errorf("expected MaxInt sentinel before any update, got %d", got)
	}

	s.Update(42, 5000, time.Now().Add(time.Hour))
	if got := s.Remaining(); got != 42 {
		t.Errorf("expected remaining 42 after update, got %d", got)
	}
}

func TestRateLimitStateLimited(t *testing.T) {
	s := &RateLimitState{}
	if s.IsLimited() {
		t.Error("fresh state should not be limited")
	}

	s.Update(0, 5000, time.Now().Add(time.Hour))
	if !s.IsLimited() {
		t.Error("zero remaining should mark state limited")
	}

	// Limited state expires once the reset time passes.
	s.SetLimited(true, time.Now().Add(-time.Minute))
	if s.IsLimited() {
		t.Error("limited state should clear after reset time")
	}
}

func TestRepoFromGitHub(t *testing.T) {
	created := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	pushed := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	r := &gh.Repository{
		Name:            gh.String("api-gateway"),
		FullName:        gh.String("devuser/api-gateway"),
		Description:     gh.String("High-performance API gateway"),
		Language:        gh.String("Go"),
		Topics:          []string{"api", "gateway"},
		StargazersCount: gh.Int(245),
		ForksCount:      gh.Int(18),
		Size:            gh.Int(2400),
		Fork:            gh.Bool(false),
		Archived:        gh.Bool(false),
		HTMLURL:         gh.String("https://github.com/devuser/api-gateway"),
		CreatedAt:       &gh.Timestamp{Time: created},
		PushedAt:        &gh.Timestamp{Time: pushed},
	}

	got := repoFromGitHub(r)
	if got.Name != "api-gateway" || got.FullName != "devuser/api-gateway" {
		t.Errorf("unexpected name fields: %+v", got)
	}
	if got.Stars != 245 || got.Forks != 18 || got.SizeKB != 2400 {
		t.Errorf("unexpected counts: %+v", got)
	}
	if got.Language != "Go" || len(got.Topics) != 2 {
		t.Errorf("unexpected language/topics: %+v", got)
	}
	if !got.CreatedAt.Equal(created) || !got.PushedAt.Equal(pushed) {
		t.Errorf("unexpected timestamps: %+v", got)
	}
	if got.Owner() != "devuser" {
		t.Errorf("expected owner devuser, got %q", got.Owner())
	}
}

func TestIsNotFound(t *testing.T) {
	notFound := &gh.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusNotFound},
	}
	if !isNotFound(notFound) {
		t.Error("expected 404 ErrorResponse to be not-found")
	}
	if !isNotFound(fmt.Errorf("wrapped: %w", notFound)) {
		t.Error("expected wrapped 404 to be not-found")
	}

	forbidden := &gh.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusForbidden},
	}
	if isNotFound(forbidden) {
		t.Error("403 should not be not-found")
	}
	if isNotFound(errors.New("network down")) {
		t.Error("plain error should not be not-found")
	}
}
