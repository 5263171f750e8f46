package ghclient

import (
	"errors"
	"math"
	"sync"
	"time"
)

// ErrRateLimited is returned when the GitHub API rate limit has been exceeded.
var ErrRateLimited = errors.New("rate limited")

// ErrNotFound is returned when the requested user or resource does not exist.
var ErrNotFound = errors.New("not found")

// rateLimitLowWatermark is the threshold below which low-quota warnings
// are logged.
const rateLimitLowWatermark = 100

// RateLimitState tracks the global rate limit state for GitHub API requests.
// It is updated by the client transport from response headers and read by
// the orchestrator as a best-effort remaining-quota hint.
type RateLimitState struct {
	mu        sync.RWMutex
	known     bool
	limited   bool
	resetAt   time.Time
	remaining int
	limit     int
}

var globalRateLimitState = &RateLimitState{}

// IsLimited returns true if we are currently rate limited.
func (s *RateLimitState) IsLimited() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.limited {
		return false
	}
	if time.Now().After(s.resetAt) {
		return false
	}
	return true
}

// SetLimited sets the rate limit state.
func (s *RateLimitState) SetLimited(limited bool, resetAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limited = limited
	s.resetAt = resetAt
}

// Update updates the rate limit state from response headers.
func (s *RateLimitState) Update(remaining, limit int, resetAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.known = true
	s.remaining = remaining
	s.limit = limit
	s.resetAt = resetAt

	if remaining == 0 {
		s.limited = true
	}
}

// Remaining returns the remaining-quota hint. Before any response has been
// observed the quota is unknown and an effectively-unlimited sentinel is
// returned so optional fetches are not suppressed.
func (s *RateLimitState) Remaining() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.known {
		return math.MaxInt
	}
	return s.remaining
}

// GetStatus returns the current rate limit status.
func (s *RateLimitState) GetStatus() (remaining, limit int, resetAt time.Time, limited bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remaining, s.limit, s.resetAt, s.limited && time.Now().Before(s.resetAt)
}

// GetRateLimitStatus returns the global rate limit status.
func GetRateLimitStatus() (remaining, limit int, resetAt time.Time, limited bool) {
	return globalRateLimitState.GetStatus()
}
