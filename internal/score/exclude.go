package score

import (
	"strings"

	"github.com/repofolio/repofolio/internal/model"
)

// Thresholds for the exclusion predicate.
const (
	forkMinStars     = 5
	archivedMinStars = 10
	minSizeKB        = 5
)

// Excluder decides whether a repository is filtered out before scoring.
type Excluder struct {
	dotfilePatterns  []string
	learningPatterns []string
}

// NewExcluder creates an excluder with the given name pattern sets.
// Patterns with a trailing "*" are prefix matches; all matching is
// case-insensitive.
func NewExcluder(dotfilePatterns, learningPatterns []string) *Excluder {
	return &Excluder{
		dotfilePatterns:  dotfilePatterns,
		learningPatterns: learningPatterns,
	}
}

// ShouldExclude reports whether the repository is filtered out of ranking.
// Pure and idempotent: identical input always yields the identical answer.
func (e *Excluder) ShouldExclude(repo model.Repository) bool {
	if repo.Fork && repo.Stars < forkMinStars {
		return true
	}
	if repo.Archived && repo.Stars < archivedMinStars {
		return true
	}
	if repo.SizeKB < minSizeKB {
		return true
	}
	if repo.Language == "" {
		return true
	}
	// Dotfile/config repos are excluded regardless of stars.
	if matchesAny(repo.Name, e.dotfilePatterns) {
		return true
	}
	// Learning/practice repos are excluded only without any engagement.
	if repo.Stars == 0 && matchesAny(repo.Name, e.learningPatterns) {
		return true
	}
	return false
}

func matchesAny(name string, patterns []string) bool {
	name = strings.ToLower(name)
	for _, pattern := range patterns {
		pattern = strings.ToLower(pattern)
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
			if strings.HasPrefix(name, prefix) {
				return true
			}
			continue
		}
		if name == pattern {
			return true
		}
	}
	return false
}
