package analyzer

import (
	"math"
	"time"

	"github.com/repofolio/repofolio/internal/model"
)

// computeStatistics derives the aggregate numbers from a populated analysis.
func computeStatistics(now time.Time, analysis *model.Analysis) model.Statistics {
	stats := model.Statistics{
		TotalRepos: len(analysis.Repositories),
		Followers:  analysis.Profile.Followers,
		Following:  analysis.Profile.Following,
	}

	var originalStars int
	recentCutoff := now.Add(-365 * 24 * time.Hour)

	for _, repo := range analysis.Repositories {
		stats.TotalStars += repo.Stars
		stats.TotalForks += repo.Forks
		if repo.Fork {
			stats.ForkedRepos++
		} else {
			stats.OriginalRepos++
			originalStars += repo.Stars
		}
		if repo.UpdatedAt.After(recentCutoff) {
			stats.RecentlyUpdated++
		}
	}

	stats.YearsActive = yearsActive(now, analysis.Profile.CreatedAt)

	if stats.OriginalRepos > 0 {
		avg := float64(originalStars) / float64(stats.OriginalRepos)
		stats.AvgStarsPerRepo = math.Round(avg*10) / 10
	}

	stats.PrimaryLanguage = analysis.Languages.PrimaryLanguage
	stats.LanguageCount = analysis.Languages.LanguageCount

	for _, records := range analysis.Technologies {
		stats.TechnologyCount += len(records)
	}

	return stats
}

// yearsActive counts whole calendar years since account creation, never
// reporting less than one. Calendar years keep an account created exactly
// N years ago at N regardless of how many leap days the span contains.
func yearsActive(now, createdAt time.Time) int {
	if createdAt.IsZero() || !createdAt.Before(now) {
		return 1
	}
	years := 0
	for !createdAt.AddDate(years+1, 0, 0).After(now) {
		years++
	}
	if years < 1 {
		return 1
	}
	return years
}
