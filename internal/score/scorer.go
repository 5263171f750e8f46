// Package score implements repository filtering, multi-factor scoring and
// ranking for CV project selection.
package score

import (
	"math"
	"time"

	"github.com/repofolio/repofolio/config"
	"github.com/repofolio/repofolio/internal/model"
	"github.com/repofolio/repofolio/internal/readme"
)

// Scorer computes the multi-factor score for a single repository.
// Scoring is deterministic given the repository, the README text and the
// scorer's reference time.
type Scorer struct {
	Weights config.ScoreWeights

	// Now is the reference time for recency scoring. The zero value means
	// the wall clock is read once per Score call.
	Now time.Time
}

// NewScorer creates a scorer with the given weights.
func NewScorer(weights config.ScoreWeights) *Scorer {
	return &Scorer{Weights: weights}
}

func (s *Scorer) now() time.Time {
	if s.Now.IsZero() {
		return time.Now()
	}
	return s.Now
}

// Score computes the total score and breakdown for one repository.
// readmeText may be empty when no README was fetched.
func (s *Scorer) Score(repo model.Repository, readmeText string) model.ScoredRepository {
	quality := readme.Analyze(readmeText)

	breakdown := model.ScoreBreakdown{
		Stars:          starsScore(repo.Stars),
		Forks:          forksScore(repo.Forks),
		RecentActivity: recencyScore(s.now().Sub(repo.UpdatedAt)),
		CodeSize:       codeSizeScore(repo.SizeKB),
		HasReadme:      boolScore(quality.HasReadme),
		ReadmeQuality:  quality.Score,
		HasLanguage:    boolScore(repo.Language != ""),
		TopicCount:     topicScore(len(repo.Topics)),
		IsOriginal:     boolScore(!repo.Fork),
	}

	w := s.Weights
	total := w.Stars*float64(breakdown.Stars) +
		w.Forks*float64(breakdown.Forks) +
		w.RecentActivity*float64(breakdown.RecentActivity) +
		w.CodeSize*float64(breakdown.CodeSize) +
		w.HasReadme*float64(breakdown.HasReadme) +
		w.ReadmeQuality*float64(breakdown.ReadmeQuality) +
		w.HasLanguage*float64(breakdown.HasLanguage) +
		w.TopicCount*float64(breakdown.TopicCount) +
		w.IsOriginal*float64(breakdown.IsOriginal)

	return model.ScoredRepository{
		Repository: repo,
		TotalScore: int(math.Round(total)),
		Breakdown:  breakdown,
		Readme:     quality,
	}
}

// starsScore is logarithmic: popularity has diminishing returns.
func starsScore(stars int) int {
	if stars <= 0 {
		return 0
	}
	return capScore(math.Log10(float64(stars)+1) * 33)
}

func forksScore(forks int) int {
	if forks <= 0 {
		return 0
	}
	return capScore(math.Log10(float64(forks)+1) * 40)
}

// recencyScore is a step function over days since last update.
func recencyScore(sinceUpdate time.Duration) int {
	days := int(sinceUpdate.Hours() / 24)
	switch {
	case days <= 7:
		return 100
	case days <= 30:
		return 90
	case days <= 90:
		return 70
	case days <= 180:
		return 50
	case days <= 365:
		return 30
	case days <= 730:
		return 15
	default:
		return 5
	}
}

// codeSizeScore rewards substantial projects; the very largest repos
// (vendored deps, data dumps) score slightly below the sweet spot.
func codeSizeScore(sizeKB int) int {
	switch {
	case sizeKB < 10:
		return 5
	case sizeKB < 50:
		return 20
	case sizeKB < 200:
		return 40
	case sizeKB < 1000:
		return 60
	case sizeKB < 5000:
		return 80
	case sizeKB < 50000:
		return 100
	default:
		return 90
	}
}

func topicScore(count int) int {
	return capScore(float64(count) * 20)
}

func boolScore(b bool) int {
	if b {
		return 100
	}
	return 0
}

func capScore(v float64) int {
	if v >= 100 {
		return 100
	}
	return int(math.Round(v))
}
