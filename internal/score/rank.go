package score

import (
	"sort"

	"github.com/repofolio/repofolio/config"
	"github.com/repofolio/repofolio/internal/model"
)

// Engine combines scoring and exclusion into the ranking operation.
type Engine struct {
	scorer   *Scorer
	excluder *Excluder
}

// NewEngine creates a ranking engine with the given weights and
// exclusion patterns.
func NewEngine(weights config.ScoreWeights, dotfilePatterns, learningPatterns []string) *Engine {
	return &Engine{
		scorer:   NewScorer(weights),
		excluder: NewExcluder(dotfilePatterns, learningPatterns),
	}
}

// Scorer exposes the underlying scorer, mainly so callers can pin its
// reference time.
func (e *Engine) Scorer() *Scorer {
	return e.scorer
}

// ShouldExclude reports whether a repository is filtered out of ranking.
func (e *Engine) ShouldExclude(repo model.Repository) bool {
	return e.excluder.ShouldExclude(repo)
}

// RankOptions bounds the ranked result.
type RankOptions struct {
	// MaxResults truncates the ranked list. Zero or negative means no cap.
	MaxResults int
	// MinScore drops scored repositories below this total.
	MinScore int
}

// Rank filters, scores and sorts repositories into the ranked project list.
// readmes maps repository name to README text; missing entries score as
// having no README. The sort is stable: ties keep their input order.
// An empty result is not an error, it means nothing qualifies.
func (e *Engine) Rank(repos []model.Repository, readmes map[string]string, opts RankOptions) []model.ScoredRepository {
	scored := make([]model.ScoredRepository, 0, len(repos))

	for _, repo := range repos {
		if e.excluder.ShouldExclude(repo) {
			continue
		}

		readmeText := readmes[repo.Name]
		sr := e.scorer.Score(repo, readmeText)
		if sr.TotalScore < opts.MinScore {
			continue
		}

		sr.ExtractedDescription = ExtractDescription(readmeText)
		if sr.ExtractedDescription == "" {
			sr.ExtractedDescription = repo.Description
		}

		scored = append(scored, sr)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})

	if opts.MaxResults > 0 && len(scored) > opts.MaxResults {
		scored = scored[:opts.MaxResults]
	}

	return scored
}
