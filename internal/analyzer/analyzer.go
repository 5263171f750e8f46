// Package analyzer orchestrates the full profile analysis pipeline:
// profile fetch, repository listing, language aggregation, README quality,
// technology detection, ranking, skills and statistics.
package analyzer

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/repofolio/repofolio/config"
	"github.com/repofolio/repofolio/internal/ghclient"
	"github.com/repofolio/repofolio/internal/langstats"
	"github.com/repofolio/repofolio/internal/log"
	"github.com/repofolio/repofolio/internal/model"
	"github.com/repofolio/repofolio/internal/score"
	"github.com/repofolio/repofolio/internal/techstack"
)

// Summarizer generates an optional prose summary of a finished analysis.
// Failures degrade into the analysis error list, never abort the run.
type Summarizer interface {
	Summarize(ctx context.Context, analysis *model.Analysis) (string, error)
}

// Analyzer runs one analysis invocation at a time. The Analysis record it
// builds is exclusively owned by that invocation; do not share an Analyzer
// across concurrent analyses.
type Analyzer struct {
	source     ghclient.ProfileSource
	cfg        *config.Config
	limits     config.Limits
	engine     *score.Engine
	onProgress ProgressFunc
	summarizer Summarizer
	now        func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithProgress sets the progress callback invoked before each stage.
func WithProgress(fn ProgressFunc) Option {
	return func(a *Analyzer) { a.onProgress = fn }
}

// WithSummarizer enables summary generation after ranking.
func WithSummarizer(s Summarizer) Option {
	return func(a *Analyzer) { a.summarizer = s }
}

// WithClock overrides the reference time used for recency scoring and
// statistics. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// New creates an Analyzer with scoring weights, exclusion patterns and
// limits resolved from cfg.
func New(source ghclient.ProfileSource, cfg *config.Config, opts ...Option) *Analyzer {
	a := &Analyzer{
		source: source,
		cfg:    cfg,
		limits: cfg.GetLimits(),
		engine: score.NewEngine(cfg.GetScoreWeights(), cfg.GetDotfilePatterns(), cfg.GetLearningPatterns()),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) transition(state State, format string, args ...any) {
	if a.onProgress != nil {
		a.onProgress(state, fmt.Sprintf(format, args...))
	}
}

// fail records a fatal error, transitions to the Error state and returns
// the error unchanged for the caller to surface.
func (a *Analyzer) fail(err error) error {
	a.transition(StateError, "%v", err)
	return err
}

// Analyze runs the full pipeline for one username. Profile and repository
// listing failures are fatal; language, README and manifest failures are
// absorbed into the returned Analysis error list.
func (a *Analyzer) Analyze(ctx context.Context, username string) (*model.Analysis, error) {
	now := a.now()
	analysis := &model.Analysis{
		Username:    username,
		GeneratedAt: now,
	}

	a.transition(StateFetchingProfile, "Fetching profile for %s", username)
	profile, err := a.source.GetProfile(ctx, username)
	if err != nil {
		return nil, a.fail(err)
	}
	analysis.Profile = profile

	a.transition(StateFetchingRepos, "Fetching repositories")
	repos, err := a.source.ListRepositories(ctx, username)
	if err != nil {
		return nil, a.fail(err)
	}
	analysis.Repositories = repos
	log.Info("fetched repositories", "user", username, "count", len(repos))

	langCandidates := a.languageCandidates(repos)
	a.transition(StateAnalyzingLanguages, "Analyzing languages across %d repositories", len(langCandidates))
	byRepo := a.fetchLanguages(ctx, langCandidates, analysis)
	analysis.Languages = langstats.Aggregate(byRepo)

	significant := a.significantRepos(repos)
	a.transition(StateFetchingReadmes, "Fetching READMEs for %d significant repositories", len(significant))
	readmes := a.fetchReadmes(ctx, significant, analysis)

	a.transition(StateDetectingTechStack, "Detecting technology stack")
	records := a.detectTechnologies(ctx, significant, analysis)
	analysis.Technologies = techstack.Categorize(records)

	a.transition(StateRankingProjects, "Ranking projects")
	a.engine.Scorer().Now = now
	analysis.Projects = a.engine.Rank(repos, readmes, score.RankOptions{
		MaxResults: a.limits.MaxProjects,
		MinScore:   a.limits.MinScore,
	})

	analysis.Skills = mergeSkills(
		langstats.SkillsFromLanguages(analysis.Languages.Languages, langstats.DefaultMinSkillPercentage),
		analysis.Technologies,
	)
	analysis.Statistics = computeStatistics(now, analysis)

	if a.summarizer != nil {
		summary, err := a.summarizer.Summarize(ctx, analysis)
		if err != nil {
			analysis.Errors = append(analysis.Errors, fmt.Sprintf("summary generation failed: %v", err))
		} else {
			analysis.Summary = summary
		}
	}

	a.transition(StateComplete, "Analysis complete")
	return analysis, nil
}

// languageCandidates picks the non-fork repositories eligible for language
// map fetches, capped to the configured limit. The repository list arrives
// most-recently-updated first, so the cap keeps the freshest repos.
func (a *Analyzer) languageCandidates(repos []model.Repository) []model.Repository {
	out := make([]model.Repository, 0, a.limits.LanguageRepoLimit)
	for _, r := range repos {
		if r.Fork {
			continue
		}
		out = append(out, r)
		if len(out) >= a.limits.LanguageRepoLimit {
			break
		}
	}
	return out
}

// significantRepos picks non-fork repositories above the size threshold,
// capped to the README fetch limit.
func (a *Analyzer) significantRepos(repos []model.Repository) []model.Repository {
	out := make([]model.Repository, 0, a.limits.ReadmeRepoLimit)
	for _, r := range repos {
		if r.Fork || r.SizeKB <= a.limits.SignificantMinKB {
			continue
		}
		out = append(out, r)
		if len(out) >= a.limits.ReadmeRepoLimit {
			break
		}
	}
	return out
}

// fetchLanguages retrieves language byte maps in fixed-size concurrent
// batches, awaiting each batch before starting the next. A failed fetch
// degrades to an empty map for that repository and an error-list entry.
func (a *Analyzer) fetchLanguages(ctx context.Context, repos []model.Repository, analysis *model.Analysis) map[string]map[string]int64 {
	type result struct {
		langs map[string]int64
		err   error
	}
	results := make([]result, len(repos))

	batch := a.limits.LanguageBatchSize
	if batch < 1 {
		batch = 1
	}

	for start := 0; start < len(repos); start += batch {
		end := min(start+batch, len(repos))

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				repo := repos[i]
				langs, err := a.source.GetLanguages(gctx, repo.Owner(), repo.Name)
				results[i] = result{langs: langs, err: err}
				return nil
			})
		}
		// Goroutines never return errors; failures are per-slot.
		_ = g.Wait()
	}

	byRepo := make(map[string]map[string]int64, len(repos))
	for i, repo := range repos {
		if results[i].err != nil {
			log.Debug("language fetch failed", "repo", repo.Name, "error", results[i].err)
			analysis.Errors = append(analysis.Errors,
				fmt.Sprintf("failed to fetch languages for %s: %v", repo.Name, results[i].err))
			byRepo[repo.Name] = map[string]int64{}
			continue
		}
		var total int64
		for _, bytes := range results[i].langs {
			total += bytes
		}
		log.Trace("fetched languages", "repo", repo.Name, "languages", len(results[i].langs), "bytes", total)
		byRepo[repo.Name] = results[i].langs
	}
	return byRepo
}

// fetchReadmes retrieves README text for significant repositories. Fetching
// stops early once the remaining-quota hint drops below the configured
// floor; already-fetched READMEs are kept and exactly one error-list entry
// records the truncation.
func (a *Analyzer) fetchReadmes(ctx context.Context, repos []model.Repository, analysis *model.Analysis) map[string]string {
	readmes := make(map[string]string, len(repos))

	for i, repo := range repos {
		if a.source.RemainingQuota() < a.limits.QuotaFloor {
			analysis.Errors = append(analysis.Errors,
				fmt.Sprintf("API quota low, skipped README fetch for %d remaining repositories", len(repos)-i))
			break
		}

		text, err := a.source.GetReadme(ctx, repo.Owner(), repo.Name)
		if err != nil {
			analysis.Errors = append(analysis.Errors,
				fmt.Sprintf("failed to fetch README for %s: %v", repo.Name, err))
			continue
		}
		if text == "" {
			analysis.Errors = append(analysis.Errors,
				fmt.Sprintf("no README found for %s", repo.Name))
			continue
		}
		log.Trace("fetched README", "repo", repo.Name, "bytes", len(text))
		readmes[repo.Name] = text
	}

	return readmes
}

// detectTechnologies probes known manifest paths in the top significant
// repositories. A missing manifest is expected and silent; a fetch failure
// degrades into the error list; a malformed manifest parses to nothing.
func (a *Analyzer) detectTechnologies(ctx context.Context, significant []model.Repository, analysis *model.Analysis) []model.TechnologyRecord {
	repos := significant
	if len(repos) > a.limits.ManifestRepoLimit {
		repos = repos[:a.limits.ManifestRepoLimit]
	}

	var records []model.TechnologyRecord
	for _, repo := range repos {
		for _, path := range techstack.ManifestPaths {
			text, err := a.source.GetFile(ctx, repo.Owner(), repo.Name, path)
			if err != nil {
				analysis.Errors = append(analysis.Errors,
					fmt.Sprintf("failed to fetch %s from %s: %v", path, repo.Name, err))
				continue
			}
			if text == "" {
				continue
			}
			found := techstack.Parse(path, text)
			log.Trace("parsed manifest", "repo", repo.Name, "path", path, "technologies", len(found))
			records = append(records, found...)
		}
	}
	return records
}
