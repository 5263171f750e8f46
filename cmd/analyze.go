package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/repofolio/repofolio/config"
	"github.com/repofolio/repofolio/internal/analyzer"
	"github.com/repofolio/repofolio/internal/ghclient"
	"github.com/repofolio/repofolio/internal/log"
	"github.com/repofolio/repofolio/internal/output"
	"github.com/repofolio/repofolio/internal/summary"
)

// addAnalyzeFlags registers the analysis flags on the root command.
func addAnalyzeFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format (table, json, markdown)")
	cmd.Flags().IntVar(&opts.MaxProjects, "max-projects", 0, "Maximum number of ranked projects")
	cmd.Flags().IntVar(&opts.MinScore, "min-score", 0, "Minimum total score for ranked projects")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v, -vv, -vvv)")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "Generate an AI profile summary (requires OPENAI_API_KEY)")
	cmd.Flags().StringVar(&opts.Model, "model", "", "Completion model for the summary")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write output to file instead of stdout")
}

func runAnalyze(cmd *cobra.Command, username string, opts *Options) error {
	log.Initialize(opts.Verbosity, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cfg, opts)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := ghclient.NewClient(ctx, cfg.GetGitHubToken())
	if err != nil {
		return err
	}

	analyzerOpts := []analyzer.Option{
		analyzer.WithProgress(reportProgress),
	}
	if opts.Summary {
		if key := cfg.GetOpenAIKey(); key != "" {
			analyzerOpts = append(analyzerOpts, analyzer.WithSummarizer(summary.NewClient("", key, opts.Model)))
		} else {
			log.Debug("OPENAI_API_KEY not set, skipping summary generation")
		}
	}

	a := analyzer.New(client, cfg, analyzerOpts...)
	analysis, err := a.Analyze(ctx, username)
	if err != nil {
		return presentError(err, username)
	}

	for _, e := range analysis.Errors {
		log.Warn("analysis degraded", "detail", e)
	}

	w := os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				log.Error("failed to close output file", "path", opts.Output, "error", cerr)
			}
		}()
		w = f
	}

	format := opts.Format
	if format == "" {
		format = cfg.DefaultFormat
	}
	return output.NewFormatter(output.Format(format)).Format(analysis, w)
}

// applyFlagOverrides lets command-line flags win over config file values.
func applyFlagOverrides(cfg *config.Config, opts *Options) {
	if opts.MaxProjects <= 0 && opts.MinScore <= 0 {
		return
	}
	if cfg.Limits == nil {
		cfg.Limits = &config.LimitOverrides{}
	}
	if opts.MaxProjects > 0 {
		cfg.Limits.MaxProjects = &opts.MaxProjects
	}
	if opts.MinScore > 0 {
		cfg.Limits.MinScore = &opts.MinScore
	}
}

// reportProgress surfaces orchestrator state transitions as progress lines.
func reportProgress(state analyzer.State, message string) {
	switch state {
	case analyzer.StateComplete, analyzer.StateError:
		log.ProgressClear()
	default:
		log.Progress("%s...", message)
	}
}

// presentError maps pipeline failures to one clear user-facing message.
func presentError(err error, username string) error {
	switch {
	case errors.Is(err, ghclient.ErrNotFound):
		return fmt.Errorf("GitHub user %q was not found", username)
	case errors.Is(err, ghclient.ErrRateLimited):
		_, _, resetAt, _ := ghclient.GetRateLimitStatus()
		if !resetAt.IsZero() {
			return fmt.Errorf("GitHub API rate limit exceeded, resets in %s",
				time.Until(resetAt).Round(time.Second))
		}
		return fmt.Errorf("GitHub API rate limit exceeded")
	default:
		return err
	}
}
