package config

import (
	"math"
	"testing"
)

func TestDefaultScoreWeightsSumToOne(t *testing.T) {
	w := DefaultScoreWeights()
	sum := w.Stars + w.Forks + w.RecentActivity + w.CodeSize + w.HasReadme +
		w.ReadmeQuality + w.HasLanguage + w.TopicCount + w.IsOriginal
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("default weights sum = %v, want 1.0", sum)
	}
}

func TestGetScoreWeightsOverrides(t *testing.T) {
	stars := 0.5
	cfg := &Config{
		Scoring: &ScoringOverrides{Stars: &stars},
	}

	w := cfg.GetScoreWeights()
	if w.Stars != 0.5 {
		t.Errorf("Stars = %v, want 0.5", w.Stars)
	}
	// Unset fields keep defaults
	if w.Forks != DefaultScoreWeights().Forks {
		t.Errorf("Forks = %v, want default %v", w.Forks, DefaultScoreWeights().Forks)
	}
}

func TestGetLimitsOverrides(t *testing.T) {
	maxProjects := 3
	quotaFloor := 50
	cfg := &Config{
		Limits: &LimitOverrides{
			MaxProjects: &maxProjects,
			QuotaFloor:  &quotaFloor,
		},
	}

	l := cfg.GetLimits()
	if l.MaxProjects != 3 {
		t.Errorf("MaxProjects = %d, want 3", l.MaxProjects)
	}
	if l.QuotaFloor != 50 {
		t.Errorf("QuotaFloor = %d, want 50", l.QuotaFloor)
	}
	if l.ReadmeRepoLimit != DefaultLimits().ReadmeRepoLimit {
		t.Errorf("ReadmeRepoLimit = %d, want default %d", l.ReadmeRepoLimit, DefaultLimits().ReadmeRepoLimit)
	}
}

func TestMergeConfigLocalWins(t *testing.T) {
	localStars := 0.3
	global := &Config{
		DefaultFormat:   "json",
		DotfilePatterns: []string{"dotfiles"},
	}
	local := &Config{
		DefaultFormat: "markdown",
		Scoring:       &ScoringOverrides{Stars: &localStars},
	}

	merged := mergeConfig(global, local)

	if merged.DefaultFormat != "markdown" {
		t.Errorf("DefaultFormat = %q, want %q", merged.DefaultFormat, "markdown")
	}
	// Local has no patterns, global's are preserved
	if len(merged.DotfilePatterns) != 1 || merged.DotfilePatterns[0] != "dotfiles" {
		t.Errorf("DotfilePatterns = %v, want [dotfiles]", merged.DotfilePatterns)
	}
	if merged.Scoring == nil || merged.Scoring.Stars == nil || *merged.Scoring.Stars != 0.3 {
		t.Errorf("Scoring.Stars not merged from local")
	}
}

func TestPatternGettersFallBackToDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetDotfilePatterns(); len(got) == 0 {
		t.Error("expected default dotfile patterns")
	}
	if got := cfg.GetLearningPatterns(); len(got) == 0 {
		t.Error("expected default learning patterns")
	}

	cfg.DotfilePatterns = []string{"my-config"}
	got := cfg.GetDotfilePatterns()
	if len(got) != 1 || got[0] != "my-config" {
		t.Errorf("GetDotfilePatterns() = %v, want [my-config]", got)
	}
}
