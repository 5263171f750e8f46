package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	DefaultFormat string `yaml:"default_format,omitempty"`

	// Name patterns that exclude a repository from ranking regardless of
	// stars (dotfile/config repos) or only at zero stars (learning repos).
	// A trailing "*" makes a pattern a prefix match; otherwise patterns are
	// case-insensitive exact matches.
	DotfilePatterns  []string `yaml:"dotfile_patterns,omitempty"`
	LearningPatterns []string `yaml:"learning_patterns,omitempty"`

	// Top-level config sections
	Scoring *ScoringOverrides `yaml:"scoring,omitempty"`
	Limits  *LimitOverrides   `yaml:"limits,omitempty"`
}

// ScoringOverrides allows customizing the scoring factor weights.
// Each weight is a fraction of the total score; they should sum to 1.0.
type ScoringOverrides struct {
	Stars          *float64 `yaml:"stars,omitempty"`
	Forks          *float64 `yaml:"forks,omitempty"`
	RecentActivity *float64 `yaml:"recent_activity,omitempty"`
	CodeSize       *float64 `yaml:"code_size,omitempty"`
	HasReadme      *float64 `yaml:"has_readme,omitempty"`
	ReadmeQuality  *float64 `yaml:"readme_quality,omitempty"`
	HasLanguage    *float64 `yaml:"has_language,omitempty"`
	TopicCount     *float64 `yaml:"topic_count,omitempty"`
	IsOriginal     *float64 `yaml:"is_original,omitempty"`
}

// LimitOverrides - pipeline caps and thresholds
type LimitOverrides struct {
	MaxProjects       *int `yaml:"max_projects,omitempty"`
	MinScore          *int `yaml:"min_score,omitempty"`
	LanguageRepoLimit *int `yaml:"language_repo_limit,omitempty"`
	LanguageBatchSize *int `yaml:"language_batch_size,omitempty"`
	ReadmeRepoLimit   *int `yaml:"readme_repo_limit,omitempty"`
	ManifestRepoLimit *int `yaml:"manifest_repo_limit,omitempty"`
	QuotaFloor        *int `yaml:"quota_floor,omitempty"`
	SignificantMinKB  *int `yaml:"significant_min_kb,omitempty"`
}

// ScoreWeights defines the complete set of scoring factor weights
type ScoreWeights struct {
	Stars          float64
	Forks          float64
	RecentActivity float64
	CodeSize       float64
	HasReadme      float64
	ReadmeQuality  float64
	HasLanguage    float64
	TopicCount     float64
	IsOriginal     float64
}

// Limits defines the pipeline caps and thresholds
type Limits struct {
	// MaxProjects is the maximum number of ranked projects returned.
	MaxProjects int
	// MinScore drops scored repositories below this total score.
	MinScore int
	// LanguageRepoLimit bounds how many non-fork repos get language maps.
	LanguageRepoLimit int
	// LanguageBatchSize bounds burst concurrency of language fetches.
	LanguageBatchSize int
	// ReadmeRepoLimit caps how many significant repos get README fetches.
	ReadmeRepoLimit int
	// ManifestRepoLimit caps how many repos are probed for manifests.
	ManifestRepoLimit int
	// QuotaFloor stops optional fetching once remaining API quota drops
	// below it.
	QuotaFloor int
	// SignificantMinKB is the minimum size for a repo to count as
	// significant (eligible for README/manifest fetching).
	SignificantMinKB int
}

// DefaultScoreWeights returns the default scoring weights
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Stars:          0.20,
		Forks:          0.10,
		RecentActivity: 0.20,
		CodeSize:       0.10,
		HasReadme:      0.10,
		ReadmeQuality:  0.10,
		HasLanguage:    0.05,
		TopicCount:     0.05,
		IsOriginal:     0.10,
	}
}

// DefaultLimits returns the default pipeline limits
func DefaultLimits() Limits {
	return Limits{
		MaxProjects:       8,
		MinScore:          30,
		LanguageRepoLimit: 25,
		LanguageBatchSize: 5,
		ReadmeRepoLimit:   15,
		ManifestRepoLimit: 10,
		QuotaFloor:        10,
		SignificantMinKB:  10,
	}
}

// DefaultDotfilePatterns returns the name patterns that mark a repository
// as a dotfile/config repo. These exclusions apply regardless of stars.
func DefaultDotfilePatterns() []string {
	return []string{
		"dotfiles",
		"dotfiles-*",
		".github",
		".config",
		"config",
		"configs",
		"homebrew-*",
		"nixos-*",
	}
}

// DefaultLearningPatterns returns the name patterns that mark a repository
// as a learning/practice repo. These exclusions apply only at zero stars.
func DefaultLearningPatterns() []string {
	return []string{
		"test",
		"tests",
		"demo",
		"hello-world",
		"practice",
		"playground",
		"sandbox",
		"tutorial-*",
		"course-*",
		"learning-*",
		"exercise-*",
	}
}

// GetScoreWeights returns score weights with user overrides merged with defaults
func (c *Config) GetScoreWeights() ScoreWeights {
	weights := DefaultScoreWeights()

	if c.Scoring != nil {
		s := c.Scoring
		if s.Stars != nil {
			weights.Stars = *s.Stars
		}
		if s.Forks != nil {
			weights.Forks = *s.Forks
		}
		if s.RecentActivity != nil {
			weights.RecentActivity = *s.RecentActivity
		}
		if s.CodeSize != nil {
			weights.CodeSize = *s.CodeSize
		}
		if s.HasReadme != nil {
			weights.HasReadme = *s.HasReadme
		}
		if s.ReadmeQuality != nil {
			weights.ReadmeQuality = *s.ReadmeQuality
		}
		if s.HasLanguage != nil {
			weights.HasLanguage = *s.HasLanguage
		}
		if s.TopicCount != nil {
			weights.TopicCount = *s.TopicCount
		}
		if s.IsOriginal != nil {
			weights.IsOriginal = *s.IsOriginal
		}
	}

	return weights
}

// GetLimits returns pipeline limits with user overrides merged with defaults
func (c *Config) GetLimits() Limits {
	limits := DefaultLimits()

	if c.Limits != nil {
		l := c.Limits
		if l.MaxProjects != nil {
			limits.MaxProjects = *l.MaxProjects
		}
		if l.MinScore != nil {
			limits.MinScore = *l.MinScore
		}
		if l.LanguageRepoLimit != nil {
			limits.LanguageRepoLimit = *l.LanguageRepoLimit
		}
		if l.LanguageBatchSize != nil {
			limits.LanguageBatchSize = *l.LanguageBatchSize
		}
		if l.ReadmeRepoLimit != nil {
			limits.ReadmeRepoLimit = *l.ReadmeRepoLimit
		}
		if l.ManifestRepoLimit != nil {
			limits.ManifestRepoLimit = *l.ManifestRepoLimit
		}
		if l.QuotaFloor != nil {
			limits.QuotaFloor = *l.QuotaFloor
		}
		if l.SignificantMinKB != nil {
			limits.SignificantMinKB = *l.SignificantMinKB
		}
	}

	return limits
}

// GetDotfilePatterns returns the dotfile patterns, using defaults if not configured
func (c *Config) GetDotfilePatterns() []string {
	if len(c.DotfilePatterns) > 0 {
		return c.DotfilePatterns
	}
	return DefaultDotfilePatterns()
}

// GetLearningPatterns returns the learning patterns, using defaults if not configured
func (c *Config) GetLearningPatterns() []string {
	if len(c.LearningPatterns) > 0 {
		return c.LearningPatterns
	}
	return DefaultLearningPatterns()
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".repofolio"
	}
	return filepath.Join(configDir, "repofolio")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".repofolio.yaml"
}

// Load loads the configuration from disk.
// It first loads the global config from the XDG config directory, then merges
// any local .repofolio.yaml config on top (local values take precedence).
func Load() (*Config, error) {
	// Tokens may live in a local .env file; a missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		DefaultFormat: "table",
	}

	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}
		var localCfg Config
		if err := yaml.Unmarshal(data, &localCfg); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}
		cfg = mergeConfig(cfg, &localCfg)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "table"
	}

	return cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := &Config{}

	if local.DefaultFormat != "" {
		result.DefaultFormat = local.DefaultFormat
	} else {
		result.DefaultFormat = global.DefaultFormat
	}

	if len(local.DotfilePatterns) > 0 {
		result.DotfilePatterns = local.DotfilePatterns
	} else {
		result.DotfilePatterns = global.DotfilePatterns
	}

	if len(local.LearningPatterns) > 0 {
		result.LearningPatterns = local.LearningPatterns
	} else {
		result.LearningPatterns = global.LearningPatterns
	}

	result.Scoring = mergeScoringOverrides(global.Scoring, local.Scoring)
	result.Limits = mergeLimitOverrides(global.Limits, local.Limits)

	return result
}

func mergeScoringOverrides(global, local *ScoringOverrides) *ScoringOverrides {
	if global == nil && local == nil {
		return nil
	}
	result := &ScoringOverrides{}

	if global != nil {
		*result = *global
	}

	if local != nil {
		if local.Stars != nil {
			result.Stars = local.Stars
		}
		if local.Forks != nil {
			result.Forks = local.Forks
		}
		if local.RecentActivity != nil {
			result.RecentActivity = local.RecentActivity
		}
		if local.CodeSize != nil {
			result.CodeSize = local.CodeSize
		}
		if local.HasReadme != nil {
			result.HasReadme = local.HasReadme
		}
		if local.ReadmeQuality != nil {
			result.ReadmeQuality = local.ReadmeQuality
		}
		if local.HasLanguage != nil {
			result.HasLanguage = local.HasLanguage
		}
		if local.TopicCount != nil {
			result.TopicCount = local.TopicCount
		}
		if local.IsOriginal != nil {
			result.IsOriginal = local.IsOriginal
		}
	}

	return result
}

func mergeLimitOverrides(global, local *LimitOverrides) *LimitOverrides {
	if global == nil && local == nil {
		return nil
	}
	result := &LimitOverrides{}

	if global != nil {
		*result = *global
	}

	if local != nil {
		if local.MaxProjects != nil {
			result.MaxProjects = local.MaxProjects
		}
		if local.MinScore != nil {
			result.MinScore = local.MinScore
		}
		if local.LanguageRepoLimit != nil {
			result.LanguageRepoLimit = local.LanguageRepoLimit
		}
		if local.LanguageBatchSize != nil {
			result.LanguageBatchSize = local.LanguageBatchSize
		}
		if local.ReadmeRepoLimit != nil {
			result.ReadmeRepoLimit = local.ReadmeRepoLimit
		}
		if local.ManifestRepoLimit != nil {
			result.ManifestRepoLimit = local.ManifestRepoLimit
		}
		if local.QuotaFloor != nil {
			result.QuotaFloor = local.QuotaFloor
		}
		if local.SignificantMinKB != nil {
			result.SignificantMinKB = local.SignificantMinKB
		}
	}

	return result
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configDir := DefaultConfigDir()

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetGitHubToken returns the GitHub token from the GITHUB_TOKEN environment variable.
// Following 12-factor app best practices, tokens are only read from the environment.
func (c *Config) GetGitHubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

// GetOpenAIKey returns the API key used by the optional summary generator.
func (c *Config) GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// DefaultConfig returns a fully populated config with all default values.
// This is useful for generating a complete config file template.
func DefaultConfig() *Config {
	weights := DefaultScoreWeights()
	limits := DefaultLimits()

	return &Config{
		DefaultFormat:    "table",
		DotfilePatterns:  DefaultDotfilePatterns(),
		LearningPatterns: DefaultLearningPatterns(),
		Scoring: &ScoringOverrides{
			Stars:          &weights.Stars,
			Forks:          &weights.Forks,
			RecentActivity: &weights.RecentActivity,
			CodeSize:       &weights.CodeSize,
			HasReadme:      &weights.HasReadme,
			ReadmeQuality:  &weights.ReadmeQuality,
			HasLanguage:    &weights.HasLanguage,
			TopicCount:     &weights.TopicCount,
			IsOriginal:     &weights.IsOriginal,
		},
		Limits: &LimitOverrides{
			MaxProjects:       &limits.MaxProjects,
			MinScore:          &limits.MinScore,
			LanguageRepoLimit: &limits.LanguageRepoLimit,
			LanguageBatchSize: &limits.LanguageBatchSize,
			ReadmeRepoLimit:   &limits.ReadmeRepoLimit,
			ManifestRepoLimit: &limits.ManifestRepoLimit,
			QuotaFloor:        &limits.QuotaFloor,
			SignificantMinKB:  &limits.SignificantMinKB,
		},
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# repofolio configuration file
# See: repofolio config defaults  (for all available options)

# Output format: table, json or markdown
default_format: table

# Exclude repositories whose name matches these patterns ("*" suffix = prefix match)
# dotfile_patterns:
#   - dotfiles
#   - homebrew-*

# Override ranking limits (optional)
# limits:
#   max_projects: 8
#   min_score: 30

# Override scoring weights (optional, fractions summing to 1.0)
# scoring:
#   stars: 0.20
#   recent_activity: 0.20
`
}
