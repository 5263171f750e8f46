package model

import "time"

// ScoreBreakdown holds the named sub-scores of one repository, each 0-100.
type ScoreBreakdown struct {
	Stars          int `json:"stars"`
	Forks          int `json:"forks"`
	RecentActivity int `json:"recentActivity"`
	CodeSize       int `json:"codeSize"`
	HasReadme      int `json:"hasReadme"`
	ReadmeQuality  int `json:"readmeQuality"`
	HasLanguage    int `json:"hasLanguage"`
	TopicCount     int `json:"topicCount"`
	IsOriginal     int `json:"isOriginal"`
}

// ScoredRepository is a repository plus its score breakdown and the
// description extracted for display. Created once, immutable.
type ScoredRepository struct {
	Repository
	TotalScore           int            `json:"totalScore"`
	Breakdown            ScoreBreakdown `json:"breakdown"`
	Readme               ReadmeQuality  `json:"readme"`
	ExtractedDescription string         `json:"extractedDescription,omitempty"`
}

// Skill is one entry in the merged skills list, unique by lower-cased name.
type Skill struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Proficiency Proficiency `json:"proficiency,omitempty"`
	Percentage  int         `json:"percentage,omitempty"`
}

// Statistics are the aggregate numbers computed at the end of a run.
type Statistics struct {
	TotalRepos      int     `json:"totalRepos"`
	OriginalRepos   int     `json:"originalRepos"`
	ForkedRepos     int     `json:"forkedRepos"`
	TotalStars      int     `json:"totalStars"`
	TotalForks      int     `json:"totalForks"`
	Followers       int     `json:"followers"`
	Following       int     `json:"following"`
	RecentlyUpdated int     `json:"recentlyUpdated"`
	YearsActive     int     `json:"yearsActive"`
	AvgStarsPerRepo float64 `json:"avgStarsPerRepo"`
	PrimaryLanguage string  `json:"primaryLanguage,omitempty"`
	LanguageCount   int     `json:"languageCount"`
	TechnologyCount int     `json:"technologyCount"`
}

// Analysis is the top-level aggregate built by one orchestrator invocation.
// It is mutated in place by each pipeline stage and must not be shared
// across concurrent analyses.
type Analysis struct {
	Username     string                        `json:"username"`
	Profile      Profile                       `json:"profile"`
	Repositories []Repository                  `json:"repositories"`
	Projects     []ScoredRepository            `json:"projects"`
	Languages    LanguageReport                `json:"languages"`
	Technologies map[string][]TechnologyRecord `json:"technologies"`
	Skills       []Skill                       `json:"skills"`
	Statistics   Statistics                    `json:"statistics"`
	Summary      string                        `json:"summary,omitempty"`
	Errors       []string                      `json:"errors,omitempty"`
	GeneratedAt  time.Time                     `json:"generatedAt"`
}
