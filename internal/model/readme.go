package model

// ReadmeQuality holds the structural signals detected in a README plus the
// derived completeness score. Pure function of the README text.
type ReadmeQuality struct {
	HasReadme       bool `json:"hasReadme"`
	HasTitle        bool `json:"hasTitle"`
	HasDescription  bool `json:"hasDescription"`
	HasInstallation bool `json:"hasInstallation"`
	HasUsage        bool `json:"hasUsage"`
	HasCodeBlocks   bool `json:"hasCodeBlocks"`
	HasBadges       bool `json:"hasBadges"`
	HasScreenshots  bool `json:"hasScreenshots"`
	HasLicense      bool `json:"hasLicense"`
	HasContributing bool `json:"hasContributing"`

	LineCount int `json:"lineCount"`
	WordCount int `json:"wordCount"`

	// Score is 0-100.
	Score int `json:"score"`
}
