package model

// Proficiency is a coarse skill tier derived from cumulative byte counts,
// not from any correctness or recency signal.
type Proficiency string

const (
	ProficiencyExpert       Proficiency = "Expert"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyFamiliar     Proficiency = "Familiar"
)

// LanguageStat aggregates one language across every repository of a profile.
type LanguageStat struct {
	Name        string      `json:"name"`
	TotalBytes  int64       `json:"totalBytes"`
	RepoCount   int         `json:"repoCount"`
	Percentage  float64     `json:"percentage"`
	Proficiency Proficiency `json:"proficiency"`
}

// LanguageReport is the result of aggregating language maps across a profile.
type LanguageReport struct {
	Languages       []LanguageStat              `json:"languages"`
	TotalBytes      int64                       `json:"totalBytes"`
	ByRepo          map[string]map[string]int64 `json:"byRepo,omitempty"`
	PrimaryLanguage string                      `json:"primaryLanguage,omitempty"`
	LanguageCount   int                         `json:"languageCount"`
}
