// Package langstats aggregates per-repository language byte counts into a
// profile-wide report with proficiency tiers.
package langstats

import (
	"math"
	"sort"

	"github.com/repofolio/repofolio/internal/model"
)

// Byte thresholds for proficiency tiers.
const (
	expertBytes       = 500_000
	advancedBytes     = 100_000
	intermediateBytes = 25_000
	beginnerBytes     = 5_000
)

// Aggregate sums language byte counts across all repositories.
// Zero-byte entries are dropped before aggregation, so a language that only
// appears with 0 bytes contributes neither to totals nor to the language count.
func Aggregate(byRepo map[string]map[string]int64) model.LanguageReport {
	totals := make(map[string]int64)
	repoCounts := make(map[string]int)
	var grandTotal int64

	for _, langs := range byRepo {
		for name, bytes := range langs {
			if bytes <= 0 {
				continue
			}
			totals[name] += bytes
			repoCounts[name]++
			grandTotal += bytes
		}
	}

	stats := make([]model.LanguageStat, 0, len(totals))
	for name, bytes := range totals {
		pct := 0.0
		if grandTotal > 0 {
			pct = float64(bytes) / float64(grandTotal) * 100
		}
		stats = append(stats, model.LanguageStat{
			Name:        name,
			TotalBytes:  bytes,
			RepoCount:   repoCounts[name],
			Percentage:  pct,
			Proficiency: proficiencyFor(bytes),
		})
	}

	// Descending by bytes; name breaks ties so output is deterministic.
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalBytes != stats[j].TotalBytes {
			return stats[i].TotalBytes > stats[j].TotalBytes
		}
		return stats[i].Name < stats[j].Name
	})

	report := model.LanguageReport{
		Languages:     stats,
		TotalBytes:    grandTotal,
		ByRepo:        byRepo,
		LanguageCount: len(stats),
	}
	if len(stats) > 0 {
		report.PrimaryLanguage = stats[0].Name
	}
	return report
}

func proficiencyFor(bytes int64) model.Proficiency {
	switch {
	case bytes >= expertBytes:
		return model.ProficiencyExpert
	case bytes >= advancedBytes:
		return model.ProficiencyAdvanced
	case bytes >= intermediateBytes:
		return model.ProficiencyIntermediate
	case bytes >= beginnerBytes:
		return model.ProficiencyBeginner
	default:
		return model.ProficiencyFamiliar
	}
}

// DefaultMinSkillPercentage is the share of total bytes a language needs to
// count as a skill.
const DefaultMinSkillPercentage = 2.0

// SkillsFromLanguages maps languages at or above the percentage threshold to
// skill records, with a category looked up from the static language table.
func SkillsFromLanguages(languages []model.LanguageStat, minPercentage float64) []model.Skill {
	skills := make([]model.Skill, 0, len(languages))
	for _, lang := range languages {
		if lang.Percentage < minPercentage {
			continue
		}
		skills = append(skills, model.Skill{
			Name:        lang.Name,
			Category:    CategoryFor(lang.Name),
			Proficiency: lang.Proficiency,
			Percentage:  int(math.Round(lang.Percentage)),
		})
	}
	return skills
}

// languageCategories maps well-known language names to CV categories.
var languageCategories = map[string]string{
	"C":                "Systems Programming",
	"C++":              "Systems Programming",
	"Rust":             "Systems Programming",
	"Zig":              "Systems Programming",
	"Assembly":         "Systems Programming",
	"Go":               "Backend Development",
	"Java":             "Backend Development",
	"C#":               "Backend Development",
	"PHP":              "Backend Development",
	"Ruby":             "Backend Development",
	"Python":           "Backend Development",
	"Elixir":           "Backend Development",
	"JavaScript":       "Frontend Development",
	"TypeScript":       "Frontend Development",
	"HTML":             "Frontend Development",
	"CSS":              "Frontend Development",
	"Vue":              "Frontend Development",
	"Svelte":           "Frontend Development",
	"Swift":            "Mobile Development",
	"Kotlin":           "Mobile Development",
	"Dart":             "Mobile Development",
	"Objective-C":      "Mobile Development",
	"R":                "Data Science",
	"Julia":            "Data Science",
	"MATLAB":           "Data Science",
	"Jupyter Notebook": "Data Science",
	"Shell":            "DevOps",
	"PowerShell":       "DevOps",
	"Dockerfile":       "DevOps",
	"HCL":              "DevOps",
	"Makefile":         "DevOps",
	"Nix":              "DevOps",
	"Haskell":          "Functional Programming",
	"OCaml":            "Functional Programming",
	"Erlang":           "Functional Programming",
	"Clojure":          "Functional Programming",
	"F#":               "Functional Programming",
	"Elm":              "Functional Programming",
	"Scala":            "Functional Programming",
	"PLpgSQL":          "Databases",
	"PLSQL":            "Databases",
	"TSQL":             "Databases",
	"SQL":              "Databases",
}

// CategoryFor returns the CV category for a language name.
// Languages absent from the table fall back to a generic grouping.
func CategoryFor(language string) string {
	if cat, ok := languageCategories[language]; ok {
		return cat
	}
	return "Programming Languages"
}
