package analyzer

import (
	"sort"
	"strings"

	"github.com/repofolio/repofolio/internal/model"
)

// mergeSkills combines language-derived and technology-derived skills into
// one list, deduplicating case-insensitively by name. Language skills come
// first, so their category and proficiency attribution wins on collision.
func mergeSkills(languageSkills []model.Skill, technologies map[string][]model.TechnologyRecord) []model.Skill {
	seen := make(map[string]bool, len(languageSkills))
	merged := make([]model.Skill, 0, len(languageSkills))

	for _, skill := range languageSkills {
		key := strings.ToLower(skill.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, skill)
	}

	// Map iteration order is random; sort categories for stable output.
	categories := make([]string, 0, len(technologies))
	for category := range technologies {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		for _, record := range technologies[category] {
			key := strings.ToLower(record.Name)
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, model.Skill{
				Name:     record.Name,
				Category: record.Category,
			})
		}
	}

	return merged
}
