package techstack

import "github.com/repofolio/repofolio/internal/model"

// ManifestPaths lists the file paths probed for dependency manifests,
// in probe order.
var ManifestPaths = []string{"package.json", "requirements.txt", "pyproject.toml"}

// Parse runs the parser matching the given manifest path. Unknown paths
// yield no technologies.
func Parse(path, text string) []model.TechnologyRecord {
	switch path {
	case "package.json":
		return ParsePackageJSON(text)
	case "requirements.txt":
		return ParseRequirements(text)
	case "pyproject.toml":
		return ParsePyProject(text)
	default:
		return nil
	}
}

// Categorize groups technology records by category, deduplicating by
// canonical name. The first occurrence of a name wins, so records from
// earlier manifests take precedence.
func Categorize(records []model.TechnologyRecord) map[string][]model.TechnologyRecord {
	categories := make(map[string][]model.TechnologyRecord)
	seen := make(map[string]bool)

	for _, rec := range records {
		if seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true
		categories[rec.Category] = append(categories[rec.Category], rec)
	}

	return categories
}
