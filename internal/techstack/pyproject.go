package techstack

import (
	"sort"
	"strings"

	"github.com/repofolio/repofolio/internal/model"
)

// ParsePyProject extracts known technologies from pyproject.toml text.
// It does not fully parse TOML: it locates the dependencies array by text
// search and matches known package names by case-insensitive containment
// inside that block, which is enough for detection purposes.
func ParsePyProject(text string) []model.TechnologyRecord {
	block := dependenciesBlock(text)
	if block == "" {
		return nil
	}
	block = strings.ToLower(block)

	names := make([]string, 0, len(pythonTechnologies))
	for name := range pythonTechnologies {
		names = append(names, name)
	}
	sort.Strings(names)

	var records []model.TechnologyRecord
	seen := make(map[string]bool)
	for _, name := range names {
		if !strings.Contains(block, name) {
			continue
		}
		info := pythonTechnologies[name]
		if seen[info.name] {
			continue
		}
		seen[info.name] = true
		records = append(records, model.TechnologyRecord{
			Name:     info.name,
			Category: info.category,
			Source:   model.SourcePyProject,
		})
	}

	return records
}

// dependenciesBlock returns the text inside the first `dependencies = [...]`
// array, or "" when no such block exists.
func dependenciesBlock(text string) string {
	idx := strings.Index(text, "dependencies")
	for idx >= 0 {
		rest := text[idx+len("dependencies"):]
		trimmed := strings.TrimLeft(rest, " \t")
		if strings.HasPrefix(trimmed, "=") {
			trimmed = strings.TrimLeft(trimmed[1:], " \t\r\n")
			if strings.HasPrefix(trimmed, "[") {
				if end := strings.Index(trimmed, "]"); end >= 0 {
					return trimmed[1:end]
				}
				return trimmed[1:]
			}
		}
		next := strings.Index(text[idx+1:], "dependencies")
		if next < 0 {
			return ""
		}
		idx = idx + 1 + next
	}
	return ""
}
