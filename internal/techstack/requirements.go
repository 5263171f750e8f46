package techstack

import (
	"regexp"
	"strings"

	"github.com/repofolio/repofolio/internal/model"
)

// requirementRe splits a requirements.txt line into a package name and an
// optional version constraint.
var requirementRe = regexp.MustCompile(`^([A-Za-z0-9_.-]+)(?:\[[^\]]*\])?\s*(?:(==|>=|<=|~=|!=|>|<)\s*([^;,\s]+))?`)

// ParseRequirements extracts known technologies from requirements.txt text.
// Comment lines, blank lines and pip options are skipped.
func ParseRequirements(text string) []model.TechnologyRecord {
	var records []model.TechnologyRecord
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		m := requirementRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.ToLower(m[1])
		info, ok := pythonTechnologies[name]
		if !ok {
			continue
		}
		if seen[info.name] {
			continue
		}
		seen[info.name] = true

		version := ""
		if m[2] == "==" || m[2] == ">=" || m[2] == "<=" || m[2] == "~=" {
			version = m[3]
		}
		records = append(records, model.TechnologyRecord{
			Name:     info.name,
			Category: info.category,
			Version:  version,
			Source:   model.SourceRequirements,
		})
	}

	return records
}
