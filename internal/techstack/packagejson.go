// Package techstack detects technologies from dependency manifest files.
package techstack

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/repofolio/repofolio/internal/model"
)

type packageJSON struct {
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// ParsePackageJSON extracts known technologies from package.json text.
// Malformed input yields an empty result rather than an error; a manifest
// that cannot be parsed simply contributes no technologies.
func ParsePackageJSON(text string) []model.TechnologyRecord {
	var manifest packageJSON
	if err := json.Unmarshal([]byte(text), &manifest); err != nil {
		return nil
	}

	// Merge dependency groups; production versions win over dev/peer.
	deps := make(map[string]string)
	for _, group := range []map[string]string{
		manifest.PeerDependencies,
		manifest.DevDependencies,
		manifest.Dependencies,
	} {
		for name, version := range group {
			deps[name] = version
		}
	}

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	var records []model.TechnologyRecord
	seen := make(map[string]bool)
	for _, name := range names {
		info, ok := npmTechnologies[name]
		if !ok {
			continue
		}
		if seen[info.name] {
			continue
		}
		seen[info.name] = true
		records = append(records, model.TechnologyRecord{
			Name:     info.name,
			Category: info.category,
			Version:  stripVersionRange(deps[name]),
			Source:   model.SourcePackageJSON,
		})
	}

	return records
}

// stripVersionRange removes leading range operators like ^ and ~ so the
// recorded version is the bare number.
func stripVersionRange(version string) string {
	version = strings.TrimSpace(version)
	version = strings.TrimLeft(version, "^~>=< ")
	return version
}
