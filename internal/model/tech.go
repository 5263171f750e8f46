package model

// ManifestSource identifies which manifest format produced a technology record.
type ManifestSource string

const (
	SourcePackageJSON  ManifestSource = "package.json"
	SourceRequirements ManifestSource = "requirements.txt"
	SourcePyProject    ManifestSource = "pyproject.toml"
)

// TechnologyRecord is one detected technology, keyed by its canonical display
// name and deduplicated by name within a category.
type TechnologyRecord struct {
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Version  string         `json:"version,omitempty"`
	Source   ManifestSource `json:"source,omitempty"`
}
