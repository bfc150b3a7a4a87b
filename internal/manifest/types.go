package manifest

import "strings"

// FileName is the manifest written into every templated sketchbook.
const FileName = "pyproject.toml"

// Defaults for a fresh sketchbook manifest.
const (
	DefaultVersion      = "0.1.0"
	DefaultDescription  = "A tolvera sketchbook"
	DefaultBuildBackend = "poetry.core.masonry.api"
)

// PyProject is the subset of pyproject.toml a sketchbook uses.
type PyProject struct {
	Tool        Tool        `toml:"tool" json:"tool"`
	BuildSystem BuildSystem `toml:"build-system" json:"build-system"`
}

// Tool holds the [tool] table.
type Tool struct {
	Poetry Poetry `toml:"poetry" json:"poetry"`
}

// Poetry holds the [tool.poetry] table.
type Poetry struct {
	Name            string            `toml:"name" json:"name"`
	Version         string            `toml:"version" json:"version"`
	Description     string            `toml:"description" json:"description"`
	Readme          string            `toml:"readme" json:"readme"`
	Packages        []string          `toml:"packages" json:"packages"`
	Dependencies    map[string]string `toml:"dependencies" json:"dependencies"`
	DevDependencies map[string]string `toml:"dev-dependencies" json:"dev-dependencies"`
}

// BuildSystem holds the [build-system] table.
type BuildSystem struct {
	Requires     []string `toml:"requires" json:"requires"`
	BuildBackend string   `toml:"build-backend" json:"build-backend"`
}

// ProjectID derives the package identifier from a display name: lowercased,
// spaces replaced by hyphens. "My Cool Sketchbook" → "my-cool-sketchbook".
func ProjectID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// New returns the manifest for a sketchbook called name requiring the given
// Python constraint.
func New(name, python string) *PyProject {
	return &PyProject{
		Tool: Tool{Poetry: Poetry{
			Name:         ProjectID(name),
			Version:      DefaultVersion,
			Description:  DefaultDescription,
			Readme:       "README.md",
			Packages:     []string{},
			Dependencies: map[string]string{"python": python},
			DevDependencies: map[string]string{
				"black": "^23.3.0",
				"isort": "^5.12.0",
			},
		}},
		BuildSystem: BuildSystem{
			Requires:     []string{"poetry-core"},
			BuildBackend: DefaultBuildBackend,
		},
	}
}
