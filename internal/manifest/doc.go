// Package manifest renders, parses and validates the pyproject.toml that a
// sketchbook ships with. Validation runs the parsed TOML through an embedded
// JSON Schema and checks the Python requirement is a usable version
// constraint.
package manifest
