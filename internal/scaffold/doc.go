// Package scaffold renders the files of a new sketchbook from embedded
// templates: README.md, the main.py entry point and, optionally, the
// pyproject.toml manifest, which is validated after it is written.
package scaffold
