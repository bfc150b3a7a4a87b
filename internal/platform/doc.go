// Package platform provides the cross-platform filesystem primitives the
// scaffolder builds on: an exclusive directory claim, atomic file writes via
// temp file + rename, and permission changes that are a no-op on Windows.
package platform
