// Package cli defines the Cobra command tree for the tolvera-sketch CLI.
// NewRootCmd builds the whole tree from an explicit App value, with one file
// per command. Commands only parse flags, format output and map errors;
// scaffolding and listing live in the sketchbook package.
package cli
