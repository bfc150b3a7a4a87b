// Package sketchbook creates sketchbook directories and enumerates the
// sketches inside them.
//
// A sketchbook is a directory holding a "sketches" sub-directory of Python
// scripts, optionally accompanied by a README.md, a main.py entry point and a
// pyproject.toml manifest. Creation claims the target directory exclusively
// and is all-or-nothing: if any template file fails to write, the freshly
// created directory is removed again.
package sketchbook
