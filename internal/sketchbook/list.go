package sketchbook

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/tolvera-labs/tolvera-sketch/internal/clierr"
	"github.com/tolvera-labs/tolvera-sketch/internal/scaffold"
)

// ListSketches returns the sketch file names in the sketches sub-directory
// of sketchbookPath, sorted byte-wise ascending (so "A.py" sorts before
// "a.py"). Only non-directory entries ending in ".py" (case-sensitive) are
// kept. A missing sketches directory, including one under a sketchbookPath
// that is not a directory, yields an empty result; any other read error is a
// clierr.ReadFailure.
func ListSketches(sketchbookPath string) ([]string, error) {
	sketchesPath := filepath.Join(sketchbookPath, scaffold.SketchesDir)

	entries, err := os.ReadDir(sketchesPath)
	if err != nil {
		if _, statErr := os.Stat(sketchesPath); statErr != nil && isMissing(statErr) {
			return []string{}, nil
		}
		return nil, clierr.Wrap(clierr.ReadFailure, "reading "+sketchesPath, err)
	}

	sketches := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), scaffold.SketchExt) {
			continue
		}
		sketches = append(sketches, e.Name())
	}
	sort.Strings(sketches)
	return sketches, nil
}

// Summary describes a sketchbook found by Discover.
type Summary struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Sketches int    `json:"sketches"`
	// Error is set when the sketchbook was found but could not be read.
	Error string `json:"error,omitempty"`
}

// Discover finds the sketchbooks directly under dir: sub-directories that
// contain a sketches directory. Results are sorted by name. A sub-directory
// that cannot be inspected is still returned, with Error set, so one bad
// entry does not hide the others.
func Discover(dir string) ([]Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, clierr.Wrap(clierr.ReadFailure, "reading "+dir, err)
	}

	summaries := []Summary{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		summary := Summary{Name: e.Name(), Path: path}
		info, err := os.Stat(filepath.Join(path, scaffold.SketchesDir))
		switch {
		case err != nil && isMissing(err):
			continue
		case err != nil:
			summary.Error = err.Error()
		case !info.IsDir():
			continue
		default:
			sketches, err := ListSketches(path)
			if err != nil {
				summary.Error = err.Error()
			}
			summary.Sketches = len(sketches)
		}
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

// isMissing reports whether err means the path does not exist, either
// directly or because a parent is a regular file.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
