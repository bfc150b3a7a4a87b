package sketchbook

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tolvera-labs/tolvera-sketch/internal/clierr"
	"github.com/tolvera-labs/tolvera-sketch/internal/config"
	"github.com/tolvera-labs/tolvera-sketch/internal/logging"
	"github.com/tolvera-labs/tolvera-sketch/internal/platform"
	"github.com/tolvera-labs/tolvera-sketch/internal/scaffold"
)

// Request describes one sketchbook to create. In template mode the manifest
// is written unless NoManifest is set.
type Request struct {
	Name       string
	Dir        string // Parent directory; empty means the working directory.
	Template   bool   // Write template files beyond the bare directory.
	NoManifest bool   // Skip pyproject.toml.
}

// Result describes a created sketchbook.
type Result struct {
	Path     string
	Files    []string // Files written, relative to Path.
	Warnings []string
}

// Scaffolder creates sketchbooks.
type Scaffolder struct {
	Logger *slog.Logger
	Python string           // Python constraint for generated manifests.
	Now    func() time.Time // Clock for the README creation date.
	Getwd  func() (string, error)

	generate func(*scaffold.ScaffoldData, string) (*scaffold.Result, error)
}

// NewScaffolder returns a Scaffolder with the default Python constraint, the
// wall clock and os.Getwd.
func NewScaffolder(logger *slog.Logger) *Scaffolder {
	return &Scaffolder{
		Logger: logger,
		Python: config.DefaultPython,
		Now:    time.Now,
		Getwd:  os.Getwd,

		generate: scaffold.Generate,
	}
}

// ValidateName rejects names that cannot be used as a single directory name.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return clierr.New(clierr.InvalidName, "sketchbook name must not be empty")
	case name == "." || name == "..":
		return clierr.Newf(clierr.InvalidName, "invalid sketchbook name %q", name)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return clierr.Newf(clierr.InvalidName, "invalid sketchbook name %q: must not contain a path separator", name)
	}
	return nil
}

// Create makes the sketchbook described by req.
//
// It fails with clierr.AlreadyExists if the target path exists, without
// touching it, and with clierr.WriteFailure on any other I/O error, in which
// case the partially written sketchbook directory is removed.
func (s *Scaffolder) Create(req Request) (*Result, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}

	dir := req.Dir
	if dir == "" {
		wd, err := s.Getwd()
		if err != nil {
			return nil, clierr.Wrap(clierr.WriteFailure, "resolving current directory", err)
		}
		dir = wd
	}
	path := filepath.Join(dir, req.Name)
	logger := s.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	log := logger.With("path", path)

	if err := platform.ClaimDir(path, platform.DirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, clierr.Newf(clierr.AlreadyExists, "sketchbook %q already exists at %s", req.Name, path)
		}
		return nil, clierr.Wrap(clierr.WriteFailure, "creating sketchbook directory "+path, err)
	}
	log.Debug("claimed sketchbook directory")

	result := &Result{Path: path}
	if !req.Template {
		log.Info("created bare sketchbook")
		return result, nil
	}

	files, warnings, err := s.populate(req, path)
	if err != nil {
		if rmErr := os.RemoveAll(path); rmErr != nil {
			log.Warn("rollback failed", "error", rmErr)
		} else {
			log.Debug("rolled back partial sketchbook")
		}
		return nil, clierr.Wrap(clierr.WriteFailure, "creating sketchbook template", err)
	}

	result.Files = files
	result.Warnings = warnings
	for _, w := range warnings {
		log.Debug("manifest check", "warning", w)
	}
	log.Info("created sketchbook", "files", len(files))
	return result, nil
}

func (s *Scaffolder) populate(req Request, path string) ([]string, []string, error) {
	if err := os.Mkdir(filepath.Join(path, scaffold.SketchesDir), platform.DirPerm); err != nil {
		return nil, nil, fmt.Errorf("creating %s directory: %w", scaffold.SketchesDir, err)
	}

	data := scaffold.NewScaffoldData(req.Name, s.Now(), !req.NoManifest, s.Python)
	generate := s.generate
	if generate == nil {
		generate = scaffold.Generate
	}
	gen, err := generate(data, path)
	if err != nil {
		return nil, nil, err
	}

	files := append([]string{scaffold.SketchesDir + "/"}, gen.Files...)
	return files, gen.Warnings, nil
}
