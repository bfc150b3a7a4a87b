package sketchbook

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tolvera-labs/tolvera-sketch/internal/clierr"
	"github.com/tolvera-labs/tolvera-sketch/internal/logging"
	"github.com/tolvera-labs/tolvera-sketch/internal/manifest"
	"github.com/tolvera-labs/tolvera-sketch/internal/scaffold"
)

func newTestScaffolder(t *testing.T) *Scaffolder {
	t.Helper()
	s := NewScaffolder(logging.Discard())
	s.Now = func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) }
	return s
}

func TestCreate_TemplateCompleteness(t *testing.T) {
	dir := t.TempDir()
	s := newTestScaffolder(t)

	result, err := s.Create(Request{Name: "flock", Dir: dir, Template: true})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	want := filepath.Join(dir, "flock")
	if result.Path != want {
		t.Errorf("Path = %q, want %q", result.Path, want)
	}

	sketches, err := os.ReadDir(filepath.Join(want, "sketches"))
	if err != nil {
		t.Fatalf("sketches directory missing: %v", err)
	}
	if len(sketches) != 0 {
		t.Errorf("sketches directory should be empty, has %d entries", len(sketches))
	}
	for _, f := range []string{"README.md", "pyproject.toml", "main.py"} {
		assertNonEmptyFile(t, filepath.Join(want, f))
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	wantFiles := []string{"sketches/", "README.md", "main.py", "pyproject.toml"}
	if len(result.Files) != len(wantFiles) {
		t.Fatalf("Files = %v, want %v", result.Files, wantFiles)
	}
	for i := range wantFiles {
		if result.Files[i] != wantFiles[i] {
			t.Errorf("Files[%d] = %q, want %q", i, result.Files[i], wantFiles[i])
		}
	}
}

func TestCreate_WithoutManifest(t *testing.T) {
	dir := t.TempDir()
	s := newTestScaffolder(t)

	result, err := s.Create(Request{Name: "flock", Dir: dir, Template: true, NoManifest: true})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(result.Path, "pyproject.toml")); !os.IsNotExist(err) {
		t.Errorf("pyproject.toml should not exist, stat err = %v", err)
	}
	assertNonEmptyFile(t, filepath.Join(result.Path, "main.py"))
}

func TestCreate_NoTemplateIsBare(t *testing.T) {
	dir := t.TempDir()
	s := newTestScaffolder(t)

	result, err := s.Create(Request{Name: "bare", Dir: dir, Template: false})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	entries, err := os.ReadDir(result.Path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("bare sketchbook should be empty, got %d entries", len(entries))
	}
	if len(result.Files) != 0 {
		t.Errorf("Files = %v, want none", result.Files)
	}
}

func TestCreate_SecondCallRejected(t *testing.T) {
	dir := t.TempDir()
	s := newTestScaffolder(t)
	req := Request{Name: "flock", Dir: dir, Template: true}

	first, err := s.Create(req)
	if err != nil {
		t.Fatalf("first Create() error: %v", err)
	}
	readme := filepath.Join(first.Path, "README.md")
	before, err := os.ReadFile(readme)
	if err != nil {
		t.Fatal(err)
	}

	s.Now = func() time.Time { return time.Date(2030, 6, 6, 0, 0, 0, 0, time.UTC) }
	_, err = s.Create(req)
	if !clierr.Is(err, clierr.AlreadyExists) {
		t.Fatalf("second Create() error = %v, want AlreadyExists", err)
	}
	if !strings.Contains(err.Error(), first.Path) {
		t.Errorf("error should name the conflicting path: %v", err)
	}

	after, err := os.ReadFile(readme)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(before) {
		t.Error("README.md changed after rejected second Create")
	}
}

func TestCreate_ExistingFileIsAlreadyExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "taken"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := newTestScaffolder(t).Create(Request{Name: "taken", Dir: dir, Template: true})
	if !clierr.Is(err, clierr.AlreadyExists) {
		t.Fatalf("Create() error = %v, want AlreadyExists", err)
	}
}

func TestCreate_CreatesMissingAncestors(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "er")

	result, err := newTestScaffolder(t).Create(Request{Name: "flock", Dir: dir, Template: false})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if info, err := os.Stat(result.Path); err != nil || !info.IsDir() {
		t.Fatalf("sketchbook not created: %v", err)
	}
}

func TestCreate_DefaultsToWorkingDirectory(t *testing.T) {
	wd := t.TempDir()
	s := newTestScaffolder(t)
	s.Getwd = func() (string, error) { return wd, nil }

	result, err := s.Create(Request{Name: "here", Template: false})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if result.Path != filepath.Join(wd, "here") {
		t.Errorf("Path = %q, want under %q", result.Path, wd)
	}
}

func TestCreate_DefaultsToProcessWorkingDirectory(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)

	result, err := NewScaffolder(logging.Discard()).Create(Request{Name: "here", Template: false})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := os.Stat(result.Path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.Stat(filepath.Join(wd, "here"))
	if err != nil {
		t.Fatalf("sketchbook not created under working directory: %v", err)
	}
	if !os.SameFile(got, want) {
		t.Errorf("Path = %q, want it under %q", result.Path, wd)
	}
}

func TestCreate_GetwdFailure(t *testing.T) {
	s := newTestScaffolder(t)
	s.Getwd = func() (string, error) { return "", errors.New("cwd gone") }

	_, err := s.Create(Request{Name: "x"})
	if !clierr.Is(err, clierr.WriteFailure) {
		t.Fatalf("Create() error = %v, want WriteFailure", err)
	}
}

func TestCreate_RollsBackOnWriteFailure(t *testing.T) {
	dir := t.TempDir()
	s := newTestScaffolder(t)
	s.generate = func(data *scaffold.ScaffoldData, out string) (*scaffold.Result, error) {
		if err := os.WriteFile(filepath.Join(out, "README.md"), []byte("partial"), 0644); err != nil {
			t.Fatal(err)
		}
		return nil, errors.New("disk full")
	}

	_, err := s.Create(Request{Name: "flock", Dir: dir, Template: true})
	if !clierr.Is(err, clierr.WriteFailure) {
		t.Fatalf("Create() error = %v, want WriteFailure", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "flock")); !os.IsNotExist(statErr) {
		t.Errorf("partial sketchbook should be removed, stat err = %v", statErr)
	}

	// The name is free again once the failure is fixed.
	s.generate = scaffold.Generate
	if _, err := s.Create(Request{Name: "flock", Dir: dir, Template: true}); err != nil {
		t.Fatalf("retry Create() error: %v", err)
	}
}

func TestCreate_ManifestIdentifier(t *testing.T) {
	dir := t.TempDir()

	result, err := newTestScaffolder(t).Create(Request{Name: "My Cool Sketchbook", Dir: dir, Template: true})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	p, err := manifest.ParseFile(filepath.Join(result.Path, "pyproject.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Tool.Poetry.Name != "my-cool-sketchbook" {
		t.Errorf("manifest name = %q, want %q", p.Tool.Poetry.Name, "my-cool-sketchbook")
	}

	readme, err := os.ReadFile(filepath.Join(result.Path, "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(readme), "# My Cool Sketchbook Sketchbook") || !strings.Contains(string(readme), "Created on: 2025-01-02") {
		t.Errorf("README content:\n%s", readme)
	}
}

func TestCreate_PythonConstraint(t *testing.T) {
	s := newTestScaffolder(t)
	s.Python = "^3.12"

	result, err := s.Create(Request{Name: "flock", Dir: t.TempDir(), Template: true})
	if err != nil {
		t.Fatal(err)
	}
	p, err := manifest.ParseFile(filepath.Join(result.Path, "pyproject.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Tool.Poetry.Dependencies["python"] != "^3.12" {
		t.Errorf("python = %q", p.Tool.Poetry.Dependencies["python"])
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"flock", true},
		{"My Cool Sketchbook", true},
		{"", false},
		{"   ", false},
		{".", false},
		{"..", false},
		{"a/b", false},
	}
	for _, tt := range tests {
		err := ValidateName(tt.name)
		if tt.valid && err != nil {
			t.Errorf("ValidateName(%q) unexpected error: %v", tt.name, err)
		}
		if !tt.valid && !clierr.Is(err, clierr.InvalidName) {
			t.Errorf("ValidateName(%q) error = %v, want InvalidName", tt.name, err)
		}
	}
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
	if info.IsDir() || info.Size() == 0 {
		t.Errorf("%s should be a non-empty file", path)
	}
}
