package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/tolvera-labs/tolvera-sketch/internal/manifest"
	"github.com/tolvera-labs/tolvera-sketch/internal/platform"
)

// Layout conventions shared with the sketch lister.
const (
	SketchesDir    = "sketches"
	EntryPoint     = "main.py"
	ReadmeFile     = "README.md"
	SketchExt      = ".py"
	templateSet    = "sketchbook"
	templateSuffix = ".tmpl"
)

// ScaffoldData holds all template variables available to scaffold templates.
type ScaffoldData struct {
	Name         string // Display name, e.g. "My Cool Sketchbook"
	ProjectID    string // Derived: "my-cool-sketchbook"
	Created      string // YYYY-MM-DD
	SketchesDir  string
	EntryPoint   string
	Extension    string
	Manifest     bool   // Write pyproject.toml
	ManifestFile string
	Python       string // Python constraint for the manifest
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewScaffoldData creates a ScaffoldData with derived fields populated.
func NewScaffoldData(name string, created time.Time, withManifest bool, python string) *ScaffoldData {
	return &ScaffoldData{
		Name:         name,
		ProjectID:    manifest.ProjectID(name),
		Created:      created.Format("2006-01-02"),
		SketchesDir:  SketchesDir,
		EntryPoint:   EntryPoint,
		Extension:    SketchExt,
		Manifest:     withManifest,
		ManifestFile: manifest.FileName,
		Python:       python,
	}
}

// Generate renders the sketchbook templates into outputDir, which must
// already exist. Existing files are never overwritten. When data.Manifest is
// set the manifest is written and validated; validation problems are
// returned as warnings, not errors.
func Generate(data *ScaffoldData, outputDir string) (*Result, error) {
	templatesDir := path.Join("scaffolds", templateSet)

	entries, err := fs.ReadDir(scaffoldFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", templateSet, err)
	}

	result := &Result{OutputDir: outputDir}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := path.Join(templatesDir, entry.Name())
		tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		outName := strings.TrimSuffix(entry.Name(), templateSuffix)

		tmpl, err := template.New(entry.Name()).Option("missingkey=error").Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		perm := platform.FilePerm
		if outName == data.EntryPoint {
			perm = platform.ExecutablePerm
		}
		if err := writeNew(filepath.Join(outputDir, outName), buf.Bytes(), perm); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, outName)
	}

	if data.Manifest {
		warnings, err := writeManifest(data, outputDir)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, data.ManifestFile)
		result.Warnings = append(result.Warnings, warnings...)
	}

	return result, nil
}

func writeManifest(data *ScaffoldData, outputDir string) ([]string, error) {
	body, err := manifest.Render(manifest.New(data.Name, data.Python))
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(outputDir, data.ManifestFile)
	if err := writeNew(outPath, body, platform.FilePerm); err != nil {
		return nil, err
	}

	var warnings []string
	valResult, valErr := manifest.ValidateFile(outPath)
	if valErr != nil {
		warnings = append(warnings, fmt.Sprintf("Could not validate %s: %v", data.ManifestFile, valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			warnings = append(warnings, data.ManifestFile+" "+issue.String())
		}
	}
	return warnings, nil
}

// writeNew writes a file atomically, refusing to replace an existing one.
func writeNew(outPath string, body []byte, perm os.FileMode) error {
	if _, err := os.Lstat(outPath); err == nil {
		return fmt.Errorf("refusing to overwrite existing file %s", outPath)
	}
	if err := platform.WriteFileAtomic(outPath, body, perm); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
