package platform

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")

	if err := WriteFileAtomic(path, []byte("print('hi')\n"), ExecutablePerm); err != nil {
		t.Fatalf("WriteFileAtomic() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "print('hi')\n" {
		t.Errorf("content = %q", got)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != ExecutablePerm {
			t.Errorf("permissions = %o, want %o", perm, ExecutablePerm)
		}
	}

	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFileAtomic(path, []byte("new"), FilePerm); err != nil {
		t.Fatalf("WriteFileAtomic() error: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWriteFileAtomic_MissingParent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "file.txt")

	if err := WriteFileAtomic(path, []byte("x"), FilePerm); err == nil {
		t.Fatal("expected error when parent directory is missing")
	}
}

func TestClaimDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "sketchbook")

	if err := ClaimDir(path, DirPerm); err != nil {
		t.Fatalf("ClaimDir() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s: %v", path, err)
	}

	err = ClaimDir(path, DirPerm)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("second ClaimDir() error = %v, want ErrExist", err)
	}
}

func TestClaimDir_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taken")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ClaimDir(path, DirPerm); !os.IsExist(err) {
		t.Errorf("ClaimDir() on a file error = %v, want IsExist", err)
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tolvera-tmp-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}
