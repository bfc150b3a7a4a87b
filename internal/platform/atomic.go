package platform

import (
	"os"
	"path/filepath"
)

const tempPattern = ".tolvera-tmp-*"

// WriteFileAtomic writes data to path using a temp file in the same
// directory followed by a rename, so readers never see a half-written file.
// The parent directory must exist. On failure the temp file is removed and
// any existing file at path is left unchanged.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return err
	}
	tmpPath := f.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}

// ClaimDir creates every missing ancestor of path and then path itself.
// Unlike os.MkdirAll it fails with an error satisfying os.IsExist when path
// is already present, whether as a directory or a file.
func ClaimDir(path string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), perm); err != nil {
		return err
	}
	return os.Mkdir(path, perm)
}
