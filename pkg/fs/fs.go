package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalFileSystem reads CLI input files and persists snapshots on the
// local disk.
type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Writes contents through a temp file in the target directory followed by
// a rename, so a crash never leaves a half written snapshot behind.
func (lfs *LocalFileSystem) WriteFile(filePath string, permission os.FileMode, contents []byte) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error in creating all directories %s : %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".memfile-*")
	if err != nil {
		return fmt.Errorf("error creating temp file in %s : %w", dir, err)
	}

	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(contents); err != nil {
		return fmt.Errorf("error writing temp file %s : %w", tmpPath, err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("error syncing temp file %s : %w", tmpPath, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp file %s : %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("error renaming %s to %s : %w", tmpPath, filePath, err)
	}
	committed = true

	return os.Chmod(filePath, permission)
}

// Read file contents.
func (lfs *LocalFileSystem) ReadFile(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(file string) (bool, error) {
	_, err := os.Stat(file)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
