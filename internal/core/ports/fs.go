package ports

import "os"

// FileSystemPort is the subset of disk operations the CLI needs to load
// input data and persist snapshots.
type FileSystemPort interface {
	WriteFile(filePath string, permission os.FileMode, contents []byte) error
	ReadFile(filePath string) ([]byte, error)
	Exists(filePath string) (bool, error)
}
