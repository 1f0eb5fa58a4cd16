package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies the failures that can occur around a file
// entity: loading its input, compressing or decoding its snapshot, or
// verifying its checksum.
type ErrorCategory int

const (
	// ErrorStorage indicates errors related to reading input data or
	// writing snapshots to disk.
	ErrorStorage ErrorCategory = iota + 1

	// ErrorCompression indicates errors during snapshot compression or
	// decompression, such as corrupt compressed data.
	ErrorCompression

	// ErrorSnapshot indicates a snapshot that is truncated, has a bad
	// frame or carries fields that cannot be decoded.
	ErrorSnapshot

	// ErrorChecksum indicates content whose recomputed checksum does not
	// match the stored one.
	ErrorChecksum
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorStorage:
		return "storage"
	case ErrorCompression:
		return "compression"
	case ErrorSnapshot:
		return "snapshot"
	case ErrorChecksum:
		return "checksum"
	default:
		return "unknown"
	}
}

type FileError struct {
	Err       error
	Path      string
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewFileError wraps err with the operation and category it failed in.
func NewFileError(category ErrorCategory, operation, path string, err error) *FileError {
	return &FileError{
		Err:       err,
		Path:      path,
		Operation: operation,
		Category:  category,
		Timestamp: time.Now(),
	}
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
	}
	return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Operation, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// IsRetryAble returns whether errors of this category can be retried.
func (e *FileError) IsRetryAble() bool {
	switch e.Category {
	case ErrorStorage:
		// Storage errors might be temporary (e.g., disk full, network mounts).
		return true
	default:
		// Bad snapshots and checksum mismatches do not fix themselves.
		return false
	}
}

// IsFileError checks if a given error wraps a FileError.
func IsFileError(err error) bool {
	var fe *FileError
	return errors.As(err, &fe)
}

// AsFileError attempts to extract a FileError from a given error.
func AsFileError(err error) *FileError {
	var fe *FileError
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}
