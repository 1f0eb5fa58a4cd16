// Package file implements the in-memory file entity: an ordered buffer of
// content units behind two mutually exclusive append channels, with a
// checksum computed over the low byte of every unit.
//
// A File is a plain mutable value for a single owner. Callers sharing one
// across goroutines must synchronize access themselves.
package file

import (
	"go.uber.org/zap"

	"github.com/iamNilotpal/memfile/internal/adapters/checksum"
	"github.com/iamNilotpal/memfile/internal/core/domain"
	"github.com/iamNilotpal/memfile/internal/core/ports"
)

type File struct {
	path     string
	kind     domain.FileKind
	content  []domain.Unit
	checksum ports.ChecksumPort
	log      *zap.SugaredLogger
}

// New creates an empty file labelled path. The kind decides which append
// channel is accepted for the lifetime of the file and must be KindProperty
// or KindImage: a file of any other kind accepts neither channel and every
// append fails with a WrongTypeError. Use domain.ParseFileKind or
// FileKind.IsValid to vet kinds that come from input.
func New(path string, kind domain.FileKind, opts ...Option) *File {
	f := &File{
		path:     path,
		kind:     kind,
		content:  make([]domain.Unit, 0),
		checksum: checksum.NewCRC32IEEE(),
		log:      zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Path returns the label the file was created with.
func (f *File) Path() string {
	return f.path
}

// Kind returns the file kind.
func (f *File) Kind() domain.FileKind {
	return f.kind
}

// SetChecksum swaps the checksum collaborator. A nil port is ignored.
func (f *File) SetChecksum(c ports.ChecksumPort) {
	if c != nil {
		f.checksum = c
	}
}

// AppendProperty appends data to a PROPERTY file.
func (f *File) AppendProperty(data []domain.Unit) error {
	return f.append("append property", domain.KindProperty, data)
}

// AppendImage appends data to an IMAGE file.
func (f *File) AppendImage(data []domain.Unit) error {
	return f.append("append image", domain.KindImage, data)
}

// AppendString appends the UTF-16 code units of s through the channel that
// matches the file kind.
func (f *File) AppendString(s string) error {
	units := domain.UnitsFromString(s)
	if f.kind == domain.KindImage {
		return f.AppendImage(units)
	}
	return f.AppendProperty(units)
}

// Nil content is checked before the channel so both appends report the
// same error for it regardless of kind. Nothing is written on failure.
func (f *File) append(op string, channel domain.FileKind, data []domain.Unit) error {
	if data == nil {
		return &InvalidContentError{Path: f.path, Operation: op}
	}

	if f.kind != channel {
		return &WrongTypeError{Path: f.path, Operation: op, Kind: f.kind}
	}

	f.content = append(f.content, data...)
	f.log.Debugw("content appended", "path", f.path, "kind", f.kind, "units", len(data), "size", len(f.content))
	return nil
}

// RemoveContent drops the last n units. Counts larger than the content
// clear it, zero is a no-op and negative counts are rejected.
func (f *File) RemoveContent(n int) error {
	if n < 0 {
		return &InvalidArgumentError{Argument: "n", Value: n}
	}

	if n >= len(f.content) {
		f.content = f.content[:0]
	} else {
		f.content = f.content[:len(f.content)-n]
	}

	f.log.Debugw("content removed", "path", f.path, "requested", n, "size", len(f.content))
	return nil
}

// Size returns the number of units held.
func (f *File) Size() int64 {
	return int64(len(f.content))
}

// Content returns a copy of the units held, oldest first.
func (f *File) Content() []domain.Unit {
	out := make([]domain.Unit, len(f.content))
	copy(out, f.content)
	return out
}

// Bytes returns the low 8 bits of every unit, in order. High bits are
// discarded; this is a truncation, not an encoding.
func (f *File) Bytes() []byte {
	out := make([]byte, len(f.content))
	for i, u := range f.content {
		out[i] = byte(u & 0xFF)
	}
	return out
}

// Checksum returns the collaborator's checksum of Bytes. Empty content
// yields 0 without consulting the collaborator.
func (f *File) Checksum() uint32 {
	if len(f.content) == 0 {
		return 0
	}
	return f.checksum.Checksum(f.Bytes())
}

// ChecksumName returns the algorithm name of the current collaborator.
func (f *File) ChecksumName() string {
	return f.checksum.Name()
}
