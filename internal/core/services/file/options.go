package file

import (
	"go.uber.org/zap"

	"github.com/iamNilotpal/memfile/internal/core/ports"
)

// Option customizes a File at construction time.
type Option func(*File)

// WithChecksum replaces the default CRC-32 collaborator.
// A nil port is ignored.
func WithChecksum(c ports.ChecksumPort) Option {
	return func(f *File) {
		if c != nil {
			f.checksum = c
		}
	}
}

// WithLogger attaches a logger for debug tracing of mutations.
// A nil logger is ignored.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(f *File) {
		if log != nil {
			f.log = log
		}
	}
}
