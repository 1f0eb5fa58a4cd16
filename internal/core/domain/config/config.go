package config

import (
	"fmt"
)

const (
	// MinEncodedSize is the smallest snapshot a decoder will look at:
	// the 4 byte magic plus the 4 byte frame checksum.
	MinEncodedSize = 8

	// DefaultMaxEncodedSize bounds the framed, compressed snapshot read from disk.
	DefaultMaxEncodedSize = 16 * 1024 * 1024 // 16MB.

	// MaxEncodedSize is the hard ceiling for DefaultMaxEncodedSize overrides.
	MaxEncodedSize = 256 * 1024 * 1024 // 256MB.

	// DefaultMaxUnits bounds the number of content units a snapshot may carry.
	// Through MaxDecodedSize it also bounds decompressed output.
	DefaultMaxUnits = 64 * 1024 * 1024

	// MaxUnits is the hard ceiling for DefaultMaxUnits overrides.
	MaxUnits = 512 * 1024 * 1024

	// MaxUnitWireSize is the largest varint encoding of a single unit.
	MaxUnitWireSize = 3

	// RecordOverhead covers every record field except the units: id, path,
	// kind, checksum, algorithm, timestamp and version.
	RecordOverhead = 64 * 1024 // 64KB.

	// Version numbers for snapshot format compatibility.
	MinVersion = 1 // Oldest supported version.
	MaxVersion = 1 // Current version.
)

// SnapshotLimits constrains what a snapshot decoder accepts.
type SnapshotLimits struct {
	// MaxEncodedSize enforces the maximum framed snapshot size.
	MaxEncodedSize uint32

	// MaxUnits enforces the maximum number of decoded content units.
	MaxUnits uint32
}

// SnapshotLimitsOption defines the signature for configuration options.
type SnapshotLimitsOption func(*SnapshotLimits)

// WithMaxEncodedSize sets the maximum framed snapshot size.
// Values outside [MinEncodedSize, MaxEncodedSize] are ignored.
func WithMaxEncodedSize(size uint32) SnapshotLimitsOption {
	return func(l *SnapshotLimits) {
		if size >= MinEncodedSize && size <= MaxEncodedSize {
			l.MaxEncodedSize = size
		}
	}
}

// WithMaxUnits sets the maximum number of decoded units.
// Zero and values above MaxUnits are ignored.
func WithMaxUnits(units uint32) SnapshotLimitsOption {
	return func(l *SnapshotLimits) {
		if units > 0 && units <= MaxUnits {
			l.MaxUnits = units
		}
	}
}

// NewSnapshotLimits initializes limits with default values and applies any
// provided options.
func NewSnapshotLimits(opts ...SnapshotLimitsOption) *SnapshotLimits {
	limits := DefaultSnapshotLimits()

	for _, opt := range opts {
		opt(limits)
	}

	return limits
}

// LimitValidationError represents specific limit validation errors.
type LimitValidationError struct {
	Field   string
	Value   uint32
	Details string
}

func (e *LimitValidationError) Error() string {
	return fmt.Sprintf("invalid snapshot limit for %s (%d): %s", e.Field, e.Value, e.Details)
}

// Validate checks the limits against the hard bounds.
func (l *SnapshotLimits) Validate() error {
	if l.MaxEncodedSize < MinEncodedSize {
		return &LimitValidationError{
			Field:   "MaxEncodedSize",
			Value:   l.MaxEncodedSize,
			Details: fmt.Sprintf("below minimum allowed value of %d", MinEncodedSize),
		}
	}

	if l.MaxEncodedSize > MaxEncodedSize {
		return &LimitValidationError{
			Field:   "MaxEncodedSize",
			Value:   l.MaxEncodedSize,
			Details: fmt.Sprintf("exceeds maximum allowed value of %d", MaxEncodedSize),
		}
	}

	if l.MaxUnits == 0 {
		return &LimitValidationError{
			Field:   "MaxUnits",
			Value:   l.MaxUnits,
			Details: "must be at least 1",
		}
	}

	if l.MaxUnits > MaxUnits {
		return &LimitValidationError{
			Field:   "MaxUnits",
			Value:   l.MaxUnits,
			Details: fmt.Sprintf("exceeds maximum allowed value of %d", MaxUnits),
		}
	}

	return nil
}

// MaxDecodedSize is the largest uncompressed record a snapshot may expand to.
func (l *SnapshotLimits) MaxDecodedSize() uint64 {
	return uint64(l.MaxUnits)*MaxUnitWireSize + RecordOverhead
}
