package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the decoded state of one file entity.
type Snapshot struct {
	// ID uniquely identifies the export that produced this snapshot.
	ID uuid.UUID

	// Version is the snapshot format version.
	Version uint8

	Path string
	Kind FileKind

	// Units holds the full 16-bit content, not just the checksummed low bytes.
	Units []Unit

	// Checksum is the file checksum at export time, computed with Algorithm.
	Checksum  uint32
	Algorithm ChecksumAlgorithm

	CreatedAt time.Time
}
