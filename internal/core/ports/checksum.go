package ports

// ChecksumPort calculates and verifies 32-bit data checksums.
// Implementations must be pure: the same input always yields the same value.
type ChecksumPort interface {
	// Calculates a 32-bit checksum for the provided data.
	// The specific checksum algorithm used depends on the implementation.
	Checksum(data []byte) uint32

	// Validates whether the provided data matches the expected checksum.
	Verify(data []byte, checksum uint32) bool

	// Name returns the algorithm identifier, e.g. "crc32-ieee".
	Name() string
}
