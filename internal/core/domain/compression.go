package domain

// CompressionOptions configures the zstd compression applied to snapshots.
type CompressionOptions struct {
	// Level defines the zstd encoder level.
	// Supported levels:
	//   - 1: SpeedFastest
	//   - 2: SpeedDefault (≈ zstd level 3)
	//   - 3: SpeedBetterCompression (≈ zstd level 7-8) with 2x-3x CPU usage
	//   - 4: SpeedBestCompression
	// If not specified, SpeedDefault will be used.
	Level uint8

	// EncoderConcurrency specifies the number of concurrent compression operations.
	// Default is number of CPU cores if set to 0.
	EncoderConcurrency uint8

	// DecoderConcurrency specifies the number of concurrent decompression operations.
	// Default is number of CPU cores if set to 0.
	DecoderConcurrency uint8

	// MaxDecodedSize caps the bytes a single payload may decompress to.
	// Zero leaves the zstd library default in place.
	MaxDecodedSize uint64
}
