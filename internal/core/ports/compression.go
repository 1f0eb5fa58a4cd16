package ports

// CompressionPort compresses the protobuf record inside a snapshot frame.
// The codec frames whatever Compress returns, so implementations only deal
// with whole records held in memory.
type CompressionPort interface {
	// Compress encodes one snapshot record.
	Compress(record []byte) ([]byte, error)

	// Decompress expands a snapshot payload back into its record. It must
	// fail instead of growing past the bound it was configured with, since
	// payloads come straight from disk.
	Decompress(payload []byte) ([]byte, error)

	// Close releases encoder and decoder state.
	Close() error

	// Level reports the encoder level recorded in logs.
	Level() uint8
}
