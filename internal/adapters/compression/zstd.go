// Package compression provides snapshot compression using the zstd algorithm.
// It offers a thread-safe implementation with configurable compression levels.
package compression

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/iamNilotpal/memfile/internal/core/domain"
)

// ZstdCompression implements CompressionPort using the zstd compression algorithm.
// Unlike a general purpose compressor it never passes data through untouched:
// snapshot readers always expect a zstd frame.
type ZstdCompression struct {
	level   uint8         // Current compression level (1-4)
	mu      sync.RWMutex  // Protects concurrent access to compression state
	decoder *zstd.Decoder // Thread-safe decoder instance for decompression
	encoder *zstd.Encoder // Thread-safe encoder instance for compression
}

// Compression level constants map onto zstd.EncoderLevel values.
const (
	FastestLevel uint8 = 1 // zstd.SpeedFastest
	DefaultLevel uint8 = 2 // zstd.SpeedDefault
	BestLevel    uint8 = 4 // zstd.SpeedBestCompression
)

// NewZstdCompression creates a zstd compressor from opts. Zero concurrency
// values fall back to the number of CPU cores. Frames are written as single
// segments so their window never exceeds their content size, which keeps
// them decodable under a small MaxDecodedSize.
func NewZstdCompression(opts *domain.CompressionOptions) (*ZstdCompression, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}

	encoderConcurrency := int(opts.EncoderConcurrency)
	if encoderConcurrency == 0 {
		encoderConcurrency = runtime.NumCPU()
	}

	decoderConcurrency := int(opts.DecoderConcurrency)
	if decoderConcurrency == 0 {
		decoderConcurrency = runtime.NumCPU()
	}

	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.EncoderLevel(opts.Level)),
		zstd.WithEncoderConcurrency(encoderConcurrency),
		zstd.WithZeroFrames(true),
		zstd.WithSingleSegment(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	decoderOpts := []zstd.DOption{zstd.WithDecoderConcurrency(decoderConcurrency)}
	if opts.MaxDecodedSize > 0 {
		decoderOpts = append(decoderOpts, zstd.WithDecoderMaxMemory(opts.MaxDecodedSize))
	}

	decoder, err := zstd.NewReader(nil, decoderOpts...)
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &ZstdCompression{encoder: encoder, decoder: decoder, level: opts.Level}, nil
}

// Compress encodes data as a single zstd frame.
func (z *ZstdCompression) Compress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	return z.encoder.EncodeAll(data, nil), nil
}

// Decompress restores the original data from a zstd frame.
//
// Returns an error if the input is not valid zstd data or would expand
// past MaxDecodedSize.
func (z *ZstdCompression) Decompress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	decompressed, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	return decompressed, nil
}

// Level returns the current compression level.
func (z *ZstdCompression) Level() uint8 {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.level
}

// Close releases the encoder and decoder. The instance cannot be used afterwards.
func (z *ZstdCompression) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if err := z.encoder.Close(); err != nil {
		return fmt.Errorf("error closing encoder : %w", err)
	}

	z.decoder.Close()
	return nil
}
