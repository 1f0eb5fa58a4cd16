// Package snapshot exports a file entity to a compact binary form and
// restores it.
//
// Layout: "MFS1" | crc32-ieee(payload) little-endian | payload, where the
// payload is a zstd frame holding a protobuf wire record of the file.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iamNilotpal/memfile/internal/adapters/checksum"
	"github.com/iamNilotpal/memfile/internal/adapters/compression"
	"github.com/iamNilotpal/memfile/internal/core/domain"
	"github.com/iamNilotpal/memfile/internal/core/domain/config"
	"github.com/iamNilotpal/memfile/internal/core/ports"
	"github.com/iamNilotpal/memfile/internal/core/services/file"
	ferrors "github.com/iamNilotpal/memfile/pkg/errors"
	"github.com/iamNilotpal/memfile/pkg/pool"
)

var (
	// ErrCorruptSnapshot indicates bytes that are not a readable snapshot.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrSnapshotTooLarge indicates a file that cannot be exported within
	// the codec's limits.
	ErrSnapshotTooLarge = errors.New("snapshot exceeds limits")

	// ErrChecksumMismatch indicates restored content whose checksum differs
	// from the one recorded at export time.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
)

var magic = [4]byte{'M', 'F', 'S', '1'}

const headerSize = len(magic) + 4

// Codec encodes and decodes snapshots. It is safe for concurrent use as
// long as its compressor is.
type Codec struct {
	frame      ports.ChecksumPort
	compressor ports.CompressionPort
	limits     *config.SnapshotLimits
	buffers    *pool.BufferPool
	log        *zap.SugaredLogger
}

// NewCodec builds a codec, creating a zstd compressor unless one is supplied.
// The zstd decoder refuses to expand a payload past Limits.MaxDecodedSize;
// a supplied compressor is expected to bound its own output.
func NewCodec(opts ...Option) (*Codec, error) {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.Limits == nil {
		o.Limits = config.DefaultSnapshotLimits()
	}
	if err := o.Limits.Validate(); err != nil {
		return nil, ferrors.NewValidationError("limits", o.Limits, err)
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}

	compressor := o.Compressor
	if compressor == nil {
		copts := compression.DefaultOptions()
		if o.Compression != nil {
			*copts = *o.Compression
		}
		copts.MaxDecodedSize = o.Limits.MaxDecodedSize()

		z, err := compression.NewZstdCompression(copts)
		if err != nil {
			return nil, ferrors.NewValidationError("compression", o.Compression, err)
		}
		compressor = z
	}

	return &Codec{
		frame:      checksum.NewCRC32IEEE(),
		compressor: compressor,
		limits:     o.Limits,
		buffers:    pool.NewBufferPool(4096),
		log:        o.Logger,
	}, nil
}

// Close releases the compressor.
func (c *Codec) Close() error {
	return c.compressor.Close()
}

// Encode captures f under a fresh snapshot ID. A file the same codec could
// not decode again fails with ErrSnapshotTooLarge.
func (c *Codec) Encode(f *file.File) ([]byte, error) {
	s := &domain.Snapshot{
		ID:        uuid.New(),
		Version:   config.MaxVersion,
		Path:      f.Path(),
		Kind:      f.Kind(),
		Units:     f.Content(),
		Checksum:  f.Checksum(),
		Algorithm: domain.ChecksumAlgorithm(f.ChecksumName()),
		CreatedAt: time.Now(),
	}

	if len(s.Units) > int(c.limits.MaxUnits) {
		return nil, tooLarge(s.Path, fmt.Errorf("%d units exceeds limit of %d", len(s.Units), c.limits.MaxUnits))
	}

	raw := marshal(s)
	if uint64(len(raw)) > c.limits.MaxDecodedSize() {
		return nil, tooLarge(s.Path, fmt.Errorf("%d byte record exceeds limit of %d", len(raw), c.limits.MaxDecodedSize()))
	}

	payload, err := c.compressor.Compress(raw)
	if err != nil {
		return nil, ferrors.NewFileError(ferrors.ErrorCompression, "encode snapshot", s.Path, err)
	}
	if headerSize+len(payload) > int(c.limits.MaxEncodedSize) {
		return nil, tooLarge(
			s.Path, fmt.Errorf("%d encoded bytes exceeds limit of %d", headerSize+len(payload), c.limits.MaxEncodedSize),
		)
	}

	buf := c.buffers.Get()
	defer c.buffers.Put(buf)

	buf.Write(magic[:])
	var sum [4]byte
	binary.LittleEndian.PutUint32(sum[:], c.frame.Checksum(payload))
	buf.Write(sum[:])
	buf.Write(payload)

	c.log.Debugw(
		"snapshot encoded",
		"id", s.ID, "path", s.Path, "kind", s.Kind, "units", len(s.Units), "bytes", buf.Len(),
	)
	return bytes.Clone(buf.Bytes()), nil
}

// Decode parses data produced by Encode. Any framing, compression or
// field error is reported as ErrCorruptSnapshot.
func (c *Codec) Decode(data []byte) (*domain.Snapshot, error) {
	if len(data) < headerSize {
		return nil, corrupt(fmt.Errorf("%d bytes is shorter than the header", len(data)))
	}
	if len(data) > int(c.limits.MaxEncodedSize) {
		return nil, corrupt(fmt.Errorf("%d bytes exceeds limit of %d", len(data), c.limits.MaxEncodedSize))
	}
	if !bytes.Equal(data[:len(magic)], magic[:]) {
		return nil, corrupt(fmt.Errorf("bad magic %q", data[:len(magic)]))
	}

	expected := binary.LittleEndian.Uint32(data[len(magic):headerSize])
	payload := data[headerSize:]
	if !c.frame.Verify(payload, expected) {
		return nil, corrupt(fmt.Errorf("frame checksum %#08x does not match", expected))
	}

	raw, err := c.compressor.Decompress(payload)
	if err != nil {
		return nil, ferrors.NewFileError(
			ferrors.ErrorCompression, "decode snapshot", "", fmt.Errorf("%w: %w", ErrCorruptSnapshot, err),
		)
	}

	if uint64(len(raw)) > c.limits.MaxDecodedSize() {
		return nil, corrupt(fmt.Errorf("%d byte record exceeds limit of %d", len(raw), c.limits.MaxDecodedSize()))
	}

	s, err := unmarshal(raw, c.limits.MaxUnits)
	if err != nil {
		return nil, corrupt(err)
	}

	if s.Version < config.MinVersion || s.Version > config.MaxVersion {
		return nil, corrupt(fmt.Errorf("unsupported version %d", s.Version))
	}
	if !s.Kind.IsValid() {
		return nil, corrupt(fmt.Errorf("unknown file kind %d", s.Kind))
	}

	c.log.Debugw("snapshot decoded", "id", s.ID, "path", s.Path, "kind", s.Kind, "units", len(s.Units))
	return s, nil
}

// Restore rebuilds the file described by s through its own append channel
// and checks the result against the recorded checksum. Options are applied
// after the collaborator implied by s.Algorithm.
func (c *Codec) Restore(s *domain.Snapshot, opts ...file.Option) (*file.File, error) {
	algorithm, err := checksum.New(s.Algorithm)
	if err != nil {
		return nil, ferrors.NewFileError(ferrors.ErrorChecksum, "restore snapshot", s.Path, err)
	}

	f := file.New(s.Path, s.Kind, append([]file.Option{file.WithChecksum(algorithm)}, opts...)...)

	units := s.Units
	if units == nil {
		units = []domain.Unit{}
	}

	switch s.Kind {
	case domain.KindProperty:
		err = f.AppendProperty(units)
	default:
		err = f.AppendImage(units)
	}
	if err != nil {
		return nil, ferrors.NewFileError(ferrors.ErrorSnapshot, "restore snapshot", s.Path, err)
	}

	if got := f.Checksum(); got != s.Checksum {
		return nil, ferrors.NewFileError(
			ferrors.ErrorChecksum,
			"restore snapshot",
			s.Path,
			fmt.Errorf("%w: recorded %#08x, computed %#08x", ErrChecksumMismatch, s.Checksum, got),
		)
	}

	return f, nil
}

func corrupt(err error) error {
	return ferrors.NewFileError(ferrors.ErrorSnapshot, "decode snapshot", "", fmt.Errorf("%w: %w", ErrCorruptSnapshot, err))
}

func tooLarge(path string, err error) error {
	return ferrors.NewFileError(ferrors.ErrorSnapshot, "encode snapshot", path, fmt.Errorf("%w: %w", ErrSnapshotTooLarge, err))
}
