package compression

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/memfile/internal/core/domain"
)

func TestZstdRoundTrip(t *testing.T) {
	z, err := NewZstdCompression(nil)
	require.NoError(t, err)
	defer z.Close()

	inputs := [][]byte{
		{},
		[]byte("key=value"),
		bytes.Repeat([]byte("abcdef"), 4096),
	}

	for _, in := range inputs {
		compressed, err := z.Compress(in)
		require.NoError(t, err)

		out, err := z.Decompress(compressed)
		require.NoError(t, err)
		assert.Equal(t, len(in), len(out))
		assert.True(t, bytes.Equal(in, out))
	}
}

func TestZstdShrinksRepetitiveData(t *testing.T) {
	z, err := NewZstdCompression(&domain.CompressionOptions{Level: BestLevel})
	require.NoError(t, err)
	defer z.Close()

	in := bytes.Repeat([]byte{0xAA}, 64*1024)
	compressed, err := z.Compress(in)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(in))
	assert.Equal(t, BestLevel, z.Level())
}

func TestZstdDecompressGarbage(t *testing.T) {
	z, err := NewZstdCompression(nil)
	require.NoError(t, err)
	defer z.Close()

	_, err = z.Decompress([]byte("definitely not zstd"))
	assert.Error(t, err)
}

func TestZstdMaxDecodedSize(t *testing.T) {
	writer, err := NewZstdCompression(nil)
	require.NoError(t, err)
	defer writer.Close()

	bounded, err := NewZstdCompression(&domain.CompressionOptions{Level: DefaultLevel, MaxDecodedSize: 4096})
	require.NoError(t, err)
	defer bounded.Close()

	small, err := writer.Compress([]byte("key=value"))
	require.NoError(t, err)
	out, err := bounded.Decompress(small)
	require.NoError(t, err)
	assert.Equal(t, "key=value", string(out))

	fits, err := writer.Compress(make([]byte, 4096))
	require.NoError(t, err)
	out, err = bounded.Decompress(fits)
	require.NoError(t, err)
	assert.Len(t, out, 4096)

	bomb, err := writer.Compress(make([]byte, 4<<20))
	require.NoError(t, err)
	require.Less(t, len(bomb), 4096)

	_, err = bounded.Decompress(bomb)
	assert.ErrorIs(t, err, zstd.ErrDecoderSizeExceeded)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultOptions()))
	assert.Error(t, Validate(&domain.CompressionOptions{Level: 0}))
	assert.Error(t, Validate(&domain.CompressionOptions{Level: BestLevel + 1}))
	assert.Error(t, Validate(&domain.CompressionOptions{Level: DefaultLevel, EncoderConcurrency: 255}))
}
