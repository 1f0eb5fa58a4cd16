package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/memfile/internal/core/domain"
)

var checkInput = []byte("123456789")

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		algorithm domain.ChecksumAlgorithm
		input     []byte
		want      uint32
	}{
		{CRC32IEEE, checkInput, 0xCBF43926},
		{CRC32IEEE, []byte{}, 0},
		{CRC32Castagnoli, checkInput, 0xE3069283},
		{SHA1, checkInput, 0xF7C3BC1D},
		{SHA256, checkInput, 0x15E2B0D3},
		{XXHash, []byte{}, 0x51D8E999},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			c, err := New(tt.algorithm)
			require.NoError(t, err)

			assert.Equal(t, string(tt.algorithm), c.Name())
			assert.Equal(t, tt.want, c.Checksum(tt.input))
			assert.True(t, c.Verify(tt.input, tt.want))
			assert.False(t, c.Verify(tt.input, tt.want+1))
		})
	}
}

func TestCRC32IEEEIsPure(t *testing.T) {
	c := NewCRC32IEEE()
	first := c.Checksum(checkInput)
	second := c.Checksum(checkInput)
	assert.Equal(t, first, second)
	assert.Equal(t, uint32(3421780262), first)
}

func TestNewDefaultsToCRC32IEEE(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Equal(t, string(CRC32IEEE), c.Name())
}

func TestNewUnsupported(t *testing.T) {
	_, err := New("md5")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultOptions()))
	assert.Error(t, Validate(&domain.ChecksumOptions{Algorithm: "crc64"}))
	assert.NoError(t, Validate(&domain.ChecksumOptions{Algorithm: "crc64", Custom: NewSHA1()}))
}

func TestFromOptions(t *testing.T) {
	c, err := FromOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, string(CRC32IEEE), c.Name())

	custom := NewXXHash()
	c, err = FromOptions(&domain.ChecksumOptions{Algorithm: SHA256, Custom: custom})
	require.NoError(t, err)
	assert.Same(t, custom, c)

	c, err = FromOptions(&domain.ChecksumOptions{Algorithm: CRC32Castagnoli})
	require.NoError(t, err)
	assert.Equal(t, string(CRC32Castagnoli), c.Name())
}
