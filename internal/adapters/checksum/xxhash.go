package checksum

import (
	"github.com/cespare/xxhash/v2"
)

// xxHash is a fast non-cryptographic checksum, truncated to 32 bits.
type xxHash struct {
	name string
}

func NewXXHash() *xxHash {
	return &xxHash{name: string(XXHash)}
}

func (x *xxHash) Checksum(data []byte) uint32 {
	return uint32(xxhash.Sum64(data))
}

func (x *xxHash) Verify(data []byte, expected uint32) bool {
	return x.Checksum(data) == expected
}

func (x *xxHash) Size() uint8 {
	return 8
}

func (x *xxHash) Name() string {
	return x.name
}
