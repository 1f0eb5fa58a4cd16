package checksum

import (
	sha256_lib "crypto/sha256"
	"encoding/binary"
)

type sha256 struct {
	name string
}

func NewSHA256() *sha256 {
	return &sha256{name: string(SHA256)}
}

func (s *sha256) Checksum(data []byte) uint32 {
	sum := sha256_lib.Sum256(data)
	return binary.BigEndian.Uint32(sum[:4])
}

func (s *sha256) Verify(data []byte, expected uint32) bool {
	return s.Checksum(data) == expected
}

func (s *sha256) Size() uint8 {
	return sha256_lib.Size
}

func (s *sha256) Name() string {
	return s.name
}
