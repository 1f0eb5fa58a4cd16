package checksum

import (
	sha1_lib "crypto/sha1"
	"encoding/binary"
)

type sha1 struct {
	name string
}

func NewSHA1() *sha1 {
	return &sha1{name: string(SHA1)}
}

func (s *sha1) Checksum(data []byte) uint32 {
	sum := sha1_lib.Sum(data)
	return binary.BigEndian.Uint32(sum[:4])
}

func (s *sha1) Verify(data []byte, expected uint32) bool {
	return s.Checksum(data) == expected
}

func (s *sha1) Size() uint8 {
	return sha1_lib.Size
}

func (s *sha1) Name() string {
	return s.name
}
