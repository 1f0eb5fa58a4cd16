package checksum

import (
	"hash/crc32"
)

type crc32IEEE struct {
	name  string
	table *crc32.Table
}

// NewCRC32IEEE returns the default checksum collaborator of a file.
func NewCRC32IEEE() *crc32IEEE {
	return &crc32IEEE{
		name:  string(CRC32IEEE),
		table: crc32.IEEETable,
	}
}

func (c *crc32IEEE) Checksum(data []byte) uint32 {
	return crc32.Checksum(data, c.table)
}

func (c *crc32IEEE) Verify(data []byte, expected uint32) bool {
	return crc32.Checksum(data, c.table) == expected
}

func (c *crc32IEEE) Size() uint8 {
	return crc32.Size
}

func (c *crc32IEEE) Name() string {
	return c.name
}
