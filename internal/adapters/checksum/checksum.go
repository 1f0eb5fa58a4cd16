package checksum

import (
	"fmt"

	"github.com/iamNilotpal/memfile/internal/core/domain"
	"github.com/iamNilotpal/memfile/internal/core/ports"
)

const (
	// CRC32IEEE is CRC-32/ISO-HDLC: reflected polynomial 0xEDB88320,
	// init 0xFFFFFFFF, final xor 0xFFFFFFFF.
	CRC32IEEE domain.ChecksumAlgorithm = "crc32-ieee"

	// CRC32Castagnoli uses the Castagnoli polynomial (CRC-32C).
	CRC32Castagnoli domain.ChecksumAlgorithm = "crc32-castagnoli"

	// SHA1 folds the first 4 bytes of a SHA-1 digest into a checksum.
	SHA1 domain.ChecksumAlgorithm = "sha1"

	// SHA256 folds the first 4 bytes of a SHA-256 digest into a checksum.
	SHA256 domain.ChecksumAlgorithm = "sha256"

	// XXHash keeps the low 32 bits of XXH64.
	XXHash domain.ChecksumAlgorithm = "xxhash"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{Algorithm: CRC32IEEE}
}

func Validate(input *domain.ChecksumOptions) error {
	if input.Custom == nil {
		switch input.Algorithm {
		case CRC32IEEE, CRC32Castagnoli, SHA1, SHA256, XXHash:
		default:
			return fmt.Errorf("unsupported checksum algorithm: %s", input.Algorithm)
		}
	}
	return nil
}

// New returns the checksum implementation registered for algorithm.
// An empty algorithm selects CRC32IEEE.
func New(algorithm domain.ChecksumAlgorithm) (ports.ChecksumPort, error) {
	switch algorithm {
	case CRC32IEEE, "":
		return NewCRC32IEEE(), nil
	case CRC32Castagnoli:
		return NewCRC32Castagnoli(), nil
	case SHA1:
		return NewSHA1(), nil
	case SHA256:
		return NewSHA256(), nil
	case XXHash:
		return NewXXHash(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", algorithm)
	}
}

// FromOptions resolves the collaborator described by opts. A Custom
// implementation wins over Algorithm.
func FromOptions(opts *domain.ChecksumOptions) (ports.ChecksumPort, error) {
	if opts == nil {
		return NewCRC32IEEE(), nil
	}
	if opts.Custom != nil {
		return opts.Custom, nil
	}
	return New(opts.Algorithm)
}
