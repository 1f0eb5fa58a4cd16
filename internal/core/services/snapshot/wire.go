package snapshot

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/iamNilotpal/memfile/internal/core/domain"
)

// Field numbers of the snapshot record.
const (
	fieldID        protowire.Number = 1
	fieldPath      protowire.Number = 2
	fieldKind      protowire.Number = 3
	fieldUnits     protowire.Number = 4
	fieldChecksum  protowire.Number = 5
	fieldAlgorithm protowire.Number = 6
	fieldCreatedAt protowire.Number = 7
	fieldVersion   protowire.Number = 8
)

func marshal(s *domain.Snapshot) []byte {
	var packed []byte
	for _, u := range s.Units {
		packed = protowire.AppendVarint(packed, uint64(u))
	}

	var b []byte
	b = protowire.AppendTag(b, fieldID, protowire.BytesType)
	b = protowire.AppendBytes(b, s.ID[:])
	b = protowire.AppendTag(b, fieldPath, protowire.BytesType)
	b = protowire.AppendString(b, s.Path)
	b = protowire.AppendTag(b, fieldKind, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(s.Kind))
	b = protowire.AppendTag(b, fieldUnits, protowire.BytesType)
	b = protowire.AppendBytes(b, packed)
	b = protowire.AppendTag(b, fieldChecksum, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, s.Checksum)
	b = protowire.AppendTag(b, fieldAlgorithm, protowire.BytesType)
	b = protowire.AppendString(b, string(s.Algorithm))
	b = protowire.AppendTag(b, fieldCreatedAt, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(s.CreatedAt.UnixNano()))
	b = protowire.AppendTag(b, fieldVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(s.Version))
	return b
}

// unmarshal parses a snapshot record. Unknown fields are skipped so newer
// writers can add fields without breaking older readers.
func unmarshal(b []byte, maxUnits uint32) (*domain.Snapshot, error) {
	s := &domain.Snapshot{Units: make([]domain.Unit, 0)}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == fieldID && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			id, err := uuid.FromBytes(v)
			if err != nil {
				return nil, fmt.Errorf("invalid id: %w", err)
			}
			s.ID = id
			b = b[n:]

		case num == fieldPath && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			s.Path = v
			b = b[n:]

		case num == fieldKind && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			s.Kind = domain.FileKind(v)
			b = b[n:]

		case num == fieldUnits && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			units, err := unmarshalUnits(v, maxUnits)
			if err != nil {
				return nil, err
			}
			s.Units = units
			b = b[n:]

		case num == fieldChecksum && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			s.Checksum = v
			b = b[n:]

		case num == fieldAlgorithm && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			s.Algorithm = domain.ChecksumAlgorithm(v)
			b = b[n:]

		case num == fieldCreatedAt && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			s.CreatedAt = time.Unix(0, int64(v))
			b = b[n:]

		case num == fieldVersion && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			if v > 0xFF {
				return nil, fmt.Errorf("invalid version: %d", v)
			}
			s.Version = uint8(v)
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}

	return s, nil
}

func unmarshalUnits(b []byte, maxUnits uint32) ([]domain.Unit, error) {
	units := make([]domain.Unit, 0, min(len(b), int(maxUnits)))

	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		if v > 0xFFFF {
			return nil, fmt.Errorf("unit out of range: %#x", v)
		}
		if uint32(len(units)) >= maxUnits {
			return nil, fmt.Errorf("snapshot exceeds %d units", maxUnits)
		}
		units = append(units, domain.Unit(v))
		b = b[n:]
	}

	return units, nil
}
