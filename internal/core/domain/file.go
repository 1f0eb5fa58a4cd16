// Package domain defines the core types shared by the file entity, its
// checksum collaborators and the snapshot codec.
package domain

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// FileKind classifies a file and decides which append channel it accepts.
// The kind is fixed when the file is created.
type FileKind uint8

const (
	// KindProperty marks a file holding textual key/value style data.
	// Only property appends are accepted.
	KindProperty FileKind = iota + 1

	// KindImage marks a file holding binary image data.
	// Only image appends are accepted.
	KindImage
)

// Unit is one logical slot of file content. It is wide enough for a UTF-16
// code unit, but only its low 8 bits take part in checksum computation.
type Unit uint16

// String returns the string representation of the FileKind.
func (k FileKind) String() string {
	switch k {
	case KindProperty:
		return "PROPERTY"
	case KindImage:
		return "IMAGE"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether k is one of the known kinds.
func (k FileKind) IsValid() bool {
	return k == KindProperty || k == KindImage
}

// ParseFileKind maps a case-insensitive name ("property", "image") to a FileKind.
func ParseFileKind(name string) (FileKind, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "PROPERTY":
		return KindProperty, nil
	case "IMAGE":
		return KindImage, nil
	default:
		return 0, fmt.Errorf("unknown file kind: %q", name)
	}
}

// UnitsFromString splits s into UTF-16 code units.
func UnitsFromString(s string) []Unit {
	encoded := utf16.Encode([]rune(s))
	units := make([]Unit, len(encoded))
	for i, u := range encoded {
		units[i] = Unit(u)
	}
	return units
}

// UnitsFromBytes widens every byte into its own unit.
func UnitsFromBytes(data []byte) []Unit {
	units := make([]Unit, len(data))
	for i, b := range data {
		units[i] = Unit(b)
	}
	return units
}
