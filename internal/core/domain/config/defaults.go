package config

// Returns SnapshotLimits with recommended defaults.
func DefaultSnapshotLimits() *SnapshotLimits {
	return &SnapshotLimits{
		MaxEncodedSize: DefaultMaxEncodedSize,
		MaxUnits:       DefaultMaxUnits,
	}
}
