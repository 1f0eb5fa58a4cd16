package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/memfile/internal/adapters/checksum"
	"github.com/iamNilotpal/memfile/internal/adapters/compression"
	"github.com/iamNilotpal/memfile/internal/core/domain"
	limits "github.com/iamNilotpal/memfile/internal/core/domain/config"
	"github.com/iamNilotpal/memfile/pkg/errors"
)

type Config struct {
	Checksum    ChecksumConfig    `yaml:"checksum"`
	Compression CompressionConfig `yaml:"compression"`
	Snapshot    SnapshotConfig    `yaml:"snapshot"`
	LogLevel    string            `yaml:"log_level"`    // zap level name
	LoadTimeout time.Duration     `yaml:"load_timeout"` // Deadline for reading CLI input files
}

// Holds the checksum algorithm new files are created with.
type ChecksumConfig struct {
	Algorithm string `yaml:"algorithm"`
}

// Holds snapshot zstd settings.
type CompressionConfig struct {
	Level              uint8 `yaml:"level"`
	EncoderConcurrency uint8 `yaml:"encoder_concurrency"`
	DecoderConcurrency uint8 `yaml:"decoder_concurrency"`
}

// Holds snapshot size bounds, applied when encoding and decoding.
type SnapshotConfig struct {
	MaxEncodedSize uint32 `yaml:"max_encoded_size"`
	MaxUnits       uint32 `yaml:"max_units"`
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		LoadTimeout: 30 * time.Second,
		Checksum:    ChecksumConfig{Algorithm: string(checksum.CRC32IEEE)},
		Compression: CompressionConfig{Level: compression.DefaultLevel},
		Snapshot: SnapshotConfig{
			MaxEncodedSize: limits.DefaultMaxEncodedSize,
			MaxUnits:       limits.DefaultMaxUnits,
		},
	}
}

// Loads configuration from a YAML file. Keys missing from the file keep
// their default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if err := checksum.Validate(c.ChecksumOptions()); err != nil {
		return errors.NewValidationError("checksum.algorithm", c.Checksum.Algorithm, err)
	}

	if err := compression.Validate(c.CompressionOptions()); err != nil {
		return errors.NewValidationError("compression", c.Compression, err)
	}

	if err := c.SnapshotLimits().Validate(); err != nil {
		return errors.NewValidationError("snapshot", c.Snapshot, err)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewValidationError("log_level", c.LogLevel, fmt.Errorf("must be one of debug, info, warn, error"))
	}

	if c.LoadTimeout <= 0 {
		return errors.NewValidationError("load_timeout", c.LoadTimeout, fmt.Errorf("must be greater than 0"))
	}

	return nil
}

// ChecksumOptions maps the checksum section onto domain options.
func (c *Config) ChecksumOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{Algorithm: domain.ChecksumAlgorithm(c.Checksum.Algorithm)}
}

// SnapshotLimits maps the snapshot section onto decoder limits.
func (c *Config) SnapshotLimits() *limits.SnapshotLimits {
	return &limits.SnapshotLimits{MaxEncodedSize: c.Snapshot.MaxEncodedSize, MaxUnits: c.Snapshot.MaxUnits}
}

// CompressionOptions maps the compression section onto domain options.
func (c *Config) CompressionOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Level:              c.Compression.Level,
		EncoderConcurrency: c.Compression.EncoderConcurrency,
		DecoderConcurrency: c.Compression.DecoderConcurrency,
	}
}
