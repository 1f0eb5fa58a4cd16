package snapshot

import (
	"go.uber.org/zap"

	"github.com/iamNilotpal/memfile/internal/core/domain"
	"github.com/iamNilotpal/memfile/internal/core/domain/config"
	"github.com/iamNilotpal/memfile/internal/core/ports"
)

// Options holds the codec configuration.
type Options struct {
	// Compression configures the zstd compressor. Ignored when Compressor is set.
	Compression *domain.CompressionOptions

	// Compressor replaces the zstd compressor.
	Compressor ports.CompressionPort

	// Limits bounds what Decode accepts.
	Limits *config.SnapshotLimits

	// Logger receives debug traces. Defaults to a no-op logger.
	Logger *zap.SugaredLogger
}

// Option customizes the codec.
type Option func(*Options)

func WithCompression(opts *domain.CompressionOptions) Option {
	return func(o *Options) {
		o.Compression = opts
	}
}

func WithCompressor(c ports.CompressionPort) Option {
	return func(o *Options) {
		o.Compressor = c
	}
}

func WithLimits(limits *config.SnapshotLimits) Option {
	return func(o *Options) {
		o.Limits = limits
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}
