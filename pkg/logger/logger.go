// Package logger builds the zap loggers used across memfile.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production JSON logger tagged with service.
func New(service string) *zap.SugaredLogger {
	return build(zap.NewProductionConfig(), service)
}

// NewWithLevel is New with an explicit minimum level ("debug", "info", ...).
// Unknown levels fall back to info.
func NewWithLevel(service, level string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return build(cfg, service)
}

// NewDevelopment returns a human readable debug logger.
func NewDevelopment(service string) *zap.SugaredLogger {
	return build(zap.NewDevelopmentConfig(), service)
}

func build(cfg zap.Config, service string) *zap.SugaredLogger {
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{"service": service}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log.Sugar()
}
