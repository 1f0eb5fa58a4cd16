package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/memfile/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memfile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
checksum:
  algorithm: crc32-castagnoli
compression:
  level: 4
log_level: debug
load_timeout: 5s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "crc32-castagnoli", cfg.Checksum.Algorithm)
	assert.Equal(t, uint8(4), cfg.Compression.Level)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.LoadTimeout)
	assert.Equal(t, DefaultConfig().Snapshot, cfg.Snapshot, "missing keys keep defaults")
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"unknown algorithm", "checksum:\n  algorithm: md5\n", "checksum.algorithm"},
		{"bad level", "compression:\n  level: 9\n", "compression"},
		{"bad log level", "log_level: loud\n", "log_level"},
		{"zero timeout", "load_timeout: 0s\n", "load_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)

			ve := errors.AsValidationError(err)
			require.NotNil(t, ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "checksum: [unclosed"))
	assert.Error(t, err)
}

func TestSnapshotLimitsValidation(t *testing.T) {
	for _, body := range []string{
		"snapshot:\n  max_encoded_size: 4\n",
		"snapshot:\n  max_units: 0\n",
	} {
		_, err := LoadConfig(writeConfig(t, body))
		require.Error(t, err, body)
		assert.Equal(t, "snapshot", errors.AsValidationError(err).Field)
	}
}
