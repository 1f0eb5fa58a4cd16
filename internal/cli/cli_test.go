package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iamNilotpal/memfile/config"
	"github.com/iamNilotpal/memfile/internal/core/services/file"
	"github.com/iamNilotpal/memfile/internal/core/services/snapshot"
	"github.com/iamNilotpal/memfile/pkg/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestChecksumCommand(t *testing.T) {
	input := writeInput(t, t.TempDir(), "check.txt", "123456789")

	out, err := run(t, "checksum", "--path", "/mem/check", input)
	require.NoError(t, err)
	assert.Equal(t, "path=/mem/check kind=PROPERTY size=9 checksum=3421780262 (0xcbf43926) algorithm=crc32-ieee\n", out)
}

func TestChecksumCommandMultipleInputsAndRemove(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.txt", "12345")
	b := writeInput(t, dir, "b.txt", "6789xyz")

	out, err := run(t, "checksum", "--remove", "3", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "path="+a)
	assert.Contains(t, out, "size=9 checksum=3421780262")
}

func TestChecksumCommandImage(t *testing.T) {
	input := writeInput(t, t.TempDir(), "img.bin", "\xff\x00\xaa")

	out, err := run(t, "checksum", "--kind", "image", "--algorithm", "crc32-castagnoli", input)
	require.NoError(t, err)
	assert.Contains(t, out, "kind=IMAGE size=3")
	assert.Contains(t, out, "algorithm=crc32-castagnoli")
}

func TestChecksumCommandErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "a.txt", "abc")
	binary := writeInput(t, dir, "b.bin", "\xff\xfe")

	_, err := run(t, "checksum", "--kind", "folder", input)
	assert.True(t, errors.IsValidationError(err))

	_, err = run(t, "checksum", "--algorithm", "md5", input)
	assert.True(t, errors.IsValidationError(err))

	_, err = run(t, "checksum", "--remove=-1", input)
	assert.ErrorIs(t, err, file.ErrInvalidArgument)

	_, err = run(t, "checksum", binary)
	assert.True(t, errors.IsValidationError(err))

	_, err = run(t, "checksum", filepath.Join(dir, "missing"))
	fe := errors.AsFileError(err)
	require.NotNil(t, fe)
	assert.Equal(t, errors.ErrorStorage, fe.Category)

	_, err = run(t, "checksum")
	assert.Error(t, err)
}

func TestExportAndInspect(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "props.txt", "Date=2025\nowner=ñ")
	snap := filepath.Join(dir, "out", "props.snap")

	exported, err := run(t, "export", "--path", "/mem/props", "-o", snap, input)
	require.NoError(t, err)

	inspected, err := run(t, "inspect", snap)
	require.NoError(t, err)

	assert.Contains(t, inspected, "id=")
	assert.Contains(t, inspected, exported, "restored file reports the same size and checksum")
}

func TestInspectCorruptSnapshot(t *testing.T) {
	snap := writeInput(t, t.TempDir(), "bad.snap", "MFS1garbagegarbage")

	_, err := run(t, "inspect", snap)
	assert.ErrorIs(t, err, snapshot.ErrCorruptSnapshot)
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInput(t, dir, "memfile.yaml", "checksum:\n  algorithm: sha256\nlog_level: error\n")
	input := writeInput(t, dir, "check.txt", "123456789")

	out, err := run(t, "--config", cfg, "checksum", input)
	require.NoError(t, err)
	assert.Contains(t, out, "checksum=367177939 (0x15e2b0d3) algorithm=sha256")

	bad := writeInput(t, dir, "bad.yaml", "log_level: loud\n")
	_, err = run(t, "--config", bad, "checksum", input)
	assert.True(t, errors.IsValidationError(err))
}

// blockingFS never answers a read until the test ends.
type blockingFS struct {
	release chan struct{}
}

func (b *blockingFS) ReadFile(string) ([]byte, error) {
	<-b.release
	return []byte("late"), nil
}

func (b *blockingFS) WriteFile(string, os.FileMode, []byte) error { return nil }

func (b *blockingFS) Exists(string) (bool, error) { return true, nil }

func TestLoadHonoursTimeout(t *testing.T) {
	slow := &blockingFS{release: make(chan struct{})}
	t.Cleanup(func() { close(slow.release) })

	cfg := config.DefaultConfig()
	cfg.LoadTimeout = 50 * time.Millisecond
	a := &app{cfg: cfg, log: zap.NewNop().Sugar(), fs: slow, out: &bytes.Buffer{}}

	start := time.Now()
	f, err := a.load(context.Background(), &loadFlags{kind: "property"}, []string{"slow.txt"})
	elapsed := time.Since(start)

	assert.Nil(t, f)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, time.Second)
}
