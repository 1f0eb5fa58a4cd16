package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadFile(t *testing.T) {
	lfs := NewLocalFileSystem()
	path := filepath.Join(t.TempDir(), "nested", "a.snap")

	ok, err := lfs.Exists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, lfs.WriteFile(path, 0644, []byte("first")))
	require.NoError(t, lfs.WriteFile(path, 0600, []byte("second")))

	ok, err = lfs.Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := lfs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestReadFileMissing(t *testing.T) {
	_, err := NewLocalFileSystem().ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
