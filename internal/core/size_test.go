package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSize(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Contents", "MacOS"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Contents", "Info.plist"), make([]byte, 100), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Contents", "MacOS", "app"), make([]byte, 900), 0o755))

	assert.Equal(t, int64(1000), DirSize(root))
}

func TestDirSizeMissingPath(t *testing.T) {
	assert.Equal(t, int64(0), DirSize(filepath.Join(t.TempDir(), "nope")))
}
