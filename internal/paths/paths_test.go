package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutPaths(t *testing.T) {
	dataDir := filepath.Join("/tmp", "uru-data")

	assert.Equal(t, filepath.Join(dataDir, "registry.db"), RegistryDB(dataDir))
	assert.Equal(t, filepath.Join(dataDir, "shops"), ShopsDir(dataDir))
	assert.Equal(t,
		filepath.Join(dataDir, "shops", "shop_abc-123.db"),
		ShopDB(dataDir, "abc-123"))
}

func TestEnsureLayout(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, EnsureLayout(dataDir))

	info, err := os.Stat(ShopsDir(dataDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing layout.
	assert.NoError(t, EnsureLayout(dataDir))
}
