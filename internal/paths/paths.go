// Package paths resolves the on-disk layout of a generated data directory:
// one registry database at the root and one database per shop under shops/.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// File and directory names inside the data directory.
const (
	RegistryDBName = "registry.db"
	ShopsDirName   = "shops"
)

// RegistryDB returns the path of the registry database for dataDir.
func RegistryDB(dataDir string) string {
	return filepath.Join(dataDir, RegistryDBName)
}

// ShopsDir returns the directory holding the per-shop databases.
func ShopsDir(dataDir string) string {
	return filepath.Join(dataDir, ShopsDirName)
}

// ShopDB returns the path of the database for a single shop. The file name is
// derived deterministically from the shop identifier.
func ShopDB(dataDir, shopID string) string {
	return filepath.Join(ShopsDir(dataDir), fmt.Sprintf("shop_%s.db", shopID))
}

// EnsureLayout creates the data directory and the shops subdirectory.
func EnsureLayout(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.MkdirAll(ShopsDir(dataDir), 0o755); err != nil {
		return fmt.Errorf("create shops dir: %w", err)
	}
	return nil
}
