// Schema loading for the registry and shop databases. The DDL documents are
// external collaborators: read fully, executed verbatim as one multi-statement
// script, never interpreted.
package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Schema document names inside the migrations filesystem.
const (
	RegistrySchema = "001_registry_schema.sql"
	ShopSchema     = "002_shop_schema.sql"
)

// ErrSchemaNotFound is returned when a schema document cannot be located.
// Generation must never proceed against an unschematized store.
var ErrSchemaNotFound = errors.New("schema document not found")

// Migrations returns the embedded schema documents rooted at the migrations
// directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		// The directory is embedded at compile time; failing to root it is a
		// programming error.
		panic(err)
	}
	return sub
}

// ReadSchema reads the named DDL document from fsys.
func ReadSchema(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}
	return string(data), nil
}

// ApplySchema reads the named DDL document and executes it against db as a
// single script. The store must be freshly created and empty.
func ApplySchema(db *sql.DB, fsys fs.FS, name string) error {
	ddl, err := ReadSchema(fsys, name)
	if err != nil {
		return err
	}
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("apply schema %s: %w", name, err)
	}
	return nil
}
