// Package catalog embeds the goose migrations for the catalog schema.
// Both binaries run them on startup via migrator.RunMigrations, which is a
// no-op when the schema is already current.
package catalog

import (
	"embed"
	"io/fs"
)

//go:embed *.sql
var migrationsFS embed.FS

// FS returns the embedded migration files.
func FS() fs.FS {
	return migrationsFS
}
