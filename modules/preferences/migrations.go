package preferences

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the goose migrations for the wallet_preferences table,
// rooted so that pg.Migrate can read them directly.
func Migrations() fs.FS {
	// Sub only fails on an invalid directory name.
	sub, _ := fs.Sub(migrations, "migrations")
	return sub
}
