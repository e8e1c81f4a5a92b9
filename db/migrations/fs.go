// Package migrations embeds the SQL schema migrations applied by golang-migrate.
package migrations

import "embed"

// FS holds the ordered *.up.sql / *.down.sql migration files.
//
//go:embed *.sql
var FS embed.FS
