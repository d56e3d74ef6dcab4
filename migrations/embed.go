// Package migrations embeds the SQL schema migrations so the API binary
// can bring the database up to date on startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
