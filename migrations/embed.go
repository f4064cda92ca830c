// Package migrations embeds the goose SQL migrations. Every statement is
// written to run unchanged on both SQLite and PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
