// Package migrations embeds the tasks schema migrations (goose format).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
