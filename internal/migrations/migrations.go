// Package migrations embeds the goose SQL migrations for the credstore
// schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
