// Package migrations embeds the vault schema for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
