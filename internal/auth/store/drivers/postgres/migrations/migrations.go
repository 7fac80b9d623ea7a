package migrations

import "embed"

// Migrations holds the goose formatted schema files.
//
//go:embed *.sql
var Migrations embed.FS
