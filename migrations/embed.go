// Package migrations embeds the goose SQL migrations for the trips and
// templates schema, so the test suite and any tooling can run them through
// the goose programmatic API without a checkout of the migration files.
package migrations

import "embed"

// FS contains every *.sql migration in this directory, in filename order.
//
//go:embed *.sql
var FS embed.FS
