// Package migrations embeds the SQL applied when provisioning the Postgres backend.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
