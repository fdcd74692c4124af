// Package migrations embeds the SQL schema history so the migrator binary
// carries it without needing files on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
