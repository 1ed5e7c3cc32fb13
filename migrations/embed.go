// Package migrations embeds the SQL schema migrations so binaries can apply
// them without the source tree on disk.
package migrations

import "embed"

// FS holds every *.up.sql and *.down.sql file in this directory.
//
//go:embed *.sql
var FS embed.FS
