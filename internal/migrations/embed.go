package migrations

import "embed"

// FS holds one directory of migrations per database dialect.
//
//go:embed postgres mysql sqllite3
var FS embed.FS
