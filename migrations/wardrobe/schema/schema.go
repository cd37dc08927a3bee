// Package schema embeds the wardrobe context's SQL migrations.
package schema

import "embed"

// VersionTable is the goose version table for this context.
const VersionTable = "wardrobe_schema_version"

//go:embed *.sql
var FS embed.FS
