// Package schema embeds the account context's SQL migrations.
package schema

import "embed"

// VersionTable is the goose version table for this context.
const VersionTable = "account_schema_version"

//go:embed *.sql
var FS embed.FS
