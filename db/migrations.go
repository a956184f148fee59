// Package db embeds the SQL migrations for the PostgreSQL session backend.
package db

import "embed"

//go:embed migrations/*.up.sql
var Migrations embed.FS
