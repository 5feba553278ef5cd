package migrations

import "embed"

// FS embeds the SQL migrations of both settings stores. Postgres migrations
// live under PostgresDir and SQLite ones under SQLiteDir; the golang-migrate
// iofs driver reads them from there.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

const Version = 1
