package configs

// SQLite configures the file-backed settings store used when no Postgres
// address is set.
type SQLite struct {
	// Path of the database file. Missing directories are created.
	Path string `env:"PATH" envDefault:"data/settings.db"`
}
