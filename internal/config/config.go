package config

import (
	"github.com/caarlos0/env/v11"

	"adperf/internal/config/configs"
)

// Config aggregates all configuration sections for both servers. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the API server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL settings store. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// SQLite configures the fallback settings store (SQLITE_).
	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	// BigQuery locates the warehouse table. Its variables are unprefixed.
	BigQuery configs.BigQuery

	// Warehouse tunes the query guard (WAREHOUSE_).
	Warehouse configs.Warehouse `envPrefix:"WAREHOUSE_"`

	// Dashboard configures the dashboard service (DASHBOARD_).
	Dashboard configs.Dashboard `envPrefix:"DASHBOARD_"`

	// CORS lists allowed browser origins (CORS_).
	CORS configs.CORS `envPrefix:"CORS_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
