package configs

// Postgres holds configuration for connecting to a PostgreSQL database. The
// Addr field is a full connection string accepted by pgxpool.ParseConfig.
// When Addr is empty the settings are stored in SQLite instead.
type Postgres struct {
	// Addr is a PostgreSQL connection string. It should include the
	// sslmode parameter if required.
	Addr string `env:"ADDRESS"`
	// RunMigrations controls whether database migrations are executed on
	// startup. Only honoured by main.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`
	// MaxConns caps the pool size. Zero keeps the pgx default.
	MaxConns int32 `env:"MAX_CONNS" envDefault:"4"`
	// ConnectAttempts is the number of startup pings before giving up.
	ConnectAttempts uint `env:"CONNECT_ATTEMPTS" envDefault:"5"`
}

// Enabled reports whether a Postgres address is configured.
func (c Postgres) Enabled() bool {
	return c.Addr != ""
}
