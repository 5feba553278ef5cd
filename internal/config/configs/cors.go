package configs

// CORS lists the browser origins allowed to call the servers.
type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
}
