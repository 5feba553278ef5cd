package configs

import "time"

// HTTP defines configuration for the API server. The Port specifies which
// port the server will bind to.
type HTTP struct {
	// Port is the TCP port the API server will listen on. Defaults to 8000.
	Port uint16 `env:"PORT" envDefault:"8000"`
	// ReadHeaderTimeout bounds the time spent reading request headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
