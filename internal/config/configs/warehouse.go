package configs

import "time"

// Warehouse tunes the limiter and circuit breaker in front of BigQuery.
type Warehouse struct {
	// RateLimit is the sustained number of queries per second.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"10"`
	RateBurst int     `env:"RATE_BURST" envDefault:"20"`

	// BreakerFailures consecutive failures open the breaker.
	BreakerFailures    uint32        `env:"BREAKER_FAILURES" envDefault:"5"`
	BreakerMaxRequests uint32        `env:"BREAKER_MAX_REQUESTS" envDefault:"1"`
	BreakerInterval    time.Duration `env:"BREAKER_INTERVAL" envDefault:"60s"`
	BreakerTimeout     time.Duration `env:"BREAKER_TIMEOUT" envDefault:"30s"`

	// QueryTimeout bounds a single query. Zero disables it.
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" envDefault:"60s"`
}
