package configs

import "time"

// Dashboard configures the dashboard service and its client of the API.
type Dashboard struct {
	// Port is the TCP port the dashboard service listens on.
	Port uint16 `env:"PORT" envDefault:"3000"`
	// APIURL is the base URL of the performance and settings API.
	APIURL string `env:"API_URL" envDefault:"http://localhost:8000"`
	// APITimeout bounds every request to the API.
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	// AggregateLocally fetches raw rows and reduces them in the service
	// instead of calling the summary endpoint.
	AggregateLocally bool `env:"AGGREGATE_LOCALLY" envDefault:"false"`
}
