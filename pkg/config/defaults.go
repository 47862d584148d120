package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 100
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSimulateDefaultCount = 1_000_000
)

// DefaultSimulateCities is the city rotation used by the bulk hotel
// generator when SIMULATE_CITIES is not set.
var DefaultSimulateCities = []string{
	"goa", "shimla", "mumbai", "delhi", "chennai",
	"bengaluru", "pune", "kolkata", "jaipur", "hyderabad",
}
