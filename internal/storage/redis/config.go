package redis

// Config holds Redis connection settings
type Config struct {
	// URL is a redis:// connection URL
	URL string

	// Connection pool settings
	PoolSize     int
	MinIdleConns int

	// MaxTxRetries bounds the optimistic-lock retries used by the
	// compare-and-swap operations
	MaxTxRetries int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		MaxTxRetries: 3,
	}
}
