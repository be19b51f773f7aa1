package cmd

// Config carries everything the process reads from the environment.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr selects the shared cache backend. Empty means in-process
	// fallbacks: rate limiting and idempotency then only hold per instance.
	RedisAddr string

	// CORSOrigins is "*" or a comma-separated allowlist of origins.
	CORSOrigins string

	// APIKey, when set, is demanded on every request via X-API-Key.
	APIKey string

	// Rules is the default quote ranking strategy.
	Rules string

	// DimFactor is the volumetric divisor (cm³ per kg).
	DimFactor float64

	NZPostMode            string
	NZPostBase            string
	NZPostAPIKey          string
	NZPostSubscriptionKey string

	NZCMode          string
	NZCBase          string
	NZCGSSToken      string
	NZCAccountNumber string
}
