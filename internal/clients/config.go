package clients

// Config holds configuration for the portfolio service client.
type Config struct {
	BaseURL  string `env:"PORTFOLIO_SERVICE_URL" envDefault:"http://localhost:8084"`
	Timeout  int    `env:"PORTFOLIO_TIMEOUT"     envDefault:"30"`
	CacheTTL int    `env:"PORTFOLIO_CACHE_TTL"   envDefault:"300"`
}
