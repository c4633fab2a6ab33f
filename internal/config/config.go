package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/artcollab/muse/internal/clients"
	"github.com/artcollab/muse/internal/embedding/clip"
	"github.com/artcollab/muse/internal/observability"
)

// Config represents the recommender service configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Engine    EngineConfig
	Images    ImagesConfig
	Cache     CacheConfig
	CLIP      clip.Config
	Portfolio clients.Config
	Redis     RedisConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"60"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// EngineConfig contains recommendation engine settings.
type EngineConfig struct {
	AggregationStrategy string `env:"AGGREGATION_STRATEGY" envDefault:"max"`
	TopKIllustrations   int    `env:"TOP_K_ILLUSTRATIONS"  envDefault:"3"`
}

// ImagesConfig contains image download and processing settings.
type ImagesConfig struct {
	MaxImageSize    int `env:"MAX_IMAGE_SIZE"             envDefault:"512"`
	BatchSize       int `env:"IMAGE_BATCH_SIZE"           envDefault:"10"`
	DownloadTimeout int `env:"IMAGE_DOWNLOAD_TIMEOUT"     envDefault:"10"`
	DownloadWorkers int `env:"IMAGE_DOWNLOAD_WORKERS"     envDefault:"8"`
	MaxRetries      int `env:"IMAGE_DOWNLOAD_MAX_RETRIES" envDefault:"3"`
}

// CacheConfig contains embedding cache settings.
type CacheConfig struct {
	Dir string `env:"EMBEDDING_CACHE_DIR" envDefault:"./data/embedding_cache"`
}

// RedisConfig contains optional Redis result-cache settings.
// An empty Addr disables the result cache.
type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR"       envDefault:""`
	Password  string `env:"REDIS_PASSWORD"   envDefault:""`
	DB        int    `env:"REDIS_DB"         envDefault:"0"`
	ResultTTL int    `env:"RESULT_CACHE_TTL" envDefault:"300"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server    *ServerConfig
	CORS      *CORSConfig
	Engine    *EngineConfig
	Images    *ImagesConfig
	Cache     *CacheConfig
	CLIP      *clip.Config
	Portfolio *clients.Config
	Redis     *RedisConfig
}

// Load loads environment files, parses configuration and normalizes it.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	cfg.normalize(context.Background())

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:       dig.Out{},
		Server:    &cfg.Server,
		CORS:      &cfg.CORS,
		Engine:    &cfg.Engine,
		Images:    &cfg.Images,
		Cache:     &cfg.Cache,
		CLIP:      &cfg.CLIP,
		Portfolio: &cfg.Portfolio,
		Redis:     &cfg.Redis,
	}
}

// normalize corrects out-of-range values to documented defaults. Invalid
// settings are replaced, not rejected: a misconfigured recommender should
// still start, with a warning on every corrected option.
func (c *Config) normalize(ctx context.Context) {
	logger := observability.FromContext(ctx)

	c.Engine.AggregationStrategy = normalizeStrategy(ctx, c.Engine.AggregationStrategy)
	c.Engine.TopKIllustrations = clampInt(ctx, "TOP_K_ILLUSTRATIONS", c.Engine.TopKIllustrations, 1, 50)

	c.Images.MaxImageSize = clampInt(ctx, "MAX_IMAGE_SIZE", c.Images.MaxImageSize, 64, 4096)
	c.Images.BatchSize = clampInt(ctx, "IMAGE_BATCH_SIZE", c.Images.BatchSize, 1, 128)
	c.Images.DownloadTimeout = clampInt(ctx, "IMAGE_DOWNLOAD_TIMEOUT", c.Images.DownloadTimeout, 1, 120)
	c.Images.DownloadWorkers = clampInt(ctx, "IMAGE_DOWNLOAD_WORKERS", c.Images.DownloadWorkers, 1, 64)
	c.Images.MaxRetries = clampInt(ctx, "IMAGE_DOWNLOAD_MAX_RETRIES", c.Images.MaxRetries, 0, 10)

	if c.Cache.Dir == "" {
		logger.Warn("EMBEDDING_CACHE_DIR is empty, using default",
			observability.String("default", "./data/embedding_cache"))
		c.Cache.Dir = "./data/embedding_cache"
	}
}

// clampInt returns value constrained to [minVal, maxVal], warning when the
// configured value was out of range.
func clampInt(ctx context.Context, name string, value, minVal, maxVal int) int {
	if value >= minVal && value <= maxVal {
		return value
	}

	corrected := value
	if corrected < minVal {
		corrected = minVal
	}
	if corrected > maxVal {
		corrected = maxVal
	}

	observability.FromContext(ctx).Warn("config value out of range, clamping",
		observability.String("option", name),
		observability.Int("configured", value),
		observability.Int("corrected", corrected))

	return corrected
}

// normalizeStrategy validates the aggregation strategy name, falling back to
// "max" on unknown input.
func normalizeStrategy(ctx context.Context, strategy string) string {
	switch strategy {
	case "max", "mean", "weighted_mean", "top_k_mean":
		return strategy
	}

	observability.FromContext(ctx).Warn("unknown aggregation strategy, falling back to max",
		observability.String("configured", strategy))

	return "max"
}
