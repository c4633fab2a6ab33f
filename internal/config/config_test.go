package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artcollab/muse/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "max", cfg.Engine.AggregationStrategy)
	require.Equal(t, 3, cfg.Engine.TopKIllustrations)
	require.Equal(t, 512, cfg.Images.MaxImageSize)
	require.Equal(t, 10, cfg.Images.BatchSize)
	require.Equal(t, 8, cfg.Images.DownloadWorkers)
	require.Equal(t, 3, cfg.Images.MaxRetries)
	require.Equal(t, "./data/embedding_cache", cfg.Cache.Dir)
	require.Equal(t, "http://localhost:8090", cfg.CLIP.BaseURL)
	require.Equal(t, "clip-ViT-B-32", cfg.CLIP.Model)
	require.Equal(t, 512, cfg.CLIP.Dimension)
	require.Equal(t, "http://localhost:8084", cfg.Portfolio.BaseURL)
	require.Empty(t, cfg.Redis.Addr)
	require.Equal(t, 300, cfg.Redis.ResultTTL)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("AGGREGATION_STRATEGY", "weighted_mean")
	t.Setenv("TOP_K_ILLUSTRATIONS", "5")
	t.Setenv("CLIP_BASE_URL", "http://clip.internal:8090")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := config.Load()

	require.Equal(t, 9999, cfg.Server.Port)
	require.Equal(t, "weighted_mean", cfg.Engine.AggregationStrategy)
	require.Equal(t, 5, cfg.Engine.TopKIllustrations)
	require.Equal(t, "http://clip.internal:8090", cfg.CLIP.BaseURL)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_InvalidStrategyFallsBackToMax(t *testing.T) {
	t.Setenv("AGGREGATION_STRATEGY", "median")

	cfg := config.Load()
	require.Equal(t, "max", cfg.Engine.AggregationStrategy)
}

func TestLoad_ClampsOutOfRangeValues(t *testing.T) {
	t.Setenv("TOP_K_ILLUSTRATIONS", "0")
	t.Setenv("MAX_IMAGE_SIZE", "10000")
	t.Setenv("IMAGE_DOWNLOAD_WORKERS", "-2")
	t.Setenv("IMAGE_DOWNLOAD_MAX_RETRIES", "99")

	cfg := config.Load()

	require.Equal(t, 1, cfg.Engine.TopKIllustrations)
	require.Equal(t, 4096, cfg.Images.MaxImageSize)
	require.Equal(t, 1, cfg.Images.DownloadWorkers)
	require.Equal(t, 10, cfg.Images.MaxRetries)
}

func TestLoad_EmptyCacheDirRestored(t *testing.T) {
	t.Setenv("EMBEDDING_CACHE_DIR", "")

	cfg := config.Load()
	require.Equal(t, "./data/embedding_cache", cfg.Cache.Dir)
}

func TestParseDependenciesConfig(t *testing.T) {
	cfg := config.Load()

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.Server)
	require.Same(t, &cfg.Engine, deps.Engine)
	require.Same(t, &cfg.Images, deps.Images)
	require.Same(t, &cfg.Cache, deps.Cache)
	require.Same(t, &cfg.CLIP, deps.CLIP)
	require.Same(t, &cfg.Redis, deps.Redis)
}
