package main

import (
	"context"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/artcollab/muse/internal/cache/disk"
	rediscache "github.com/artcollab/muse/internal/cache/redis"
	"github.com/artcollab/muse/internal/clients"
	"github.com/artcollab/muse/internal/config"
	"github.com/artcollab/muse/internal/domain"
	"github.com/artcollab/muse/internal/embedding"
	"github.com/artcollab/muse/internal/embedding/clip"
	"github.com/artcollab/muse/internal/embedding/static"
	"github.com/artcollab/muse/internal/http"
	"github.com/artcollab/muse/internal/http/middleware"
	"github.com/artcollab/muse/internal/images"
	"github.com/artcollab/muse/internal/metrics"
	"github.com/artcollab/muse/internal/observability"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

//nolint:funlen // Composition root wires every component in one place.
func buildContainer() *dig.Container {
	container := dig.New()

	provide := func(constructor any) {
		if err := container.Provide(constructor); err != nil {
			log.Fatalf("Failed to provide dependency: %v", err)
		}
	}

	// Configuration
	provide(config.Load)
	provide(config.ParseDependenciesConfig)

	// Observability
	provide(observability.InitLogger)
	provide(prometheus.NewRegistry)
	provide(metrics.NewCollector)
	provide(func(collector *metrics.Collector) domain.MetricsCollector {
		return collector
	})
	provide(func(registry *prometheus.Registry) prometheus.Registerer {
		return registry
	})

	// Embedding model; an empty CLIP base URL selects the deterministic
	// in-memory model, mainly for local development.
	provide(func(cfg *clip.Config) (domain.EmbeddingModel, error) {
		if cfg.BaseURL == "" {
			return static.NewModel(cfg.Dimension), nil
		}
		return clip.NewClient(cfg)
	})

	// Image acquisition
	provide(func(cfg *config.ImagesConfig) domain.ImageFetcher {
		return images.NewDownloader(cfg)
	})

	// Embedding cache
	provide(func(
		cfg *config.CacheConfig,
		model domain.EmbeddingModel,
		collector domain.MetricsCollector,
	) (domain.EmbeddingCache, error) {
		return disk.NewStore(cfg.Dir, model.Name(), collector)
	})

	// Generator pipeline
	provide(func(
		model domain.EmbeddingModel,
		fetcher domain.ImageFetcher,
		cfg *config.ImagesConfig,
	) domain.Generator {
		return embedding.NewGenerator(model, fetcher, cfg)
	})

	// Score aggregation
	provide(func(cfg *config.EngineConfig) (*domain.ScoreAggregator, error) {
		policy, err := domain.NewAggregationPolicy(cfg.AggregationStrategy, cfg.TopKIllustrations)
		if err != nil {
			return nil, err
		}
		return domain.NewScoreAggregator(policy), nil
	})

	// Artist source
	provide(func(cfg *clients.Config) domain.ArtistSource {
		return clients.NewPortfolioClient(cfg)
	})

	// Optional Redis result cache; an empty address disables it.
	provide(func(cfg *config.RedisConfig) domain.ResultCache {
		if cfg.Addr == "" {
			return nil
		}
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		return rediscache.NewResultCache(client, time.Duration(cfg.ResultTTL)*time.Second)
	})

	// Recommendation engine, eagerly initialized with artist portfolios.
	provide(func(
		source domain.ArtistSource,
		generator domain.Generator,
		cache domain.EmbeddingCache,
		aggregator *domain.ScoreAggregator,
		collector domain.MetricsCollector,
	) (*domain.RecommendationEngine, error) {
		ctx := context.Background()

		artists, err := source.ListArtists(ctx)
		if err != nil {
			return nil, err
		}

		engine := domain.NewRecommendationEngine(artists, generator, cache, aggregator, collector)
		if err := engine.Initialize(ctx); err != nil {
			return nil, err
		}

		return engine, nil
	})

	// HTTP Layer
	provide(func(cfg *config.CORSConfig) middleware.Middleware {
		return middleware.BuildMiddlewareChain(cfg)
	})
	provide(http.NewHandler)
	provide(http.NewServer)

	return container
}
