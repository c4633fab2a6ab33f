package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/artcollab/muse/internal/observability"
)

// RecommendationEngine matches project descriptions against artist
// portfolios in a shared text/image embedding space.
//
// Embedding population is eager: Initialize fills every artist record once,
// and Recommend only reads. Records become effectively immutable after
// Initialize returns, so concurrent requests need no locking.
type RecommendationEngine struct {
	source     []Artist
	artists    []*ArtistRecord
	generator  Generator
	cache      EmbeddingCache
	aggregator *ScoreAggregator
	metrics    MetricsCollector
}

// NewRecommendationEngine creates an engine over the supplied artist records
// (DI constructor). Call Initialize before Recommend.
func NewRecommendationEngine(
	source []Artist,
	generator Generator,
	cache EmbeddingCache,
	aggregator *ScoreAggregator,
	metrics MetricsCollector,
) *RecommendationEngine {
	return &RecommendationEngine{
		source:     source,
		artists:    nil,
		generator:  generator,
		cache:      cache,
		aggregator: aggregator,
		metrics:    metrics,
	}
}

// Initialize populates portfolio embeddings for every artist: cached vectors
// are reused, misses are downloaded and encoded in batches, and successful
// generations are written back to the cache. Per-URL and per-artist failures
// are absorbed into the artist records; Initialize itself only fails on a
// broken engine contract.
func (e *RecommendationEngine) Initialize(ctx context.Context) error {
	if e.generator == nil || e.cache == nil || e.aggregator == nil {
		return errors.New("engine is missing a dependency")
	}

	logger := observability.FromContext(ctx)
	logger.Info("initializing recommendation engine",
		observability.Int("artists", len(e.source)))

	records := make([]*ArtistRecord, 0, len(e.source))
	for _, artist := range e.source {
		records = append(records, e.populateArtist(ctx, artist))
	}
	e.artists = records

	eligible := 0
	for _, rec := range records {
		if rec.Eligible() {
			eligible++
		}
	}

	logger.Info("recommendation engine initialized",
		observability.Int("artists", len(records)),
		observability.Int("eligible", eligible))

	return nil
}

// populateArtist runs the per-artist state machine: no_images when the
// portfolio is empty, otherwise each URL resolves independently through
// cache hit, generate-and-store, or failure.
func (e *RecommendationEngine) populateArtist(ctx context.Context, artist Artist) *ArtistRecord {
	ctx = observability.WithArtistID(ctx, artist.ID)
	logger := observability.FromContext(ctx)

	record := &ArtistRecord{
		Artist:     artist,
		Embeddings: nil,
		FailedURLs: make(map[string]struct{}),
		Status:     StatusNoImages,
	}

	if len(artist.ImageURLs) == 0 {
		logger.Info("artist has no portfolio images")
		return record
	}

	cached := make(map[string][]float32)
	var misses []string
	for _, url := range artist.ImageURLs {
		if vector, ok := e.cache.Get(ctx, url); ok {
			cached[url] = vector
		} else {
			misses = append(misses, url)
		}
	}

	generated := make(map[string][]float32)
	if len(misses) > 0 {
		generated = e.generator.ProcessURLs(ctx, misses)

		successful := 0
		for url, vector := range generated {
			if vector == nil {
				continue
			}
			successful++
			e.cache.Set(ctx, url, vector)
		}

		if e.metrics != nil {
			e.metrics.RecordImageProcessing(successful, len(misses)-successful)
		}
	}

	for _, url := range artist.ImageURLs {
		vector, ok := cached[url]
		if !ok {
			vector = generated[url]
		}

		if vector == nil {
			record.FailedURLs[url] = struct{}{}
			continue
		}
		record.Embeddings = append(record.Embeddings, vector)
	}

	switch {
	case len(record.Embeddings) == 0:
		record.Status = StatusAllFailed
	case len(record.FailedURLs) > 0:
		record.Status = StatusPartialSuccess
	default:
		record.Status = StatusSuccess
	}

	logger.Info("artist portfolio processed",
		observability.Int("embeddings", len(record.Embeddings)),
		observability.Int("failed_urls", len(record.FailedURLs)),
		observability.String("status", string(record.Status)))

	return record
}

// Recommend ranks artists against a project description. topK <= 0 yields an
// empty list; so does an empty eligible-artist set. Ties keep original
// artist order.
func (e *RecommendationEngine) Recommend(
	ctx context.Context,
	description string,
	topK int,
) ([]RecommendationResult, error) {
	policy := e.aggregator.Policy()
	ctx = observability.WithStrategy(ctx, string(policy.Strategy))
	logger := observability.FromContext(ctx)

	if topK <= 0 {
		logger.Info("non-positive top_k, returning no results",
			observability.Int("top_k", topK))
		return []RecommendationResult{}, nil
	}

	start := time.Now()

	queryVector, err := e.generator.EncodeText(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("failed to encode project description: %w", err)
	}

	type rankedArtist struct {
		record *ArtistRecord
		score  float64
	}

	var ranked []rankedArtist
	var artistScores []float64

	for _, record := range e.artists {
		if !record.Eligible() {
			continue
		}

		scores := make([]float64, len(record.Embeddings))
		for i, embedding := range record.Embeddings {
			scores[i] = NormalizeSimilarity(CosineSimilarity(queryVector, embedding))
		}

		aggregated, aggErr := e.aggregator.Aggregate(scores)
		if aggErr != nil {
			return nil, fmt.Errorf("aggregation failed for artist %s: %w", record.ID, aggErr)
		}

		aggregated = ClampScore(aggregated)
		ranked = append(ranked, rankedArtist{record: record, score: aggregated})
		artistScores = append(artistScores, aggregated)
	}

	// Stable sort: equal scores keep original artist order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if topK < len(ranked) {
		ranked = ranked[:topK]
	}

	results := make([]RecommendationResult, 0, len(ranked))
	for _, entry := range ranked {
		results = append(results, RecommendationResult{
			ArtistID:                 entry.record.ID,
			Name:                     entry.record.Name,
			Description:              entry.record.Description,
			Score:                    entry.score,
			TopIllustrationURL:       entry.record.FirstHealthyURL(),
			NumIllustrationsAnalyzed: len(entry.record.Embeddings),
			StrategyUsed:             string(policy.Strategy),
		})
	}

	elapsed := time.Since(start)
	if e.metrics != nil {
		e.metrics.RecordRecommendation(artistScores, elapsed)
	}

	logger.Info("recommendation computed",
		observability.Int("eligible", len(artistScores)),
		observability.Int("returned", len(results)),
		observability.Duration("elapsed", elapsed))

	return results, nil
}

// Refresh invalidates the embedding cache and re-populates every artist.
// Returns the number of cache entries invalidated.
func (e *RecommendationEngine) Refresh(ctx context.Context) (int, error) {
	invalidated := e.cache.InvalidateAll(ctx)

	observability.FromContext(ctx).Info("embedding cache invalidated, reinitializing",
		observability.Int("invalidated", invalidated))

	if err := e.Initialize(ctx); err != nil {
		return invalidated, fmt.Errorf("reinitialization failed: %w", err)
	}

	return invalidated, nil
}

// Artists exposes per-artist processing state for operational tooling.
func (e *RecommendationEngine) Artists() []*ArtistRecord {
	return e.artists
}
