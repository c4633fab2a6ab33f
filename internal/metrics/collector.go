// Package metrics implements the fire-and-forget metrics sink: Prometheus
// series for scraping plus an aggregate snapshot for the service's own
// metrics endpoint.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records cache, image-processing and recommendation observations.
// All methods are non-blocking and never fail the caller.
type Collector struct {
	mu sync.Mutex

	recommendationCount int
	scoreSum            float64
	scoreCount          int
	responseTimeSumMs   float64
	imagesSuccessful    int
	imagesFailed        int
	cacheHits           int
	cacheMisses         int
	startTime           time.Time

	promCacheHits       prometheus.Counter
	promCacheMisses     prometheus.Counter
	promImagesProcessed *prometheus.CounterVec
	promSimilarity      prometheus.Histogram
	promResponseTime    prometheus.Histogram
	promRecommendations prometheus.Counter
}

// NewCollector creates a collector and registers its series (DI constructor).
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		startTime: time.Now(),
		promCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "muse_embedding_cache_hits_total",
			Help: "Embedding cache hits.",
		}),
		promCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "muse_embedding_cache_misses_total",
			Help: "Embedding cache misses.",
		}),
		promImagesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "muse_images_processed_total",
			Help: "Portfolio images processed, by outcome.",
		}, []string{"outcome"}),
		promSimilarity: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "muse_artist_similarity_score",
			Help:    "Aggregated per-artist similarity scores.",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
		promResponseTime: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "muse_recommendation_duration_seconds",
			Help:    "Recommendation request duration.",
			Buckets: prometheus.DefBuckets,
		}),
		promRecommendations: factory.NewCounter(prometheus.CounterOpts{
			Name: "muse_recommendations_total",
			Help: "Recommendation requests served.",
		}),
	}
}

// RecordCacheHit records an embedding cache hit.
func (c *Collector) RecordCacheHit() {
	c.promCacheHits.Inc()

	c.mu.Lock()
	c.cacheHits++
	c.mu.Unlock()
}

// RecordCacheMiss records an embedding cache miss.
func (c *Collector) RecordCacheMiss() {
	c.promCacheMisses.Inc()

	c.mu.Lock()
	c.cacheMisses++
	c.mu.Unlock()
}

// RecordImageProcessing records image pipeline outcomes.
func (c *Collector) RecordImageProcessing(successful, failed int) {
	c.promImagesProcessed.WithLabelValues("success").Add(float64(successful))
	c.promImagesProcessed.WithLabelValues("failure").Add(float64(failed))

	c.mu.Lock()
	c.imagesSuccessful += successful
	c.imagesFailed += failed
	c.mu.Unlock()
}

// RecordRecommendation records per-artist scores and request latency.
func (c *Collector) RecordRecommendation(scores []float64, elapsed time.Duration) {
	c.promRecommendations.Inc()
	c.promResponseTime.Observe(elapsed.Seconds())
	for _, score := range scores {
		c.promSimilarity.Observe(score)
	}

	c.mu.Lock()
	c.recommendationCount++
	c.responseTimeSumMs += float64(elapsed.Milliseconds())
	for _, score := range scores {
		c.scoreSum += score
	}
	c.scoreCount += len(scores)
	c.mu.Unlock()
}

// RecommendationStats summarizes recommendation activity.
type RecommendationStats struct {
	TotalCount          int     `json:"total_count"`
	AvgSimilarityScore  float64 `json:"avg_similarity_score"`
	AvgResponseTimeMs   float64 `json:"avg_response_time_ms"`
	ThroughputPerMinute float64 `json:"throughput_per_minute"`
}

// ImageProcessingStats summarizes image pipeline outcomes.
type ImageProcessingStats struct {
	TotalProcessed     int     `json:"total_processed"`
	Successful         int     `json:"successful"`
	Failed             int     `json:"failed"`
	SuccessRatePercent float64 `json:"success_rate_percent"`
}

// CacheAccessStats summarizes embedding cache accesses.
type CacheAccessStats struct {
	Hits           int     `json:"hits"`
	Misses         int     `json:"misses"`
	TotalAccesses  int     `json:"total_accesses"`
	HitRatePercent float64 `json:"hit_rate_percent"`
}

// Snapshot is a point-in-time aggregate view of all collected metrics.
type Snapshot struct {
	Timestamp       string               `json:"timestamp"`
	Recommendations RecommendationStats  `json:"recommendations"`
	ImageProcessing ImageProcessingStats `json:"image_processing"`
	Cache           CacheAccessStats     `json:"cache"`
	UptimeSeconds   float64              `json:"uptime_seconds"`
}

// GetSnapshot returns current aggregate metrics.
func (c *Collector) GetSnapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	elapsed := time.Since(c.startTime)

	snapshot := Snapshot{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Recommendations: RecommendationStats{
			TotalCount:          c.recommendationCount,
			AvgSimilarityScore:  0,
			AvgResponseTimeMs:   0,
			ThroughputPerMinute: 0,
		},
		ImageProcessing: ImageProcessingStats{
			TotalProcessed:     c.imagesSuccessful + c.imagesFailed,
			Successful:         c.imagesSuccessful,
			Failed:             c.imagesFailed,
			SuccessRatePercent: 0,
		},
		Cache: CacheAccessStats{
			Hits:           c.cacheHits,
			Misses:         c.cacheMisses,
			TotalAccesses:  c.cacheHits + c.cacheMisses,
			HitRatePercent: 0,
		},
		UptimeSeconds: elapsed.Seconds(),
	}

	if c.scoreCount > 0 {
		snapshot.Recommendations.AvgSimilarityScore = c.scoreSum / float64(c.scoreCount)
	}
	if c.recommendationCount > 0 {
		snapshot.Recommendations.AvgResponseTimeMs = c.responseTimeSumMs / float64(c.recommendationCount)
	}
	if elapsed > 0 {
		snapshot.Recommendations.ThroughputPerMinute = float64(c.recommendationCount) / elapsed.Minutes()
	}
	if total := snapshot.ImageProcessing.TotalProcessed; total > 0 {
		snapshot.ImageProcessing.SuccessRatePercent = float64(c.imagesSuccessful) / float64(total) * 100
	}
	if total := snapshot.Cache.TotalAccesses; total > 0 {
		snapshot.Cache.HitRatePercent = float64(c.cacheHits) / float64(total) * 100
	}

	return snapshot
}
