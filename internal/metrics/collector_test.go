package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/artcollab/muse/internal/metrics"
)

func newCollector() *metrics.Collector {
	return metrics.NewCollector(prometheus.NewRegistry())
}

func TestSnapshot_Empty(t *testing.T) {
	collector := newCollector()

	snapshot := collector.GetSnapshot()
	require.Zero(t, snapshot.Recommendations.TotalCount)
	require.Zero(t, snapshot.Recommendations.AvgSimilarityScore)
	require.Zero(t, snapshot.ImageProcessing.TotalProcessed)
	require.Zero(t, snapshot.Cache.TotalAccesses)
	require.Zero(t, snapshot.Cache.HitRatePercent)
	require.NotEmpty(t, snapshot.Timestamp)
}

func TestSnapshot_CacheHitRate(t *testing.T) {
	collector := newCollector()

	collector.RecordCacheHit()
	collector.RecordCacheHit()
	collector.RecordCacheHit()
	collector.RecordCacheMiss()

	snapshot := collector.GetSnapshot()
	require.Equal(t, 3, snapshot.Cache.Hits)
	require.Equal(t, 1, snapshot.Cache.Misses)
	require.Equal(t, 4, snapshot.Cache.TotalAccesses)
	require.InDelta(t, 75.0, snapshot.Cache.HitRatePercent, 1e-9)
}

func TestSnapshot_ImageProcessing(t *testing.T) {
	collector := newCollector()

	collector.RecordImageProcessing(8, 2)
	collector.RecordImageProcessing(2, 0)

	snapshot := collector.GetSnapshot()
	require.Equal(t, 12, snapshot.ImageProcessing.TotalProcessed)
	require.Equal(t, 10, snapshot.ImageProcessing.Successful)
	require.Equal(t, 2, snapshot.ImageProcessing.Failed)
	require.InDelta(t, 83.33, snapshot.ImageProcessing.SuccessRatePercent, 0.01)
}

func TestSnapshot_Recommendations(t *testing.T) {
	collector := newCollector()

	collector.RecordRecommendation([]float64{0.8, 0.6}, 100*time.Millisecond)
	collector.RecordRecommendation([]float64{0.4}, 300*time.Millisecond)

	snapshot := collector.GetSnapshot()
	require.Equal(t, 2, snapshot.Recommendations.TotalCount)
	require.InDelta(t, 0.6, snapshot.Recommendations.AvgSimilarityScore, 1e-9)
	require.InDelta(t, 200.0, snapshot.Recommendations.AvgResponseTimeMs, 1e-9)
	require.Greater(t, snapshot.Recommendations.ThroughputPerMinute, 0.0)
}

func TestSnapshot_EmptyScoreListStillCounts(t *testing.T) {
	collector := newCollector()

	collector.RecordRecommendation(nil, 50*time.Millisecond)

	snapshot := collector.GetSnapshot()
	require.Equal(t, 1, snapshot.Recommendations.TotalCount)
	require.Zero(t, snapshot.Recommendations.AvgSimilarityScore)
}

func TestNewCollector_RegistersWithoutConflict(t *testing.T) {
	// Two collectors on separate registries must not collide.
	first := metrics.NewCollector(prometheus.NewRegistry())
	second := metrics.NewCollector(prometheus.NewRegistry())

	first.RecordCacheHit()
	second.RecordCacheMiss()

	require.Equal(t, 1, first.GetSnapshot().Cache.Hits)
	require.Equal(t, 1, second.GetSnapshot().Cache.Misses)
}
