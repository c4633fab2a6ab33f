package domain

import (
	"context"
	"image"
	"time"
)

// EmbeddingModel projects text and images into one shared vector space.
type EmbeddingModel interface {
	// EncodeText creates a vector embedding from text.
	EncodeText(ctx context.Context, text string) ([]float32, error)

	// EncodeImages creates vector embeddings for images, preserving input order.
	EncodeImages(ctx context.Context, images []image.Image) ([][]float32, error)

	// Name returns the model identifier recorded in the cache ledger.
	Name() string

	// Dimension returns the vector dimension.
	Dimension() int
}

// ImageFetcher downloads and validates portfolio images.
type ImageFetcher interface {
	// Download fetches and validates a single image.
	Download(ctx context.Context, url string) (image.Image, error)

	// DownloadAll fetches many images concurrently. The result holds exactly
	// one entry per input URL; failed downloads map to nil.
	DownloadAll(ctx context.Context, urls []string) map[string]image.Image
}

// Generator turns text and image URLs into embeddings.
type Generator interface {
	// EncodeText creates a vector embedding for a query description.
	EncodeText(ctx context.Context, text string) ([]float32, error)

	// ProcessURLs downloads and encodes images. The result holds exactly one
	// entry per input URL; failed URLs map to nil.
	ProcessURLs(ctx context.Context, urls []string) map[string][]float32
}

// EmbeddingCache is a persistent URL-to-vector store. All failure modes on
// the read path degrade to a miss; writes are best effort. The cache must
// never fail the recommendation path.
type EmbeddingCache interface {
	// Get returns the cached vector for url, or ok=false on a miss.
	Get(ctx context.Context, url string) (vector []float32, ok bool)

	// Set stores the vector for url.
	Set(ctx context.Context, url string, vector []float32)

	// Invalidate removes url from the cache, reporting whether it existed.
	Invalidate(ctx context.Context, url string) bool

	// InvalidateAll clears the cache and returns the number of entries removed.
	InvalidateAll(ctx context.Context) int

	// CleanupOrphaned reconciles ledger entries without artifacts and
	// artifacts without ledger entries, returning the total removed.
	CleanupOrphaned(ctx context.Context) int

	// Stats reports entry counts and on-disk size.
	Stats(ctx context.Context) CacheStats
}

// MetricsCollector receives fire-and-forget observations. Implementations
// must never block or fail the caller.
type MetricsCollector interface {
	RecordCacheHit()
	RecordCacheMiss()
	RecordImageProcessing(successful, failed int)
	RecordRecommendation(scores []float64, elapsed time.Duration)
}

// ArtistSource supplies artist records at engine construction.
type ArtistSource interface {
	ListArtists(ctx context.Context) ([]Artist, error)
}

// ResultCache is an optional TTL cache for serialized recommendation
// responses. A nil ResultCache disables response caching.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte)
}
