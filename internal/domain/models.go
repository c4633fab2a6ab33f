package domain

// ProcessingStatus describes the outcome of embedding population for one artist.
type ProcessingStatus string

const (
	// StatusNoImages means the artist arrived with zero portfolio URLs.
	StatusNoImages ProcessingStatus = "no_images"

	// StatusAllFailed means every portfolio image failed to download or encode.
	StatusAllFailed ProcessingStatus = "all_failed"

	// StatusPartialSuccess means at least one image failed but at least one succeeded.
	StatusPartialSuccess ProcessingStatus = "partial_success"

	// StatusSuccess means every portfolio image produced an embedding.
	StatusSuccess ProcessingStatus = "success"
)

// Artist is a raw artist record as supplied by the portfolio source.
type Artist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"image_urls"`
}

// ArtistRecord is an artist augmented with portfolio embeddings. Embeddings
// are aligned positionally with the successful subset of ImageURLs, so
// len(Embeddings) == len(ImageURLs) - len(FailedURLs). Records are mutated
// only during initialization and refresh; reads during recommendation are
// lock-free.
type ArtistRecord struct {
	Artist

	Embeddings [][]float32
	FailedURLs map[string]struct{}
	Status     ProcessingStatus
}

// Eligible reports whether the artist can participate in ranking.
func (r *ArtistRecord) Eligible() bool {
	return len(r.Embeddings) > 0
}

// FirstHealthyURL returns the first portfolio URL that did not fail, or ""
// when every URL failed.
func (r *ArtistRecord) FirstHealthyURL() string {
	for _, url := range r.ImageURLs {
		if _, failed := r.FailedURLs[url]; !failed {
			return url
		}
	}
	return ""
}

// RecommendationResult is one ranked artist in a recommendation response.
type RecommendationResult struct {
	ArtistID                 string  `json:"artist_id"`
	Name                     string  `json:"name"`
	Description              string  `json:"description"`
	Score                    float64 `json:"score"`
	TopIllustrationURL       string  `json:"top_illustration_url,omitempty"`
	NumIllustrationsAnalyzed int     `json:"num_illustrations_analyzed"`
	StrategyUsed             string  `json:"strategy_used"`
}

// CacheStats summarizes the state of the embedding cache.
type CacheStats struct {
	TotalEntries   int   `json:"total_entries"`
	ExistingFiles  int   `json:"existing_files"`
	MissingFiles   int   `json:"missing_files"`
	TotalSizeBytes int64 `json:"total_size_bytes"`
}
