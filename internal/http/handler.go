package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/artcollab/muse/internal/cache/redis"
	"github.com/artcollab/muse/internal/domain"
	"github.com/artcollab/muse/internal/metrics"
	"github.com/artcollab/muse/internal/observability"
)

const defaultTopK = 3

// Handler handles HTTP requests.
type Handler struct {
	engine      *domain.RecommendationEngine
	cache       domain.EmbeddingCache
	collector   *metrics.Collector
	resultCache domain.ResultCache
}

// NewHandler creates a new HTTP handler (DI constructor). resultCache may be
// nil, which disables response caching.
func NewHandler(
	engine *domain.RecommendationEngine,
	cache domain.EmbeddingCache,
	collector *metrics.Collector,
	resultCache domain.ResultCache,
) *Handler {
	return &Handler{
		engine:      engine,
		cache:       cache,
		collector:   collector,
		resultCache: resultCache,
	}
}

// RecommendationRequest is the body of POST /v1/recommendations.
type RecommendationRequest struct {
	Description string `json:"description"`
	TopK        *int   `json:"top_k,omitempty"`
}

// RecommendationResponse is the body of a successful recommendation call.
type RecommendationResponse struct {
	RecommendedArtists []domain.RecommendationResult `json:"recommended_artists"`
}

// HandleRecommend processes recommendation requests.
func (h *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Description == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}

	topK := defaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}

	logger := observability.FromContext(ctx)
	logger.Info("recommendation request received",
		zap.Int("top_k", topK),
		zap.Int("description_length", len(req.Description)),
	)

	cacheKey := redis.Key(req.Description, topK)
	if h.resultCache != nil {
		if cached, ok := h.resultCache.Get(ctx, cacheKey); ok {
			logger.Info("returning cached recommendation response")
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			_, _ = w.Write(cached)
			return
		}
	}

	results, err := h.engine.Recommend(ctx, req.Description, topK)
	if err != nil {
		logger.Error("recommendation failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(RecommendationResponse{RecommendedArtists: results})
	if err != nil {
		logger.Error("failed to encode response", zap.Error(err))
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
		return
	}

	if h.resultCache != nil {
		h.resultCache.Set(ctx, cacheKey, body)
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// HandleMetrics returns the aggregate metrics snapshot.
func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, r, h.collector.GetSnapshot())
}

// HandleCacheStats returns embedding cache statistics.
func (h *Handler) HandleCacheStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, r, h.cache.Stats(r.Context()))
}

// InvalidateRequest is the body of POST /v1/cache/invalidate.
type InvalidateRequest struct {
	URL string `json:"url,omitempty"`
	All bool   `json:"all,omitempty"`
}

// HandleCacheInvalidate removes one entry (url) or every entry (all) from
// the embedding cache.
func (h *Handler) HandleCacheInvalidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req InvalidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	switch {
	case req.All:
		count := h.cache.InvalidateAll(ctx)
		writeJSON(w, r, map[string]int{"invalidated": count})
	case req.URL != "":
		existed := h.cache.Invalidate(ctx, req.URL)
		writeJSON(w, r, map[string]bool{"invalidated": existed})
	default:
		http.Error(w, "either url or all is required", http.StatusBadRequest)
	}
}

// HandleCacheCleanup reconciles orphaned ledger entries and artifacts.
func (h *Handler) HandleCacheCleanup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	removed := h.cache.CleanupOrphaned(r.Context())
	writeJSON(w, r, map[string]int{"removed": removed})
}

// HandleCacheRefresh invalidates the embedding cache and re-populates every
// artist record.
func (h *Handler) HandleCacheRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	invalidated, err := h.engine.Refresh(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("cache refresh failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, map[string]int{"invalidated": invalidated})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		observability.FromContext(r.Context()).Error("failed to encode response", zap.Error(err))
	}
}
