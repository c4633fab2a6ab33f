// Package clients holds upstream data-source clients. The recommender core
// treats these as external collaborators behind the domain.ArtistSource port.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/artcollab/muse/internal/domain"
	"github.com/artcollab/muse/internal/observability"
)

const (
	portfoliosPath = "/api/v1/portfolios"
	artistsKey     = "artists"
	cacheSize      = 8
)

// PortfolioClient fetches artist records from the portfolio service,
// memoizing responses in an expirable LRU so repeated engine refreshes do
// not hammer the upstream.
type PortfolioClient struct {
	baseURL    string
	httpClient *http.Client
	cache      *expirable.LRU[string, []domain.Artist]
}

// NewPortfolioClient creates a portfolio service client (DI constructor).
func NewPortfolioClient(config *Config) *PortfolioClient {
	return &PortfolioClient{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
		cache: expirable.NewLRU[string, []domain.Artist](
			cacheSize, nil, time.Duration(config.CacheTTL)*time.Second),
	}
}

// ListArtists returns all artists with their portfolios.
func (c *PortfolioClient) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	logger := observability.FromContext(ctx)

	if artists, ok := c.cache.Get(artistsKey); ok {
		logger.Debug("portfolio cache hit",
			observability.Int("artists", len(artists)))
		return artists, nil
	}

	url := c.baseURL + portfoliosPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portfolio service request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portfolio service returned status %d", resp.StatusCode)
	}

	var artists []domain.Artist
	if err := json.Unmarshal(body, &artists); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio response: %w", err)
	}

	c.cache.Add(artistsKey, artists)

	logger.Info("fetched artists from portfolio service",
		observability.Int("artists", len(artists)))

	return artists, nil
}
