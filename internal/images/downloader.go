// Package images handles portfolio image acquisition: validated downloads
// with retry and backoff, bounded parallel fan-out, and aspect-preserving
// resizing ahead of embedding generation.
package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	// Decoder registration for the accepted portfolio formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/artcollab/muse/internal/config"
	"github.com/artcollab/muse/internal/observability"
)

const (
	initialBackoff = 500 * time.Millisecond

	// Below this edge length an image is accepted but flagged: tiny inputs
	// degrade embedding quality.
	minQualityDimension = 32
)

// ErrNotAnImage indicates the response payload is not a decodable image.
var ErrNotAnImage = errors.New("payload is not a valid image")

var validImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/bmp",
	"image/tiff",
}

// Downloader fetches and validates images over HTTP. Transient failures
// (timeouts, connection errors, 5xx, 429) are retried with exponential
// backoff; client errors and validation failures are terminal.
type Downloader struct {
	client     *http.Client
	workers    int
	maxRetries int
}

// NewDownloader creates a downloader from image settings (DI constructor).
func NewDownloader(cfg *config.ImagesConfig) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: time.Duration(cfg.DownloadTimeout) * time.Second,
		},
		workers:    cfg.DownloadWorkers,
		maxRetries: cfg.MaxRetries,
	}
}

// Download fetches and validates a single image, retrying transient failures
// up to the configured bound.
func (d *Downloader) Download(ctx context.Context, url string) (image.Image, error) {
	logger := observability.FromContext(ctx)

	var img image.Image
	attempt := 0

	operation := func() error {
		attempt++

		fetched, err := d.fetchOnce(ctx, url)
		if err != nil {
			var permanent *backoff.PermanentError
			if !errors.As(err, &permanent) {
				logger.Warn("transient download failure, will retry",
					observability.String("url", url),
					observability.Int("attempt", attempt),
					observability.Error(err))
			}
			return err
		}

		img = fetched
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialBackoff
	bo.MaxElapsedTime = 0

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(bo, uint64(d.maxRetries)), ctx))
	if err != nil {
		logger.Warn("image download failed",
			observability.String("url", url),
			observability.Int("attempts", attempt),
			observability.Error(err))
		return nil, err
	}

	return img, nil
}

// fetchOnce performs one download attempt. Permanent errors mark conditions
// that retrying cannot fix.
func (d *Downloader) fetchOnce(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("invalid request: %w", err))
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("server error: status %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, backoff.Permanent(fmt.Errorf("client error: status %d", resp.StatusCode))
	}

	if err := validateContentType(resp.Header.Get("Content-Type")); err != nil {
		return nil, backoff.Permanent(err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	img, err := d.validateImage(ctx, url, data)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	return img, nil
}

// validateImage decodes the payload and checks its dimensions.
func (d *Downloader) validateImage(ctx context.Context, url string, data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotAnImage, err.Error())
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrNotAnImage, width, height)
	}

	if width < minQualityDimension || height < minQualityDimension {
		observability.FromContext(ctx).Warn("image is very small, embedding quality may suffer",
			observability.String("url", url),
			observability.Int("width", width),
			observability.Int("height", height))
	}

	observability.FromContext(ctx).Debug("image downloaded and validated",
		observability.String("url", url),
		observability.String("format", format),
		observability.Int("width", width),
		observability.Int("height", height))

	return img, nil
}

// DownloadAll fans Download out over a bounded worker pool. The result holds
// exactly one entry per input URL; failed downloads map to nil, and one
// failure never aborts the batch.
func (d *Downloader) DownloadAll(ctx context.Context, urls []string) map[string]image.Image {
	logger := observability.FromContext(ctx)
	logger.Info("starting parallel image download",
		observability.Int("urls", len(urls)),
		observability.Int("workers", d.workers))

	results := make(map[string]image.Image, len(urls))
	var mu sync.Mutex

	group := new(errgroup.Group)
	group.SetLimit(d.workers)

	for _, url := range urls {
		url := url
		group.Go(func() error {
			img, err := d.Download(ctx, url)
			if err != nil {
				img = nil
			}

			mu.Lock()
			results[url] = img
			mu.Unlock()

			// Failures are recorded per URL, never propagated.
			return nil
		})
	}

	_ = group.Wait()

	successful := 0
	for _, img := range results {
		if img != nil {
			successful++
		}
	}

	logger.Info("parallel download complete",
		observability.Int("successful", successful),
		observability.Int("failed", len(results)-successful))

	return results
}

func validateContentType(contentType string) error {
	normalized := strings.ToLower(contentType)
	for _, valid := range validImageTypes {
		if strings.HasPrefix(normalized, valid) {
			return nil
		}
	}
	return fmt.Errorf("invalid content type %q, expected an image format", contentType)
}
