// Package embedding turns text and portfolio image URLs into vectors in the
// model's shared comparison space.
package embedding

import (
	"context"
	"fmt"
	"image"

	"github.com/artcollab/muse/internal/config"
	"github.com/artcollab/muse/internal/domain"
	"github.com/artcollab/muse/internal/images"
	"github.com/artcollab/muse/internal/observability"
)

// Generator composes image acquisition, resizing and the embedding model
// into the URL-to-vector pipeline. Encoding runs in fixed-size batches so
// peak model memory stays bounded regardless of portfolio size.
type Generator struct {
	model        domain.EmbeddingModel
	fetcher      domain.ImageFetcher
	maxImageSize int
	batchSize    int
}

// NewGenerator creates a generator (DI constructor).
func NewGenerator(
	model domain.EmbeddingModel,
	fetcher domain.ImageFetcher,
	cfg *config.ImagesConfig,
) *Generator {
	return &Generator{
		model:        model,
		fetcher:      fetcher,
		maxImageSize: cfg.MaxImageSize,
		batchSize:    cfg.BatchSize,
	}
}

// Resize downscales an image ahead of encoding. Pure memory/performance
// optimization; images within bounds pass through unchanged.
func (g *Generator) Resize(img image.Image) image.Image {
	return images.Resize(img, g.maxImageSize)
}

// EncodeText embeds a query description. No resizing applies to text.
func (g *Generator) EncodeText(ctx context.Context, text string) ([]float32, error) {
	vector, err := g.model.EncodeText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to encode text: %w", err)
	}
	return vector, nil
}

// EncodeImage resizes then embeds a single image.
func (g *Generator) EncodeImage(ctx context.Context, img image.Image) ([]float32, error) {
	vectors, err := g.model.EncodeImages(ctx, []image.Image{g.Resize(img)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("model returned %d embeddings for one image", len(vectors))
	}
	return vectors[0], nil
}

// EncodeBatch resizes and embeds many images, preserving input order. Images
// are submitted to the model in sub-batches of the configured size.
func (g *Generator) EncodeBatch(ctx context.Context, imgs []image.Image) ([][]float32, error) {
	if len(imgs) == 0 {
		return nil, nil
	}

	resized := make([]image.Image, len(imgs))
	for i, img := range imgs {
		resized[i] = g.Resize(img)
	}

	vectors := make([][]float32, 0, len(resized))
	for start := 0; start < len(resized); start += g.batchSize {
		end := min(start+g.batchSize, len(resized))

		batch, err := g.model.EncodeImages(ctx, resized[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to encode batch at offset %d: %w", start, err)
		}
		if len(batch) != end-start {
			return nil, fmt.Errorf("model returned %d embeddings for %d images", len(batch), end-start)
		}

		vectors = append(vectors, batch...)
	}

	return vectors, nil
}

// GenerateFromURL downloads one image and embeds it. All failures degrade to
// nil; nothing propagates.
func (g *Generator) GenerateFromURL(ctx context.Context, url string) []float32 {
	logger := observability.FromContext(ctx)

	img, err := g.fetcher.Download(ctx, url)
	if err != nil {
		logger.Warn("failed to download image for embedding",
			observability.String("url", url),
			observability.Error(err))
		return nil
	}

	vector, err := g.EncodeImage(ctx, img)
	if err != nil {
		logger.Warn("failed to encode downloaded image",
			observability.String("url", url),
			observability.Error(err))
		return nil
	}

	return vector
}

// ProcessURLs downloads all URLs in parallel and encodes the successful
// images in fixed-size batches. The result holds exactly one entry per input
// URL; failed downloads and failed batches map to nil. A failing batch only
// takes down its own URLs.
func (g *Generator) ProcessURLs(ctx context.Context, urls []string) map[string][]float32 {
	logger := observability.FromContext(ctx)

	results := make(map[string][]float32, len(urls))
	if len(urls) == 0 {
		return results
	}

	downloaded := g.fetcher.DownloadAll(ctx, urls)

	var successfulURLs []string
	var successfulImages []image.Image
	for _, url := range urls {
		if _, seen := results[url]; seen {
			continue
		}

		img := downloaded[url]
		if img == nil {
			results[url] = nil
			continue
		}

		// Placeholder until the batch completes; keeps one entry per URL.
		results[url] = nil
		successfulURLs = append(successfulURLs, url)
		successfulImages = append(successfulImages, g.Resize(img))
	}

	if len(successfulImages) == 0 {
		logger.Warn("no images were successfully downloaded",
			observability.Int("urls", len(urls)))
		return results
	}

	for start := 0; start < len(successfulImages); start += g.batchSize {
		end := min(start+g.batchSize, len(successfulImages))

		batch, err := g.model.EncodeImages(ctx, successfulImages[start:end])
		if err != nil || len(batch) != end-start {
			logger.Error("failed to encode image batch",
				observability.Int("offset", start),
				observability.Int("size", end-start),
				observability.Error(err))
			continue
		}

		for i, vector := range batch {
			results[successfulURLs[start+i]] = vector
		}
	}

	successful := 0
	for _, vector := range results {
		if vector != nil {
			successful++
		}
	}

	logger.Info("url batch processing complete",
		observability.Int("successful", successful),
		observability.Int("failed", len(results)-successful))

	return results
}
