package embedding_test

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artcollab/muse/internal/config"
	"github.com/artcollab/muse/internal/embedding"
	"github.com/artcollab/muse/internal/mocks"
)

func testImagesConfig() *config.ImagesConfig {
	return &config.ImagesConfig{
		MaxImageSize:    512,
		BatchSize:       2,
		DownloadTimeout: 5,
		DownloadWorkers: 4,
		MaxRetries:      2,
	}
}

func testImage(size int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

func TestEncodeText(t *testing.T) {
	model := mocks.NewMockEmbeddingModel(t)
	model.EXPECT().EncodeText(mock.Anything, "storybook watercolor").
		Return([]float32{0.1, 0.2}, nil)

	generator := embedding.NewGenerator(model, mocks.NewMockImageFetcher(t), testImagesConfig())

	vector, err := generator.EncodeText(context.Background(), "storybook watercolor")
	require.NoError(t, err)
	require.Equal(t, []float32{0.1, 0.2}, vector)
}

func TestEncodeText_ModelFailure(t *testing.T) {
	model := mocks.NewMockEmbeddingModel(t)
	model.EXPECT().EncodeText(mock.Anything, mock.Anything).
		Return(nil, errors.New("inference unavailable"))

	generator := embedding.NewGenerator(model, mocks.NewMockImageFetcher(t), testImagesConfig())

	_, err := generator.EncodeText(context.Background(), "anything")
	require.Error(t, err)
}

func TestEncodeImage_ResizesBeforeEncoding(t *testing.T) {
	model := mocks.NewMockEmbeddingModel(t)
	model.EXPECT().EncodeImages(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, imgs []image.Image) ([][]float32, error) {
			require.Len(t, imgs, 1)
			require.Equal(t, 512, imgs[0].Bounds().Dx())
			return [][]float32{{1, 0}}, nil
		})

	generator := embedding.NewGenerator(model, mocks.NewMockImageFetcher(t), testImagesConfig())

	vector, err := generator.EncodeImage(context.Background(), testImage(1024))
	require.NoError(t, err)
	require.Equal(t, []float32{1, 0}, vector)
}

func TestEncodeBatch_SubmitsInSubBatches(t *testing.T) {
	model := mocks.NewMockEmbeddingModel(t)

	var calls []int
	model.EXPECT().EncodeImages(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, imgs []image.Image) ([][]float32, error) {
			calls = append(calls, len(imgs))
			out := make([][]float32, len(imgs))
			for i := range out {
				out[i] = []float32{float32(i)}
			}
			return out, nil
		})

	generator := embedding.NewGenerator(model, mocks.NewMockImageFetcher(t), testImagesConfig())

	imgs := []image.Image{testImage(10), testImage(10), testImage(10), testImage(10), testImage(10)}
	vectors, err := generator.EncodeBatch(context.Background(), imgs)
	require.NoError(t, err)
	require.Len(t, vectors, 5)

	// Batch size 2: five images split into 2, 2, 1.
	require.Equal(t, []int{2, 2, 1}, calls)
}

func TestEncodeBatch_Empty(t *testing.T) {
	generator := embedding.NewGenerator(
		mocks.NewMockEmbeddingModel(t), mocks.NewMockImageFetcher(t), testImagesConfig())

	vectors, err := generator.EncodeBatch(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, vectors)
}

func TestGenerateFromURL_DownloadFailureYieldsNil(t *testing.T) {
	fetcher := mocks.NewMockImageFetcher(t)
	fetcher.EXPECT().Download(mock.Anything, "https://img.test/broken.png").
		Return(nil, errors.New("connection refused"))

	generator := embedding.NewGenerator(mocks.NewMockEmbeddingModel(t), fetcher, testImagesConfig())

	require.Nil(t, generator.GenerateFromURL(context.Background(), "https://img.test/broken.png"))
}

func TestGenerateFromURL_Success(t *testing.T) {
	fetcher := mocks.NewMockImageFetcher(t)
	fetcher.EXPECT().Download(mock.Anything, "https://img.test/a.png").
		Return(testImage(64), nil)

	model := mocks.NewMockEmbeddingModel(t)
	model.EXPECT().EncodeImages(mock.Anything, mock.Anything).
		Return([][]float32{{0.3, 0.7}}, nil)

	generator := embedding.NewGenerator(model, fetcher, testImagesConfig())

	vector := generator.GenerateFromURL(context.Background(), "https://img.test/a.png")
	require.Equal(t, []float32{0.3, 0.7}, vector)
}

func TestProcessURLs_OneEntryPerURL(t *testing.T) {
	urls := []string{
		"https://img.test/a.png",
		"https://img.test/broken.png",
		"https://img.test/b.png",
	}

	fetcher := mocks.NewMockImageFetcher(t)
	fetcher.EXPECT().DownloadAll(mock.Anything, urls).
		Return(map[string]image.Image{
			"https://img.test/a.png":      testImage(64),
			"https://img.test/broken.png": nil,
			"https://img.test/b.png":      testImage(64),
		})

	model := mocks.NewMockEmbeddingModel(t)
	model.EXPECT().EncodeImages(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, imgs []image.Image) ([][]float32, error) {
			out := make([][]float32, len(imgs))
			for i := range out {
				out[i] = []float32{float32(i + 1)}
			}
			return out, nil
		})

	generator := embedding.NewGenerator(model, fetcher, testImagesConfig())

	results := generator.ProcessURLs(context.Background(), urls)
	require.Len(t, results, 3)
	require.NotNil(t, results["https://img.test/a.png"])
	require.NotNil(t, results["https://img.test/b.png"])

	vector, present := results["https://img.test/broken.png"]
	require.True(t, present)
	require.Nil(t, vector)
}

func TestProcessURLs_FailedBatchOnlyAffectsItsURLs(t *testing.T) {
	// Batch size 2: the first batch covers a and b, the second covers c.
	urls := []string{"https://img.test/a.png", "https://img.test/b.png", "https://img.test/c.png"}

	downloaded := make(map[string]image.Image, len(urls))
	for _, url := range urls {
		downloaded[url] = testImage(64)
	}

	fetcher := mocks.NewMockImageFetcher(t)
	fetcher.EXPECT().DownloadAll(mock.Anything, urls).Return(downloaded)

	call := 0
	model := mocks.NewMockEmbeddingModel(t)
	model.EXPECT().EncodeImages(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, imgs []image.Image) ([][]float32, error) {
			call++
			if call == 1 {
				return nil, errors.New("inference overloaded")
			}
			out := make([][]float32, len(imgs))
			for i := range out {
				out[i] = []float32{1}
			}
			return out, nil
		})

	generator := embedding.NewGenerator(model, fetcher, testImagesConfig())

	results := generator.ProcessURLs(context.Background(), urls)
	require.Len(t, results, 3)
	require.Nil(t, results["https://img.test/a.png"])
	require.Nil(t, results["https://img.test/b.png"])
	require.NotNil(t, results["https://img.test/c.png"])
}

func TestProcessURLs_DuplicateURLsCollapse(t *testing.T) {
	urls := []string{"https://img.test/a.png", "https://img.test/a.png"}

	fetcher := mocks.NewMockImageFetcher(t)
	fetcher.EXPECT().DownloadAll(mock.Anything, urls).
		Return(map[string]image.Image{"https://img.test/a.png": testImage(64)})

	model := mocks.NewMockEmbeddingModel(t)
	model.EXPECT().EncodeImages(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, imgs []image.Image) ([][]float32, error) {
			require.Len(t, imgs, 1)
			return [][]float32{{1}}, nil
		})

	generator := embedding.NewGenerator(model, fetcher, testImagesConfig())

	results := generator.ProcessURLs(context.Background(), urls)
	require.Len(t, results, 1)
	require.Equal(t, []float32{1}, results["https://img.test/a.png"])
}

func TestProcessURLs_Empty(t *testing.T) {
	generator := embedding.NewGenerator(
		mocks.NewMockEmbeddingModel(t), mocks.NewMockImageFetcher(t), testImagesConfig())

	require.Empty(t, generator.ProcessURLs(context.Background(), nil))
}
