package clip_test

import (
	"context"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artcollab/muse/internal/embedding/clip"
)

func newTestClient(t *testing.T, baseURL string) *clip.Client {
	t.Helper()

	client, err := clip.NewClient(&clip.Config{
		BaseURL:   baseURL,
		Model:     "clip-ViT-B-32",
		Timeout:   5,
		Dimension: 2,
	})
	require.NoError(t, err)

	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := clip.NewClient(&clip.Config{})
	require.Error(t, err)
}

func TestEncodeText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/embeddings", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "clip-ViT-B-32", req["model"])
		require.Equal(t, []any{"whimsical children's book art"}, req["texts"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"embeddings": [][]float32{{0.25, -0.5}},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	vector, err := client.EncodeText(context.Background(), "whimsical children's book art")
	require.NoError(t, err)
	require.Equal(t, []float32{0.25, -0.5}, vector)
}

func TestEncodeText_RejectsEmptyText(t *testing.T) {
	client := newTestClient(t, "http://clip.test")

	_, err := client.EncodeText(context.Background(), "")
	require.Error(t, err)
}

func TestEncodeText_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.EncodeText(context.Background(), "anything")
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
}

func TestEncodeImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		images, ok := req["images"].([]any)
		require.True(t, ok)
		require.Len(t, images, 2)
		require.NotEmpty(t, images[0])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"embeddings": [][]float32{{1, 0}, {0, 1}},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	imgs := []image.Image{
		image.NewRGBA(image.Rect(0, 0, 8, 8)),
		image.NewRGBA(image.Rect(0, 0, 8, 8)),
	}

	vectors, err := client.EncodeImages(context.Background(), imgs)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{1, 0}, {0, 1}}, vectors)
}

func TestEncodeImages_Empty(t *testing.T) {
	client := newTestClient(t, "http://clip.test")

	vectors, err := client.EncodeImages(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, vectors)
}

func TestEncodeImages_CountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"embeddings": [][]float32{{1, 0}},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	imgs := []image.Image{
		image.NewRGBA(image.Rect(0, 0, 8, 8)),
		image.NewRGBA(image.Rect(0, 0, 8, 8)),
	}

	_, err := client.EncodeImages(context.Background(), imgs)
	require.Error(t, err)
}

func TestNameAndDimension(t *testing.T) {
	client := newTestClient(t, "http://clip.test")

	require.Equal(t, "clip-ViT-B-32", client.Name())
	require.Equal(t, 2, client.Dimension())
}
