// Package clip provides an EmbeddingModel backed by a CLIP inference
// service. CLIP projects text and images into one vector space, which is
// what makes text-query-to-portfolio matching possible.
package clip

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"time"
)

const (
	embeddingsPath = "/v1/embeddings"
	jpegQuality    = 90
)

// Client wraps the HTTP client for CLIP inference calls.
type Client struct {
	baseURL    string
	model      string
	dimension  int
	httpClient *http.Client
}

// NewClient creates a new CLIP inference client.
func NewClient(config *Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, errors.New("CLIP base URL is required")
	}

	return &Client{
		baseURL:   config.BaseURL,
		model:     config.Model,
		dimension: config.Dimension,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}, nil
}

// Inference service request/response structures.
type embeddingsRequest struct {
	Model  string   `json:"model"`
	Texts  []string `json:"texts,omitempty"`
	Images []string `json:"images,omitempty"` // base64-encoded JPEG
}

type embeddingsResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// EncodeText creates a vector embedding from text.
func (c *Client) EncodeText(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, errors.New("text cannot be empty")
	}

	embeddings, err := c.embed(ctx, embeddingsRequest{
		Model: c.model,
		Texts: []string{text},
	})
	if err != nil {
		return nil, err
	}

	if len(embeddings) != 1 {
		return nil, fmt.Errorf("expected 1 embedding, got %d", len(embeddings))
	}

	return embeddings[0], nil
}

// EncodeImages creates vector embeddings for images, preserving input order.
func (c *Client) EncodeImages(ctx context.Context, imgs []image.Image) ([][]float32, error) {
	if len(imgs) == 0 {
		return nil, nil
	}

	encoded := make([]string, len(imgs))
	for i, img := range imgs {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("failed to serialize image %d: %w", i, err)
		}
		encoded[i] = base64.StdEncoding.EncodeToString(buf.Bytes())
	}

	embeddings, err := c.embed(ctx, embeddingsRequest{
		Model:  c.model,
		Images: encoded,
	})
	if err != nil {
		return nil, err
	}

	if len(embeddings) != len(imgs) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(imgs), len(embeddings))
	}

	return embeddings, nil
}

func (c *Client) embed(ctx context.Context, reqBody embeddingsRequest) ([][]float32, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+embeddingsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference service returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed embeddingsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return parsed.Embeddings, nil
}

// Name returns the model identifier recorded in the cache ledger.
func (c *Client) Name() string {
	return c.model
}

// Dimension returns the vector dimension.
func (c *Client) Dimension() int {
	return c.dimension
}
