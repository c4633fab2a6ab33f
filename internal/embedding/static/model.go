// Package static provides a deterministic in-memory embedding model. It
// implements the domain.EmbeddingModel interface without an inference
// service, producing repeatable vectors for testing and development.
package static

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"
	"math"
)

const modelName = "static"

// Model produces hash-seeded unit vectors. The same text or pixel content
// always maps to the same vector, so similarity ordering is stable across
// runs.
type Model struct {
	dimension int
}

// NewModel creates a static model with the given vector dimension.
func NewModel(dimension int) *Model {
	return &Model{dimension: dimension}
}

// EncodeText creates a deterministic vector embedding from text.
func (m *Model) EncodeText(_ context.Context, text string) ([]float32, error) {
	return m.vectorFromSeed([]byte(text)), nil
}

// EncodeImages creates deterministic vector embeddings, preserving input order.
func (m *Model) EncodeImages(_ context.Context, imgs []image.Image) ([][]float32, error) {
	vectors := make([][]float32, len(imgs))
	for i, img := range imgs {
		vectors[i] = m.vectorFromSeed(imageSeed(img))
	}
	return vectors, nil
}

// Name returns the model identifier.
func (m *Model) Name() string {
	return modelName
}

// Dimension returns the vector dimension.
func (m *Model) Dimension() int {
	return m.dimension
}

// vectorFromSeed expands a seed into a unit vector via counter-mode hashing.
func (m *Model) vectorFromSeed(seed []byte) []float32 {
	vector := make([]float32, m.dimension)

	var norm float64
	for i := range vector {
		block := sha256.Sum256(binary.BigEndian.AppendUint32(append([]byte{}, seed...), uint32(i)))
		// Map the first 8 hash bytes onto [-1, 1).
		raw := binary.BigEndian.Uint64(block[:8])
		value := float64(raw)/float64(math.MaxUint64)*2 - 1
		vector[i] = float32(value)
		norm += value * value
	}

	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vector {
			vector[i] *= scale
		}
	}

	return vector
}

// imageSeed derives a stable seed from image dimensions and corner pixels.
func imageSeed(img image.Image) []byte {
	bounds := img.Bounds()
	r1, g1, b1, _ := img.At(bounds.Min.X, bounds.Min.Y).RGBA()
	r2, g2, b2, _ := img.At(bounds.Max.X-1, bounds.Max.Y-1).RGBA()

	return fmt.Appendf(nil, "image:%dx%d:%d:%d:%d:%d:%d:%d",
		bounds.Dx(), bounds.Dy(), r1, g1, b1, r2, g2, b2)
}
