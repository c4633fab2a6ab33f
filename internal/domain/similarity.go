package domain

import "math"

// CosineSimilarity computes the cosine similarity between two vectors in
// [-1, 1]. Mismatched lengths or a zero-norm vector yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// NormalizeSimilarity maps a cosine similarity from [-1, 1] to [0, 1].
func NormalizeSimilarity(cosSim float64) float64 {
	return (cosSim + 1) / 2
}

// ClampScore constrains a score to [0, 1]. Final safety net on aggregation
// output; well-formed inputs never leave the range.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
