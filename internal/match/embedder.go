package match

import (
	"hash/fnv"

	"gonum.org/v1/gonum/floats"
)

// Embedder turns a text into a dense vector for semantic comparison.
// Implementations must be deterministic for identical input.
type Embedder interface {
	Embed(text string) []float64
}

// HashingEmbedder is the default Embedder: a signed feature-hashing projection
// of the text's token stream. It needs no model weights, is fully
// deterministic, and preserves enough lexical overlap signal to rank similar
// documents above dissimilar ones. Swap in a real sentence encoder behind the
// same interface when one is available.
type HashingEmbedder struct {
	dim int
}

// NewHashingEmbedder returns an embedder producing vectors of the given
// dimensionality. Non-positive dims fall back to 256.
func NewHashingEmbedder(dim int) *HashingEmbedder {
	if dim <= 0 {
		dim = 256
	}
	return &HashingEmbedder{dim: dim}
}

// Embed hashes each token (and bigram, to retain some word order) into a
// signed bucket and l2-normalizes the result. Empty or all-stop-word text
// yields the zero vector.
func (h *HashingEmbedder) Embed(text string) []float64 {
	vec := make([]float64, h.dim)
	for _, term := range ngrams(text) {
		hash := fnv.New32a()
		hash.Write([]byte(term))
		sum := hash.Sum32()

		bucket := int(sum % uint32(h.dim))
		sign := 1.0
		if sum&0x80000000 != 0 {
			sign = -1.0
		}
		vec[bucket] += sign
	}

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}
