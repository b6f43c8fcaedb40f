package ai

import (
	"hash/fnv"
	"math/rand"
	"strings"
	"unicode"
)

// FallbackEmbedding builds a deterministic bag-of-tokens vector: every token
// maps to a fixed pseudo-random direction seeded from its hash, and the text
// embeds as the sum of its token directions. Identical text always yields the
// identical vector, and texts sharing words stay measurably similar, which
// keeps retrieval usable when no embedding provider is configured.
func FallbackEmbedding(text string, dim int) []float32 {
	v := make([]float32, dim)
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return v
	}
	for _, tok := range tokens {
		h := fnv.New64a()
		_, _ = h.Write([]byte(tok))
		rng := rand.New(rand.NewSource(int64(h.Sum64())))
		for i := range v {
			v[i] += rng.Float32() - 0.5
		}
	}
	return v
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
