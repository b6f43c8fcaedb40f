package embedder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorCodecRoundTrip(t *testing.T) {
	v := []float32{0.1, -2.5, 3.75, 0, float32(math.Pi)}

	b := FloatsToBytes(v)
	require.Len(t, b, len(v)*4)
	assert.Equal(t, len(v), Dim(b))
	assert.Equal(t, v, BytesToFloats(b))
}

func TestVectorCodecEmpty(t *testing.T) {
	assert.Empty(t, BytesToFloats(FloatsToBytes(nil)))
	assert.Equal(t, 0, Dim(nil))
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"both zero", []float32{0, 0}, []float32{0, 0}, 0},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0},
		{"both empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosineSymmetric(t *testing.T) {
	a := []float32{0.3, -1.2, 4.4}
	b := []float32{2.0, 0.5, -0.7}

	assert.InDelta(t, Cosine(a, b), Cosine(b, a), 1e-12)
}
