package embedder

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Vectors are persisted as little-endian float32 blobs. Round-trip must be
// exact so similarity stays stable across store and retrieve.

func FloatsToBytes(v []float32) []byte {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.LittleEndian, v)
	return buf.Bytes()
}

func BytesToFloats(b []byte) []float32 {
	n := len(b) / 4
	out := make([]float32, n)
	_ = binary.Read(bytes.NewReader(b), binary.LittleEndian, &out)
	return out
}

// Dim reports the dimensionality of a stored vector blob.
func Dim(b []byte) int { return len(b) / 4 }

// Cosine computes cosine similarity in [-1, 1]. A zero vector or a length
// mismatch carries no directional information and scores 0 rather than NaN,
// so degenerate inputs rank last instead of breaking the sort.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
