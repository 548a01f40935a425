package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/simd/f64"
)

func TestFor_MatchesDirectKernels(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{5, 4, 3, 2, 1}

	ops := For[float64]()
	assert.InDelta(t, f64.DotProductUnsafe(a, b), ops.DotProductUnsafe(a, b), 1e-12)
	assert.Same(t, Float64Ops(), ops)
}

func TestOps_Scale(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		dst := make([]float64, 3)
		For[float64]().Scale(dst, []float64{1, -2, 3}, 2)
		assert.InDeltaSlice(t, []float64{2, -4, 6}, dst, 1e-12)
	})

	t.Run("float32", func(t *testing.T) {
		dst := make([]float32, 3)
		For[float32]().Scale(dst, []float32{1, -2, 3}, 0.5)
		assert.InDeltaSlice(t, []float32{0.5, -1, 1.5}, dst, 1e-6)
	})
}

func TestOps_Interleave2(t *testing.T) {
	dst := make([]float32, 6)
	For[float32]().Interleave2(dst, []float32{1, 2, 3}, []float32{-1, -2, -3})
	assert.Equal(t, []float32{1, -1, 2, -2, 3, -3}, dst)
}

// BenchmarkIndirectF64DotProduct measures indirect call through Ops struct.
func BenchmarkIndirectF64DotProduct(b *testing.B) {
	ops := For[float64]()
	a := make([]float64, 64)
	c := make([]float64, 64)
	for i := range a {
		a[i] = float64(i) * 0.01
		c[i] = float64(i) * 0.02
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(a, c)
	}
}
