package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-interpolate/internal/testutil"
	"github.com/tphakala/go-interpolate/vecmath"
)

type hermiteCase struct {
	name string
	keys [4]Key[float64, vecmath.R2]
}

func hermiteCases() []hermiteCase {
	p0 := vecmath.NewR2(0, 0)
	p1 := vecmath.NewR2(1, 2)
	p2 := vecmath.NewR2(3, 3)
	p3 := vecmath.NewR2(4, 0)

	return []hermiteCase{
		{"uniform", [4]Key[float64, vecmath.R2]{K(0.0, p0), K(1.0, p1), K(2.0, p2), K(3.0, p3)}},
		{"non-uniform", [4]Key[float64, vecmath.R2]{K(0.0, p0), K(0.5, p1), K(2.0, p2), K(2.2, p3)}},
		{"offset", [4]Key[float64, vecmath.R2]{K(-7.0, p0), K(-4.0, p1), K(-3.5, p2), K(10.0, p3)}},
	}
}

func TestCubicHermite_InteriorKnots(t *testing.T) {
	for _, tc := range hermiteCases() {
		t.Run(tc.name, func(t *testing.T) {
			k := tc.keys

			at1, ok := CubicHermite(k[1].T, k[0], k[1], k[2], k[3])
			require.True(t, ok)
			testutil.AssertComponentsInDelta(t, k[1].Value.Components(), at1.Components(), testutil.DefaultTolerance)

			at2, ok := CubicHermite(k[2].T, k[0], k[1], k[2], k[3])
			require.True(t, ok)
			testutil.AssertComponentsInDelta(t, k[2].Value.Components(), at2.Components(), testutil.DefaultTolerance)
		})
	}
}

func TestCubicHermite_ReproducesLine(t *testing.T) {
	// Evenly spaced collinear points with uniform knots lie on the curve's line.
	keys := make([]Key[float64, vecmath.R2], 4)
	for i := range keys {
		keys[i] = K(float64(i), vecmath.NewR2(float64(i), 2*float64(i)))
	}

	for s := 1.0; s <= 2.0; s += 0.1 {
		got, ok := CubicHermite(s, keys[0], keys[1], keys[2], keys[3])
		require.True(t, ok)
		testutil.AssertComponentsInDelta(t, []float64{s, 2 * s}, got.Components(), 1e-9)
	}
}

func TestCubicHermite_Deterministic(t *testing.T) {
	k := hermiteCases()[1].keys
	first, ok := CubicHermite(1.3, k[0], k[1], k[2], k[3])
	require.True(t, ok)

	for range 10 {
		again, _ := CubicHermite(1.3, k[0], k[1], k[2], k[3])
		assert.Equal(t, first, again)
	}
}

func TestCubicHermite_CoincidentKnots(t *testing.T) {
	p := vecmath.F64(1)

	tests := []struct {
		name           string
		t0, t1, t2, t3 float64
	}{
		{"t0 == t1", 0, 0, 1, 2},
		{"t1 == t2", 0, 1, 1, 2},
		{"t2 == t3", 0, 1, 2, 2},
		{"t0 == t2", 1, 0, 1, 3},
		{"t1 == t3", 0, 1, 2, 1},
		{"all equal", 5, 5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := CubicHermite(0.5, K(tt.t0, p), K(tt.t1, p), K(tt.t2, p), K(tt.t3, p))
			assert.False(t, ok)

			_, ok = CubicHermiteDerivative(0.5, K(tt.t0, p), K(tt.t1, p), K(tt.t2, p), K(tt.t3, p))
			assert.False(t, ok)
		})
	}
}

func TestCubicHermite_UnorderedKnotsNotRejected(t *testing.T) {
	p0, p1, p2, p3 := vecmath.F64(0), vecmath.F64(1), vecmath.F64(2), vecmath.F64(3)

	v, ok := CubicHermite(1.5, K(3.0, p0), K(2.0, p1), K(1.0, p2), K(0.0, p3))
	assert.True(t, ok)
	assert.False(t, math.IsNaN(float64(v)))
}

func TestCubicHermite_Float32(t *testing.T) {
	k0 := K(float32(0), vecmath.Vec2{0, 0})
	k1 := K(float32(1), vecmath.Vec2{1, 1})
	k2 := K(float32(2), vecmath.Vec2{2, 0})
	k3 := K(float32(3), vecmath.Vec2{3, 1})

	got, ok := CubicHermite(float32(2), k0, k1, k2, k3)
	require.True(t, ok)
	testutil.AssertComponentsInDelta(t, k2.Value.Components(), got.Components(), testutil.Float32Tolerance)
}

func TestCubicHermiteCentripetal_DerivesKnots(t *testing.T) {
	p0 := vecmath.NewR2(0, 0)
	p1 := vecmath.NewR2(4, 0)  // |p1-p0| = 4  -> +2
	p2 := vecmath.NewR2(4, 9)  // |p2-p1| = 9  -> +3
	p3 := vecmath.NewR2(4, 25) // |p3-p2| = 16 -> +4

	// Knot parameters of k1..k3 are ignored.
	k0, k1, k2, k3 := K(0.0, p0), K(100.0, p1), K(-3.0, p2), K(0.0, p3)

	for _, s := range []float64{2, 2.5, 3.7, 5} {
		got, ok := CubicHermiteCentripetal(s, k0, k1, k2, k3)
		require.True(t, ok)

		want, ok := CubicHermite(s, K(0.0, p0), K(2.0, p1), K(5.0, p2), K(9.0, p3))
		require.True(t, ok)
		testutil.AssertComponentsInDelta(t, want.Components(), got.Components(), testutil.DefaultTolerance, "t=%v", s)
	}

	at1, _ := CubicHermiteCentripetal(2.0, k0, k1, k2, k3)
	testutil.AssertComponentsInDelta(t, p1.Components(), at1.Components(), testutil.DefaultTolerance)
	at2, _ := CubicHermiteCentripetal(5.0, k0, k1, k2, k3)
	testutil.AssertComponentsInDelta(t, p2.Components(), at2.Components(), testutil.DefaultTolerance)
}

func TestCubicHermiteCentripetal_StartKnotShift(t *testing.T) {
	p0, p1, p2, p3 := vecmath.NewR2(0, 0), vecmath.NewR2(1, 0), vecmath.NewR2(2, 1), vecmath.NewR2(2, 3)

	base, ok := CubicHermiteCentripetal(1.4, K(0.0, p0), K(0.0, p1), K(0.0, p2), K(0.0, p3))
	require.True(t, ok)
	shifted, ok := CubicHermiteCentripetal(11.4, K(10.0, p0), K(0.0, p1), K(0.0, p2), K(0.0, p3))
	require.True(t, ok)

	testutil.AssertComponentsInDelta(t, base.Components(), shifted.Components(), 1e-9)
}

func TestCubicHermiteCentripetal_RepeatedPoint(t *testing.T) {
	p := vecmath.NewR2(1, 1)
	q := vecmath.NewR2(2, 5)

	_, ok := CubicHermiteCentripetal(0.5, K(0.0, p), K(1.0, p), K(2.0, q), K(3.0, q))
	assert.False(t, ok, "repeated control points give coincident knots")
}

func TestCubicHermiteDerivative_MatchesFiniteDifference(t *testing.T) {
	for _, tc := range hermiteCases() {
		t.Run(tc.name, func(t *testing.T) {
			k := tc.keys
			value := func(x float64) []float64 {
				v, ok := CubicHermite(x, k[0], k[1], k[2], k[3])
				require.True(t, ok)
				return v.Components()
			}

			span := k[2].T - k[1].T
			for i := 1; i < 10; i++ {
				x := k[1].T + span*float64(i)/10

				got, ok := CubicHermiteDerivative(x, k[0], k[1], k[2], k[3])
				require.True(t, ok)

				want := testutil.CentralDifference(value, x, testutil.DerivativeStep)
				testutil.AssertNoNaNOrInf(t, got.Components())
				testutil.AssertComponentsInDelta(t, want, got.Components(), testutil.DerivativeTolerance, "t=%v", x)
			}
		})
	}
}

func TestCubicHermiteDerivative_Line(t *testing.T) {
	// Uniform collinear points move with constant velocity.
	k0 := K(0.0, vecmath.F64(0))
	k1 := K(1.0, vecmath.F64(3))
	k2 := K(2.0, vecmath.F64(6))
	k3 := K(3.0, vecmath.F64(9))

	for _, s := range []float64{1, 1.25, 1.5, 2} {
		d, ok := CubicHermiteDerivative(s, k0, k1, k2, k3)
		require.True(t, ok)
		assert.InDelta(t, 3.0, float64(d), 1e-9, "t=%v", s)
	}
}

func BenchmarkCubicHermite_R2(b *testing.B) {
	k := hermiteCases()[1].keys
	for b.Loop() {
		_, _ = CubicHermite(1.1, k[0], k[1], k[2], k[3])
	}
}

func BenchmarkCubicHermiteDerivative_R2(b *testing.B) {
	k := hermiteCases()[1].keys
	for b.Loop() {
		_, _ = CubicHermiteDerivative(1.1, k[0], k[1], k[2], k[3])
	}
}
