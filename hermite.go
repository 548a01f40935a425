package interpolate

import "math"

// CubicHermite evaluates the non-uniform Catmull-Rom segment between k1 and k2
// at parameter t.
//
// The curve is built from nested blends: three first-level blends over the
// spans [t0,t1], [t1,t2], [t2,t3], two second-level blends over [t0,t2] and
// [t1,t3], and a final blend over [t1,t2]. The result passes through k1.Value
// at t1 and k2.Value at t2.
//
// The boolean result is false when any of the five spans is empty, meaning two
// knot parameters coincide. Knots are expected to satisfy t0 < t1 < t2 < t3;
// other orderings are not rejected.
func CubicHermite[V Linear[V, T], T Float](t T, k0, k1, k2, k3 Key[T, V]) (V, bool) {
	if !knotsDistinct(k0.T, k1.T, k2.T, k3.T) {
		var zero V
		return zero, false
	}
	return cubicHermite(t, k0.T, k1.T, k2.T, k3.T, k0.Value, k1.Value, k2.Value, k3.Value), true
}

// CubicHermiteCentripetal evaluates a Catmull-Rom segment whose knots are
// derived from the control points instead of taken from the keys.
//
// Only k0.T is used. The remaining knots follow the centripetal rule
// t(i+1) = t(i) + |P(i+1) - P(i)|^0.5, so the knot parameters of k1, k2 and k3
// are ignored. Consecutive equal control points produce coincident knots and a
// false result.
func CubicHermiteCentripetal[V Metric[V, T], T Float](t T, k0, k1, k2, k3 Key[T, V]) (V, bool) {
	p0, p1, p2, p3 := k0.Value, k1.Value, k2.Value, k3.Value

	t0 := k0.T
	t1 := centripetalKnot(t0, p0, p1)
	t2 := centripetalKnot(t1, p1, p2)
	t3 := centripetalKnot(t2, p2, p3)

	return CubicHermite(t, K(t0, p0), K(t1, p1), K(t2, p2), K(t3, p3))
}

// CubicHermiteDerivative returns d/dt of [CubicHermite] at parameter t.
//
// Each blend level is differentiated with the product rule and the derivative
// terms are carried up through the same nested structure as the value. The
// knots are treated as constants. The boolean result is false under the same
// conditions as CubicHermite.
func CubicHermiteDerivative[V Linear[V, T], T Float](t T, k0, k1, k2, k3 Key[T, V]) (V, bool) {
	t0, t1, t2, t3 := k0.T, k1.T, k2.T, k3.T
	if !knotsDistinct(t0, t1, t2, t3) {
		var zero V
		return zero, false
	}
	p0, p1, p2, p3 := k0.Value, k1.Value, k2.Value, k3.Value

	a1 := blend(t, t0, t1, p0, p1)
	a2 := blend(t, t1, t2, p1, p2)
	a3 := blend(t, t2, t3, p2, p3)

	b1 := blend(t, t0, t2, a1, a2)
	b2 := blend(t, t1, t3, a2, a3)

	a1Der := p1.Sub(p0).Div(t1 - t0)
	a2Der := p2.Sub(p1).Div(t2 - t1)
	a3Der := p3.Sub(p2).Div(t3 - t2)

	b1Der := blendDerivative(t, t0, t2, a1, a2, a1Der, a2Der)
	b2Der := blendDerivative(t, t1, t3, a2, a3, a2Der, a3Der)

	return blendDerivative(t, t1, t2, b1, b2, b1Der, b2Der), true
}

func cubicHermite[V Linear[V, T], T Float](t, t0, t1, t2, t3 T, p0, p1, p2, p3 V) V {
	a1 := blend(t, t0, t1, p0, p1)
	a2 := blend(t, t1, t2, p1, p2)
	a3 := blend(t, t2, t3, p2, p3)

	b1 := blend(t, t0, t2, a1, a2)
	b2 := blend(t, t1, t3, a2, a3)

	return blend(t, t1, t2, b1, b2)
}

// blendDerivative differentiates blend(t, ta, tb, pa, pb) where pa and pb
// themselves depend on t with derivatives da and db:
// (pb - pa)/(tb - ta) + (tb - t)/(tb - ta)*da + (t - ta)/(tb - ta)*db.
func blendDerivative[V Linear[V, T], T Float](t, ta, tb T, pa, pb, da, db V) V {
	return pb.Sub(pa).Div(tb - ta).Add(blend(t, ta, tb, da, db))
}

// knotsDistinct reports whether every span divided by in the Hermite
// construction is non-empty.
func knotsDistinct[T Float](t0, t1, t2, t3 T) bool {
	return t0 != t1 && t1 != t2 && t2 != t3 && t0 != t2 && t1 != t3
}

func centripetalKnot[V Metric[V, T], T Float](prev T, a, b V) T {
	return prev + T(math.Pow(float64(a.Distance(b)), centripetalAlpha))
}
