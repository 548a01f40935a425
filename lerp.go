package interpolate

import "math"

// Lerp linearly interpolates between a and b: a + (b - a) * t.
//
// Lerp(a, b, 0) == a, Lerp(a, b, 1) == b and Lerp(a, a, t) == a. Values of t
// outside [0, 1] extrapolate along the same line. Point types implementing
// [Lerper] (for example quaternions) supply their own blend.
func Lerp[V Linear[V, T], T Float](a, b V, t T) V {
	if l, ok := any(a).(Lerper[V, T]); ok {
		return l.Lerp(b, t)
	}
	return a.Add(b.Sub(a).Mul(t))
}

// Cosine interpolates between a and b with a cosine ease:
// Lerp(a, b, (1 - cos(πt)) / 2).
func Cosine[V Linear[V, T], T Float](a, b V, t T) V {
	cosT := T((1 - math.Cos(float64(t)*math.Pi)) / halfDivisor)
	return Lerp(a, b, cosT)
}

// blend is the two-point blend used by every level of the Hermite
// construction: (tb - t)/(tb - ta) * pa + (t - ta)/(tb - ta) * pb.
func blend[V Linear[V, T], T Float](t, ta, tb T, pa, pb V) V {
	span := tb - ta
	return pa.Mul((tb - t) / span).Add(pb.Mul((t - ta) / span))
}
