package interpolate

// QuadraticBezier evaluates the quadratic Bezier curve with start a, control u
// and end b at t using the de Casteljau construction.
func QuadraticBezier[V Linear[V, T], T Float](t T, a, u, b V) V {
	return Lerp(Lerp(a, u, t), Lerp(u, b, t), t)
}

// CubicBezier evaluates the cubic Bezier curve with start a, controls u and v
// and end b at t using the de Casteljau construction.
func CubicBezier[V Linear[V, T], T Float](t T, a, u, v, b V) V {
	ab := Lerp(a, u, t)
	uv := Lerp(u, v, t)
	vb := Lerp(v, b, t)
	return Lerp(Lerp(ab, uv, t), Lerp(uv, vb, t), t)
}

// CubicBezierMirrored evaluates a cubic Bezier whose second control point is
// v reflected about the end point (2b - v). Chained segments sharing mirrored
// handles stay C1 continuous at their joints.
func CubicBezierMirrored[V Linear[V, T], T Float](t T, a, u, v, b V) V {
	return CubicBezier(t, a, u, mirror[V, T](v, b), b)
}

// QuadraticBezierDerivative returns d/dt of the quadratic Bezier curve:
// 2(1-t)(u-a) + 2t(b-u).
func QuadraticBezierDerivative[V Linear[V, T], T Float](t T, a, u, b V) V {
	oneT := 1 - t
	return u.Sub(a).Mul(quadraticDerivCoeff * oneT).
		Add(b.Sub(u).Mul(quadraticDerivCoeff * t))
}

// CubicBezierDerivative returns d/dt of the cubic Bezier curve:
// 3(1-t)²(u-a) + 6(1-t)t(v-u) + 3t²(b-v).
//
//   - a: start point (P0)
//   - u: first control point (P1)
//   - v: second control point (P2)
//   - b: end point (P3)
func CubicBezierDerivative[V Linear[V, T], T Float](t T, a, u, v, b V) V {
	oneT := 1 - t
	oneT2 := oneT * oneT
	t2 := t * t

	return u.Sub(a).Mul(cubicDerivCoeff * oneT2).
		Add(v.Sub(u).Mul(cubicDerivMidCoeff * oneT * t)).
		Add(b.Sub(v).Mul(cubicDerivCoeff * t2))
}

// CubicBezierMirroredDerivative returns d/dt of [CubicBezierMirrored]. It is
// exactly CubicBezierDerivative with the control point 2b - v.
func CubicBezierMirroredDerivative[V Linear[V, T], T Float](t T, a, u, v, b V) V {
	return CubicBezierDerivative(t, a, u, mirror[V, T](v, b), b)
}

// mirror reflects v about b: b + b - v.
func mirror[V Linear[V, T], T Float](v, b V) V {
	return b.Add(b).Sub(v)
}
