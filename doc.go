// Package interpolate provides generic interpolation formulas in pure Go.
//
// The formulas (linear blends, non-uniform Catmull-Rom / cubic Hermite
// segments and Bezier curves together with their derivatives) are written once
// against a small capability set and apply to any point type that provides it:
// plain floats, fixed-size vectors, dense N-dimensional vectors and
// quaternions. Ready-made point types backed by gonum and golang.org/x/image
// live in the vecmath subpackage.
//
// # Point Types
//
// A point type V with scalar parameter T satisfies [Linear] when it offers
// addition, subtraction, negation and scalar multiplication/division:
//
//	type Linear[V any, T Float] interface {
//	    Add(V) V
//	    Sub(V) V
//	    Neg() V
//	    Mul(T) V
//	    Div(T) V
//	}
//
// [Metric] extends this with a Distance method and is only required by
// [CubicHermiteCentripetal], which derives its knot spacing from the distances
// between consecutive control points.
//
// # Quick Start
//
//	a := vecmath.NewR2(0, 0)
//	b := vecmath.NewR2(10, 0)
//	mid := interpolate.Lerp(a, b, 0.5) // (5, 0)
//
//	p, ok := interpolate.CubicHermite(1.5,
//	    interpolate.K(0.0, p0), interpolate.K(1.0, p1),
//	    interpolate.K(2.0, p2), interpolate.K(3.0, p3))
//	if !ok {
//	    // two knot parameters coincide
//	}
//
// # Absent Results
//
// The cubic Hermite functions return a second boolean result. It is false when
// two knot parameters used as a denominator coincide; the check happens before
// any division so no NaN or Inf is produced for that case. Non-increasing knots
// and parameters outside the knot range are not detected: the formulas then
// extrapolate, or propagate non-finite values in degenerate cases.
//
// # Thread Safety
//
// Every function in this package is pure. Calls may run concurrently from any
// number of goroutines without synchronization.
package interpolate
