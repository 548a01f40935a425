package vecmath

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// R2 is a 2-D point backed by gonum's r2.Vec.
type R2 r2.Vec

// NewR2 returns the point (x, y).
func NewR2(x, y float64) R2 { return R2{X: x, Y: y} }

// Vec returns p as an r2.Vec.
func (p R2) Vec() r2.Vec { return r2.Vec(p) }

// Add returns p + q.
func (p R2) Add(q R2) R2 { return R2(r2.Add(r2.Vec(p), r2.Vec(q))) }

// Sub returns p - q.
func (p R2) Sub(q R2) R2 { return R2(r2.Sub(r2.Vec(p), r2.Vec(q))) }

// Neg returns -p.
func (p R2) Neg() R2 { return R2(r2.Scale(negate, r2.Vec(p))) }

// Mul returns p scaled by s.
func (p R2) Mul(s float64) R2 { return R2(r2.Scale(s, r2.Vec(p))) }

// Div returns p divided by s.
func (p R2) Div(s float64) R2 { return R2{X: p.X / s, Y: p.Y / s} }

// Dot returns the dot product of p and q.
func (p R2) Dot(q R2) float64 { return r2.Dot(r2.Vec(p), r2.Vec(q)) }

// Components returns the coordinates as a slice.
func (p R2) Components() []float64 { return []float64{p.X, p.Y} }

// Distance returns the Euclidean distance between p and q.
func (p R2) Distance(q R2) float64 {
	return r2.Norm(r2.Sub(r2.Vec(p), r2.Vec(q)))
}

// R3 is a 3-D point backed by gonum's r3.Vec.
type R3 r3.Vec

// NewR3 returns the point (x, y, z).
func NewR3(x, y, z float64) R3 { return R3{X: x, Y: y, Z: z} }

// Vec returns p as an r3.Vec.
func (p R3) Vec() r3.Vec { return r3.Vec(p) }

// Add returns p + q.
func (p R3) Add(q R3) R3 { return R3(r3.Add(r3.Vec(p), r3.Vec(q))) }

// Sub returns p - q.
func (p R3) Sub(q R3) R3 { return R3(r3.Sub(r3.Vec(p), r3.Vec(q))) }

// Neg returns -p.
func (p R3) Neg() R3 { return R3(r3.Scale(negate, r3.Vec(p))) }

// Mul returns p scaled by s.
func (p R3) Mul(s float64) R3 { return R3(r3.Scale(s, r3.Vec(p))) }

// Div returns p divided by s.
func (p R3) Div(s float64) R3 { return R3{X: p.X / s, Y: p.Y / s, Z: p.Z / s} }

// Dot returns the dot product of p and q.
func (p R3) Dot(q R3) float64 { return r3.Dot(r3.Vec(p), r3.Vec(q)) }

// Distance returns the Euclidean distance between p and q.
func (p R3) Distance(q R3) float64 {
	return r3.Norm(r3.Sub(r3.Vec(p), r3.Vec(q)))
}

// Components returns the coordinates as a slice.
func (p R3) Components() []float64 { return []float64{p.X, p.Y, p.Z} }

// Quat is a quaternion backed by gonum's quat.Number.
//
// Quat implements its own Lerp so that interpolate.Lerp, and the curves
// built on it, blend rotations along the shortest arc.
type Quat quat.Number

// NewQuat returns the quaternion w + xi + yj + zk.
func NewQuat(w, x, y, z float64) Quat {
	return Quat{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// Number returns q as a quat.Number.
func (q Quat) Number() quat.Number { return quat.Number(q) }

// Add returns q + p.
func (q Quat) Add(p Quat) Quat { return Quat(quat.Add(quat.Number(q), quat.Number(p))) }

// Sub returns q - p.
func (q Quat) Sub(p Quat) Quat { return Quat(quat.Sub(quat.Number(q), quat.Number(p))) }

// Neg returns -q.
func (q Quat) Neg() Quat { return Quat(quat.Scale(negate, quat.Number(q))) }

// Mul returns q scaled by s.
func (q Quat) Mul(s float64) Quat { return Quat(quat.Scale(s, quat.Number(q))) }

// Div returns q divided by s.
func (q Quat) Div(s float64) Quat { return Quat(quat.Scale(1/s, quat.Number(q))) }

// Distance returns the norm of q - p.
func (q Quat) Distance(p Quat) float64 { return quat.Abs(quat.Sub(quat.Number(q), quat.Number(p))) }

// Dot returns the four-dimensional dot product of q and p.
func (q Quat) Dot(p Quat) float64 {
	return q.Real*p.Real + q.Imag*p.Imag + q.Jmag*p.Jmag + q.Kmag*p.Kmag
}

// Lerp blends q towards p by t along the shortest arc. When the dot product
// of q and p is negative, -p (the same rotation) is used as the target.
// The result is not normalized.
func (q Quat) Lerp(p Quat, t float64) Quat {
	if q.Dot(p) < 0 {
		p = p.Neg()
	}
	return q.Add(p.Sub(q).Mul(t))
}

// Components returns (w, x, y, z).
func (q Quat) Components() []float64 {
	return []float64{q.Real, q.Imag, q.Jmag, q.Kmag}
}
