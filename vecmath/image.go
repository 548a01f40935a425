package vecmath

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vec2 is a float32 2-D point backed by golang.org/x/image/math/f32.
type Vec2 f32.Vec2

// Add returns p + q.
func (p Vec2) Add(q Vec2) Vec2 { return Vec2{p[0] + q[0], p[1] + q[1]} }

// Sub returns p - q.
func (p Vec2) Sub(q Vec2) Vec2 { return Vec2{p[0] - q[0], p[1] - q[1]} }

// Neg returns -p.
func (p Vec2) Neg() Vec2 { return Vec2{-p[0], -p[1]} }

// Mul returns p scaled by s.
func (p Vec2) Mul(s float32) Vec2 { return Vec2{p[0] * s, p[1] * s} }

// Div returns p divided by s.
func (p Vec2) Div(s float32) Vec2 { return Vec2{p[0] / s, p[1] / s} }

// Vec returns p as an f32.Vec2.
func (p Vec2) Vec() f32.Vec2 { return f32.Vec2(p) }

// Components returns the coordinates widened to float64.
func (p Vec2) Components() []float64 { return []float64{float64(p[0]), float64(p[1])} }

// Distance returns the Euclidean distance between p and q, computed in
// float64 and rounded once.
func (p Vec2) Distance(q Vec2) float32 {
	return float32(math.Hypot(float64(p[0]-q[0]), float64(p[1]-q[1])))
}

// Vec3 is a float32 3-D point backed by golang.org/x/image/math/f32.
type Vec3 f32.Vec3

// Add returns p + q.
func (p Vec3) Add(q Vec3) Vec3 { return Vec3{p[0] + q[0], p[1] + q[1], p[2] + q[2]} }

// Sub returns p - q.
func (p Vec3) Sub(q Vec3) Vec3 { return Vec3{p[0] - q[0], p[1] - q[1], p[2] - q[2]} }

// Neg returns -p.
func (p Vec3) Neg() Vec3 { return Vec3{-p[0], -p[1], -p[2]} }

// Mul returns p scaled by s.
func (p Vec3) Mul(s float32) Vec3 { return Vec3{p[0] * s, p[1] * s, p[2] * s} }

// Div returns p divided by s.
func (p Vec3) Div(s float32) Vec3 { return Vec3{p[0] / s, p[1] / s, p[2] / s} }

// Vec returns p as an f32.Vec3.
func (p Vec3) Vec() f32.Vec3 { return f32.Vec3(p) }

// Components returns the coordinates widened to float64.
func (p Vec3) Components() []float64 {
	return []float64{float64(p[0]), float64(p[1]), float64(p[2])}
}

// Vec4 is a float32 4-D point backed by golang.org/x/image/math/f32.
type Vec4 f32.Vec4

// Add returns p + q.
func (p Vec4) Add(q Vec4) Vec4 {
	return Vec4{p[0] + q[0], p[1] + q[1], p[2] + q[2], p[3] + q[3]}
}

// Sub returns p - q.
func (p Vec4) Sub(q Vec4) Vec4 {
	return Vec4{p[0] - q[0], p[1] - q[1], p[2] - q[2], p[3] - q[3]}
}

// Neg returns -p.
func (p Vec4) Neg() Vec4 { return Vec4{-p[0], -p[1], -p[2], -p[3]} }

// Mul returns p scaled by s.
func (p Vec4) Mul(s float32) Vec4 { return Vec4{p[0] * s, p[1] * s, p[2] * s, p[3] * s} }

// Div returns p divided by s.
func (p Vec4) Div(s float32) Vec4 { return Vec4{p[0] / s, p[1] / s, p[2] / s, p[3] / s} }

// Vec returns p as an f32.Vec4.
func (p Vec4) Vec() f32.Vec4 { return f32.Vec4(p) }

// Components returns the coordinates widened to float64.
func (p Vec4) Components() []float64 {
	return []float64{float64(p[0]), float64(p[1]), float64(p[2]), float64(p[3])}
}
