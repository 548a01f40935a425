package vecmath

import "math"

// F64 is a float64 point.
type F64 float64

// Add returns a + b.
func (a F64) Add(b F64) F64 { return a + b }

// Sub returns a - b.
func (a F64) Sub(b F64) F64 { return a - b }

// Neg returns -a.
func (a F64) Neg() F64 { return -a }

// Mul returns a scaled by s.
func (a F64) Mul(s float64) F64 { return a * F64(s) }

// Div returns a divided by s.
func (a F64) Div(s float64) F64 { return a / F64(s) }

// Distance returns |a - b|.
func (a F64) Distance(b F64) float64 { return math.Abs(float64(a - b)) }

// F32 is a float32 point.
type F32 float32

// Add returns a + b.
func (a F32) Add(b F32) F32 { return a + b }

// Sub returns a - b.
func (a F32) Sub(b F32) F32 { return a - b }

// Neg returns -a.
func (a F32) Neg() F32 { return -a }

// Mul returns a scaled by s.
func (a F32) Mul(s float32) F32 { return a * F32(s) }

// Div returns a divided by s.
func (a F32) Div(s float32) F32 { return a / F32(s) }

// Distance returns |a - b|.
func (a F32) Distance(b F32) float32 {
	return float32(math.Abs(float64(a - b)))
}
