package vecmath

import (
	"github.com/tphakala/go-interpolate/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// VecN is a dense float64 point of arbitrary dimension.
//
// Both operands of a binary method must have the same length; mismatched
// lengths panic, following gonum/floats.
type VecN []float64

// NewVecN returns a VecN holding a copy of components.
func NewVecN(components ...float64) VecN {
	v := make(VecN, len(components))
	copy(v, components)
	return v
}

// Add returns p + q.
func (p VecN) Add(q VecN) VecN {
	return floats.AddTo(make([]float64, len(p)), p, q)
}

// Sub returns p - q.
func (p VecN) Sub(q VecN) VecN {
	return floats.SubTo(make([]float64, len(p)), p, q)
}

// Neg returns -p.
func (p VecN) Neg() VecN {
	return p.Mul(negate)
}

// Mul returns p * s.
func (p VecN) Mul(s float64) VecN {
	dst := make(VecN, len(p))
	simdops.Float64Ops().Scale(dst, p, s)
	return dst
}

// Div returns p / s.
func (p VecN) Div(s float64) VecN {
	return p.Mul(1 / s)
}

// Dot returns the dot product of p and q.
func (p VecN) Dot(q VecN) float64 {
	if len(p) != len(q) {
		panic(panicDimMismatch)
	}
	return simdops.Float64Ops().DotProductUnsafe(p, q)
}

// Distance returns the Euclidean distance between p and q.
func (p VecN) Distance(q VecN) float64 {
	return floats.Distance(p, q, euclideanNorm)
}

// Components returns p as a plain slice.
func (p VecN) Components() []float64 { return p }
