package interpolate

// Float is the type constraint for interpolation parameters.
type Float interface {
	~float32 | ~float64
}

// Linear is the capability set a point type must provide to be interpolated.
//
// V is the point type itself and T the scalar type of the interpolation
// parameter. Implementations must not mutate the receiver.
type Linear[V any, T Float] interface {
	// Add returns the receiver plus v.
	Add(v V) V

	// Sub returns the receiver minus v.
	Sub(v V) V

	// Neg returns the additive inverse of the receiver.
	Neg() V

	// Mul scales the receiver by s.
	Mul(s T) V

	// Div divides the receiver by s.
	Div(s T) V
}

// Metric is a Linear point type with a distance function.
type Metric[V any, T Float] interface {
	Linear[V, T]

	// Distance returns the Euclidean distance between the receiver and v.
	Distance(v V) T
}

// Lerper is implemented by point types whose linear blend differs from
// a + (b-a)*t, such as rotations that must take the shortest arc.
// Lerp prefers this method when the point type provides it.
type Lerper[V any, T Float] interface {
	Lerp(b V, t T) V
}

// Key pairs a knot parameter with a control point.
type Key[T Float, V any] struct {
	T     T
	Value V
}

// K is shorthand for Key{T: t, Value: v}.
func K[T Float, V any](t T, v V) Key[T, V] {
	return Key[T, V]{T: t, Value: v}
}
