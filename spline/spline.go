// Package spline builds keyed curves on top of the interpolate formulas.
//
// A [Spline] holds keys sorted by their parameter. Each key carries the
// [Kind] of interpolation used for the segment that starts at it, so a single
// curve can mix stepped, linear, cosine, Catmull-Rom and Bezier segments.
package spline

import (
	"cmp"
	"math"
	"slices"

	interpolate "github.com/tphakala/go-interpolate"
)

// Kind selects how the segment starting at a key is interpolated.
type Kind int

const (
	// Step holds the key value until the normalized segment parameter
	// reaches Key.Threshold, then jumps to the next key value.
	Step Kind = iota

	// Linear blends linearly towards the next key.
	Linear

	// Cosine blends towards the next key with a cosine ease.
	Cosine

	// CatmullRom evaluates the non-uniform Catmull-Rom segment through the
	// key and the next one, using the keys on either side as neighbours.
	CatmullRom

	// Bezier uses Key.Handle as the outgoing control point. When the next
	// key is Bezier too, its handle is mirrored to form the incoming control
	// point (cubic); when it is StrokeBezier its Handle is used directly
	// (cubic); otherwise the segment is quadratic.
	Bezier

	// StrokeBezier carries separate handles: Key.Handle is used as the
	// outgoing control point towards a Bezier or StrokeBezier key and as the
	// incoming control point from a preceding Bezier segment, Key.HandleOut
	// is used for a quadratic segment towards any other key.
	StrokeBezier
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Step:
		return "step"
	case Linear:
		return "linear"
	case Cosine:
		return "cosine"
	case CatmullRom:
		return "catmull-rom"
	case Bezier:
		return "bezier"
	case StrokeBezier:
		return "stroke-bezier"
	default:
		return "unknown"
	}
}

// Key is a control point of a spline.
type Key[T interpolate.Float, V any] struct {
	T     T
	Value V
	Kind  Kind

	// Threshold is the normalized switch point of a Step segment.
	Threshold T

	// Handle and HandleOut are the Bezier control points, see Bezier and
	// StrokeBezier.
	Handle    V
	HandleOut V
}

// NewKey returns a key with the given parameter, value and kind.
func NewKey[T interpolate.Float, V any](t T, value V, kind Kind) Key[T, V] {
	return Key[T, V]{T: t, Value: value, Kind: kind}
}

// Spline is a curve through keys sorted by parameter.
//
// A Spline is not safe for concurrent mutation. Sampling methods only read the
// keys and may run concurrently with each other.
type Spline[T interpolate.Float, V interpolate.Linear[V, T]] struct {
	keys []Key[T, V]
}

// New creates a spline from keys. Keys are copied and sorted by parameter;
// keys with equal parameters keep their relative order.
func New[T interpolate.Float, V interpolate.Linear[V, T]](keys ...Key[T, V]) *Spline[T, V] {
	s := &Spline[T, V]{keys: slices.Clone(keys)}
	slices.SortStableFunc(s.keys, compareKeys[T, V])
	return s
}

func compareKeys[T interpolate.Float, V any](a, b Key[T, V]) int {
	return cmp.Compare(a.T, b.T)
}

// Len returns the number of keys.
func (s *Spline[T, V]) Len() int {
	return len(s.keys)
}

// Keys returns a copy of the keys in parameter order.
func (s *Spline[T, V]) Keys() []Key[T, V] {
	return slices.Clone(s.keys)
}

// Add inserts a key, keeping keys sorted. A key whose parameter equals an
// existing one is placed after it.
func (s *Spline[T, V]) Add(key Key[T, V]) {
	i := s.upperBound(key.T)
	s.keys = slices.Insert(s.keys, i, key)
}

// Remove deletes and returns the key at index i.
// The boolean result is false when i is out of range.
func (s *Spline[T, V]) Remove(i int) (Key[T, V], bool) {
	if i < 0 || i >= len(s.keys) {
		var zero Key[T, V]
		return zero, false
	}
	key := s.keys[i]
	s.keys = slices.Delete(s.keys, i, i+1)
	return key, true
}

// Range returns the parameters of the first and last keys.
// The boolean result is false for an empty spline.
func (s *Spline[T, V]) Range() (first, last T, ok bool) {
	if len(s.keys) == 0 {
		return 0, 0, false
	}
	return s.keys[0].T, s.keys[len(s.keys)-1].T, true
}

// Sample evaluates the spline at t.
//
// The boolean result is false when t lies outside [first, last] key
// parameters (or is NaN), when a Catmull-Rom segment lacks a neighbour key on
// either side, or when the segment's knots coincide. A parameter equal to the
// last key's evaluates the end of the final segment that has a non-zero span,
// so trailing keys sharing that parameter do not make the end unreachable.
func (s *Spline[T, V]) Sample(t T) (V, bool) {
	var zero V

	seg, ok := s.segment(t)
	if !ok {
		if len(s.keys) == 1 && s.keys[0].T == t {
			return s.keys[0].Value, true
		}
		return zero, false
	}

	cp0 := s.keys[seg]
	cp1 := s.keys[seg+1]
	span := cp1.T - cp0.T
	if span == 0 {
		return zero, false
	}
	nt := (t - cp0.T) / span

	switch cp0.Kind {
	case Step:
		if nt < cp0.Threshold {
			return cp0.Value, true
		}
		return cp1.Value, true

	case Linear:
		return interpolate.Lerp(cp0.Value, cp1.Value, nt), true

	case Cosine:
		return interpolate.Cosine(cp0.Value, cp1.Value, nt), true

	case CatmullRom:
		km, k0, k1, k2, ok := s.hermiteKeys(seg)
		if !ok {
			return zero, false
		}
		return interpolate.CubicHermite(t, km, k0, k1, k2)

	case Bezier:
		switch cp1.Kind {
		case Bezier:
			return interpolate.CubicBezierMirrored(nt, cp0.Value, cp0.Handle, cp1.Handle, cp1.Value), true
		case StrokeBezier:
			return interpolate.CubicBezier(nt, cp0.Value, cp0.Handle, cp1.Handle, cp1.Value), true
		default:
			return interpolate.QuadraticBezier(nt, cp0.Value, cp0.Handle, cp1.Value), true
		}

	case StrokeBezier:
		switch cp1.Kind {
		case Bezier, StrokeBezier:
			return interpolate.CubicBezier(nt, cp0.Value, cp0.Handle, cp1.Handle, cp1.Value), true
		default:
			return interpolate.QuadraticBezier(nt, cp0.Value, cp0.HandleOut, cp1.Value), true
		}
	}

	return zero, false
}

// ClampedSample evaluates the spline at t clamped to the key range.
// The boolean result is false for an empty spline and under the same
// segment conditions as Sample.
func (s *Spline[T, V]) ClampedSample(t T) (V, bool) {
	first, last, ok := s.Range()
	if !ok {
		var zero V
		return zero, false
	}
	return s.Sample(min(max(t, first), last))
}

// Derivative returns the rate of change of the spline with respect to t.
//
// Linear, Cosine, CatmullRom, Bezier and StrokeBezier segments are supported;
// Step segments have no derivative and report false, as does any parameter
// Sample would reject.
func (s *Spline[T, V]) Derivative(t T) (V, bool) {
	var zero V

	seg, ok := s.segment(t)
	if !ok {
		return zero, false
	}

	cp0 := s.keys[seg]
	cp1 := s.keys[seg+1]
	span := cp1.T - cp0.T
	if span == 0 {
		return zero, false
	}
	nt := (t - cp0.T) / span

	// Bezier and blend formulas are in the normalized parameter; divide by
	// span for d/dt.
	switch cp0.Kind {
	case Linear:
		return cp1.Value.Sub(cp0.Value).Div(span), true

	case Cosine:
		rate := T(math.Pi * math.Sin(math.Pi*float64(nt)) / halfDivisor)
		return cp1.Value.Sub(cp0.Value).Mul(rate).Div(span), true

	case CatmullRom:
		km, k0, k1, k2, ok := s.hermiteKeys(seg)
		if !ok {
			return zero, false
		}
		return interpolate.CubicHermiteDerivative(t, km, k0, k1, k2)

	case Bezier:
		switch cp1.Kind {
		case Bezier:
			return interpolate.CubicBezierMirroredDerivative(nt, cp0.Value, cp0.Handle, cp1.Handle, cp1.Value).Div(span), true
		case StrokeBezier:
			return interpolate.CubicBezierDerivative(nt, cp0.Value, cp0.Handle, cp1.Handle, cp1.Value).Div(span), true
		default:
			return interpolate.QuadraticBezierDerivative(nt, cp0.Value, cp0.Handle, cp1.Value).Div(span), true
		}

	case StrokeBezier:
		switch cp1.Kind {
		case Bezier, StrokeBezier:
			return interpolate.CubicBezierDerivative(nt, cp0.Value, cp0.Handle, cp1.Handle, cp1.Value).Div(span), true
		default:
			return interpolate.QuadraticBezierDerivative(nt, cp0.Value, cp0.HandleOut, cp1.Value).Div(span), true
		}
	}

	return zero, false
}

// segment returns the index i of the segment [keys[i].T, keys[i+1].T]
// containing t. The last key's parameter belongs to the final segment with
// a non-zero span. NaN is outside every segment.
func (s *Spline[T, V]) segment(t T) (int, bool) {
	n := len(s.keys)
	if n < 2 || !(t >= s.keys[0].T && t <= s.keys[n-1].T) {
		return 0, false
	}
	i := min(s.upperBound(t)-1, n-2)
	if t == s.keys[n-1].T {
		for i > 0 && s.keys[i].T == s.keys[i+1].T {
			i--
		}
	}
	return i, true
}

// upperBound returns the index of the first key with a parameter above t.
func (s *Spline[T, V]) upperBound(t T) int {
	i, _ := slices.BinarySearchFunc(s.keys, t, func(k Key[T, V], target T) int {
		if k.T <= target {
			return -1
		}
		return 1
	})
	return i
}

// hermiteKeys returns the four knots around segment seg.
func (s *Spline[T, V]) hermiteKeys(seg int) (km, k0, k1, k2 interpolate.Key[T, V], ok bool) {
	if seg == 0 || seg+2 >= len(s.keys) {
		return km, k0, k1, k2, false
	}
	at := func(i int) interpolate.Key[T, V] {
		return interpolate.K(s.keys[i].T, s.keys[i].Value)
	}
	return at(seg - 1), at(seg), at(seg + 1), at(seg + 2), true
}
