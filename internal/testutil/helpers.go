// Package testutil provides reusable test helper functions for interpolation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance    = 1e-10
	Float32Tolerance    = 1e-5
	DerivativeTolerance = 1e-4
	DerivativeStep      = 1e-6
)

// halfDivisor is used for the symmetric difference quotient.
const halfDivisor = 2

// AssertComponentsInDelta verifies that two component slices have equal
// length and match element-wise within tolerance.
func AssertComponentsInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"component %d: expected %g, got %g", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertOnSegment verifies that p lies on the segment between a and b:
// p = a + s*(b-a) for a single s in [0, 1], within tolerance.
func AssertOnSegment(t *testing.T, a, b, p []float64, tolerance float64) bool {
	t.Helper()
	s := math.NaN()
	for i := range a {
		d := b[i] - a[i]
		if math.Abs(d) > tolerance {
			s = (p[i] - a[i]) / d
			break
		}
	}
	if math.IsNaN(s) {
		// a == b, so p must equal a.
		return AssertComponentsInDelta(t, a, p, tolerance)
	}
	if !AssertInRange(t, s, -tolerance, 1+tolerance) {
		return false
	}
	for i := range a {
		want := a[i] + s*(b[i]-a[i])
		if !assert.InDelta(t, want, p[i], tolerance,
			"component %d off the segment: want %g, got %g", i, want, p[i]) {
			return false
		}
	}
	return true
}

// CentralDifference approximates the derivative of f at x by the symmetric
// difference quotient (f(x+h) - f(x-h)) / 2h, component-wise.
func CentralDifference(f func(x float64) []float64, x, h float64) []float64 {
	hi := f(x + h)
	lo := f(x - h)
	out := make([]float64, len(hi))
	for i := range hi {
		out[i] = (hi[i] - lo[i]) / (halfDivisor * h)
	}
	return out
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}
