// Package vecmath adapts vector and quaternion types from external math
// libraries to the point capability set used by package interpolate.
//
// Adapters are thin named types over the library types, so conversion in
// either direction is free:
//
//   - [F32], [F64]: plain scalars.
//   - [R2], [R3]: gonum spatial vectors (gonum.org/v1/gonum/spatial/r2, r3).
//   - [Quat]: gonum quaternions (gonum.org/v1/gonum/num/quat), blended along
//     the shortest arc.
//   - [Vec2], [Vec3], [Vec4]: float32 vectors from golang.org/x/image/math/f32.
//   - [VecN]: dense float64 vectors of any dimension, backed by gonum/floats
//     and the SIMD kernels of github.com/tphakala/simd.
//
// Every method returns a new value and leaves the receiver untouched.
package vecmath
