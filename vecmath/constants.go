package vecmath

const (
	negate        = -1 // Scale factor for additive inverse
	euclideanNorm = 2  // L2 norm for floats.Distance

	panicDimMismatch = "vecmath: dimension mismatch"
)
