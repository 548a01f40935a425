package interpolate

// Centripetal parameterization
const (
	centripetalAlpha = 0.5 // Exponent applied to inter-point distances
)

// Bezier derivative coefficients
const (
	quadraticDerivCoeff = 2.0 // d/dt of the quadratic Bernstein basis
	cubicDerivCoeff     = 3.0 // d/dt of the outer cubic Bernstein terms
	cubicDerivMidCoeff  = 6.0 // d/dt of the middle cubic Bernstein term
)

// Cosine blend
const (
	halfDivisor = 2.0
)
