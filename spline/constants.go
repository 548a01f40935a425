package spline

// Batch sampling defaults
const (
	defaultChunkSize = 1024 // Samples per worker task
	maxWorkers       = 256  // Upper bound on Config.Workers
)

// Derivative constants
const (
	halfDivisor = 2.0
)
