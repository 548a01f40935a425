package spline

import (
	"errors"
	"fmt"
)

// Common errors returned by spline operations.
var (
	// ErrInvalidConfig indicates invalid batch sampling configuration.
	ErrInvalidConfig = errors.New("invalid sampling configuration")

	// ErrNoKeys indicates an operation on a spline without keys.
	ErrNoKeys = errors.New("spline has no keys")

	// ErrOutOfRange indicates a sample that the spline cannot evaluate: the
	// parameter lies outside the key range, a Catmull-Rom segment lacks a
	// neighbour key, or two knots coincide.
	ErrOutOfRange = errors.New("sample out of range")
)

// Config controls batch sampling with [Spline.SampleMany].
type Config struct {
	// Parallel spreads the samples over worker goroutines.
	Parallel bool

	// Workers is the number of goroutines used when Parallel is set.
	// Zero selects runtime.GOMAXPROCS(0).
	Workers int

	// ChunkSize is the number of samples handed to a worker at a time.
	// Zero selects a default.
	ChunkSize int

	// Clamped clamps every parameter to the key range before sampling.
	Clamped bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	if c.Workers > maxWorkers {
		return fmt.Errorf("%w: too many workers (max %d)", ErrInvalidConfig, maxWorkers)
	}

	if c.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk size must not be negative", ErrInvalidConfig)
	}

	return nil
}
