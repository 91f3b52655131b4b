package simone

import (
	"errors"
	"fmt"
)

// Configuration errors, reported before any iteration begins. A run
// either returns its full sequence or fails with one of these; partial
// results are never produced.
var (
	// ErrIterations indicates a negative iteration count.
	ErrIterations = errors.New("simone: iteration count must be >= 0")

	// ErrSamples indicates a curve sample count below two.
	ErrSamples = errors.New("simone: curve needs at least 2 sample points")

	// ErrRadius indicates a non-positive circle or ellipse radius.
	ErrRadius = errors.New("simone: radius must be positive")
)

// ConfigError wraps a configuration sentinel with the offending value.
type ConfigError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (%s=%g)", e.Wrapped, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
