package threecircles

import "errors"

// Sentinel errors for figure configuration.
var (
	// ErrInvalidDPI is returned when the resolution is not a positive finite number.
	ErrInvalidDPI = errors.New("threecircles: dpi must be positive")

	// ErrInvalidSize is returned when the figure size, margin or pad is unusable.
	ErrInvalidSize = errors.New("threecircles: invalid figure size")
)
