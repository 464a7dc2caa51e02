package simulation

import "errors"

var (
	// ErrInvalidDensity is returned for a density step that is not a positive finite number
	ErrInvalidDensity = errors.New("density must be a positive finite angle")
	// ErrInvalidRamp is returned for a ramp that cannot make progress
	ErrInvalidRamp = errors.New("ramp step and interval must be positive")
	// ErrInvalidViewport is returned for an empty or non-finite viewport
	ErrInvalidViewport = errors.New("viewport must have a positive finite size")
)
