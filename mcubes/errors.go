package mcubes

import "errors"

var (
	// ErrNilField indicates Triangulate was called with a nil field.
	ErrNilField = errors.New("mcubes: field must not be nil")
	// ErrWeldTolerance indicates Weld was called with tolerance ≤ 0.
	ErrWeldTolerance = errors.New("mcubes: weld tolerance must be positive")
)
