package scalarfield

import "errors"

var (
	// ErrAxisSpec indicates an Axis that selects none of the three forms
	// (the zero value was passed instead of a constructor result).
	ErrAxisSpec = errors.New("scalarfield: axis must be built with Coords, Linspace or Step")
	// ErrAxisTooShort indicates an explicit coordinate axis with fewer than two samples.
	ErrAxisTooShort = errors.New("scalarfield: explicit axis needs at least two samples")
	// ErrAxisRange indicates min ≥ max, count < 2, or step ≤ 0.
	ErrAxisRange = errors.New("scalarfield: axis bounds, count or step out of range")
	// ErrNoSource indicates New was called without a Source.
	ErrNoSource = errors.New("scalarfield: field source must be provided")
	// ErrValuesLength indicates raw values whose length differs from nx·ny·nz.
	ErrValuesLength = errors.New("scalarfield: values length must equal nx*ny*nz")
	// ErrImmutableField indicates a resampling mutation on a field built
	// from raw values; such fields have no generating function to re-invoke.
	ErrImmutableField = errors.New("scalarfield: field built from raw values cannot be resampled")
)
