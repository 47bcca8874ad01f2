// Package scalarfield defines the Axis and Source variants plus the
// partial-update payloads consumed by Field.SetStep and Field.SetBounds.
package scalarfield

// axisForm tags which of the three equivalent axis descriptions an Axis
// carries. The zero value (no form) is invalid and rejected by New.
type axisForm int

const (
	formCoords axisForm = iota + 1
	formLinspace
	formStep
)

// Axis describes one grid axis. Build it with exactly one of Coords,
// Linspace or Step; the zero value is rejected at Field construction.
// An Axis is a pure description — coordinates are materialized by New,
// and once materialized all derived quantities (count, step, bounds)
// are read from the array, never from this description again.
type Axis struct {
	form     axisForm
	coords   []float64
	min, max float64
	count    int
	step     float64
}

// Coords describes an axis by its explicit ordered sample coordinates.
// At least two samples are required; spacing may be uneven. Monotonic
// ordering is assumed and not enforced.
func Coords(vals ...float64) Axis {
	return Axis{form: formCoords, coords: vals}
}

// Linspace describes an axis as count evenly spaced samples over
// [min, max], both endpoints included. Requires count ≥ 2 and min < max;
// the derived step is (max-min)/(count-1).
func Linspace(min, max float64, count int) Axis {
	return Axis{form: formLinspace, min: min, max: max, count: count}
}

// Step describes an axis as samples min + i·step for i = 0..n-1 with
//
//	n = floor((max-min)/step + ε) + 1,
//
// computed in closed form (no accumulation drift). The last sample never
// exceeds max, and max itself is included exactly when the span is a
// whole multiple of step (ε = 1e-9 absorbs representation error).
// Requires min < max and step > 0.
func Step(min, max, step float64) Axis {
	return Axis{form: formStep, min: min, max: max, step: step}
}

// Source supplies a Field's values: either an Analytic generating
// function, retained for resampling, or a Sampled raw buffer, frozen.
// The two cases are deliberately a closed sum — mutation legality is
// decided by the variant, not by a runtime flag.
type Source interface {
	isSource()
}

// Func is the signature of an analytic field generator: one scalar per
// 3D sample coordinate.
type Func func(x, y, z float64) float64

type analyticSource struct{ fn Func }

type sampledSource struct{ values []float64 }

func (analyticSource) isSource() {}
func (sampledSource) isSource()  {}

// Analytic wraps a generating function as a Field source. The function
// is called once per grid point at construction and again on every
// successful SetStep/SetBounds resample.
func Analytic(fn Func) Source {
	return analyticSource{fn: fn}
}

// Sampled wraps precomputed raw values as a Field source. The slice is
// copied at construction; its length must equal nx·ny·nz in the flat
// x-outer/y-middle/z-inner layout. Sampled fields cannot be resampled.
func Sampled(values []float64) Source {
	return sampledSource{values: values}
}

// StepUpdate is a partial per-axis step-size update for Field.SetStep.
// A nil entry leaves that axis untouched.
type StepUpdate struct {
	X, Y, Z *float64
}

// BoundsUpdate is a partial update of the six axis bounds for
// Field.SetBounds. A nil entry leaves that bound untouched.
type BoundsUpdate struct {
	XMin, XMax *float64
	YMin, YMax *float64
	ZMin, ZMax *float64
}

// Ptr is a convenience for building partial updates in-line:
//
//	f.SetStep(scalarfield.StepUpdate{Y: scalarfield.Ptr(0.25)})
func Ptr(v float64) *float64 { return &v }
