// Package scalarfield provides construction and resampling of dense 3D
// scalar fields on structured rectilinear grids.
//
// A Field is created once from three Axis descriptions and a Source,
// and thereafter mutated only through SetStep / SetBounds (see
// mutate.go). Values always live in one flat array addressed
// x-outer / y-middle / z-inner.
package scalarfield

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// stepEpsilon absorbs floating representation error in the closed-form
// sample count of the {min,max,step} axis form, so exact multiples of
// step include max instead of losing the last sample to rounding.
const stepEpsilon = 1e-9

// Field is a dense scalar field sampled on a rectilinear grid.
// Coordinate arrays and values are owned by the Field; accessor methods
// return copies to preserve that ownership. The zero value is unusable;
// build with New.
type Field struct {
	xs, ys, zs []float64
	nx, ny, nz int
	values     []float64
	fn         Func // nil for Sampled-backed fields
}

// New constructs a Field from one Axis description per grid axis and a
// Source. For an Analytic source the generating function is invoked
// once per grid point, immediately, in the fixed x-outer / y-middle /
// z-inner order. For a Sampled source the values are copied verbatim
// and must have length nx·ny·nz.
//
// Returns ErrAxisSpec, ErrAxisTooShort or ErrAxisRange for a bad axis
// (wrapped with the axis name), ErrNoSource for a nil source, and
// ErrValuesLength for a mismatched raw buffer.
// Complexity: O(nx·ny·nz) time and memory.
func New(x, y, z Axis, src Source) (*Field, error) {
	xs, err := x.materialize()
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	ys, err := y.materialize()
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	zs, err := z.materialize()
	if err != nil {
		return nil, fmt.Errorf("z axis: %w", err)
	}

	f := &Field{
		xs: xs, ys: ys, zs: zs,
		nx: len(xs), ny: len(ys), nz: len(zs),
	}

	switch s := src.(type) {
	case analyticSource:
		f.fn = s.fn
		f.values = sample(s.fn, xs, ys, zs)
	case sampledSource:
		if len(s.values) != f.nx*f.ny*f.nz {
			return nil, ErrValuesLength
		}
		f.values = make([]float64, len(s.values))
		copy(f.values, s.values)
	default:
		return nil, ErrNoSource
	}

	return f, nil
}

// materialize validates the Axis and produces its coordinate array.
// Complexity: O(n) for the produced array.
func (a Axis) materialize() ([]float64, error) {
	switch a.form {
	case formCoords:
		if len(a.coords) < 2 {
			return nil, ErrAxisTooShort
		}
		out := make([]float64, len(a.coords))
		copy(out, a.coords)

		return out, nil
	case formLinspace:
		if a.count < 2 || a.min >= a.max {
			return nil, ErrAxisRange
		}

		return floats.Span(make([]float64, a.count), a.min, a.max), nil
	case formStep:
		return stepArray(a.min, a.max, a.step)
	default:
		return nil, ErrAxisSpec
	}
}

// stepArray generates min + i·step for i = 0..n-1 with
// n = floor((max-min)/step + stepEpsilon) + 1. Closed form: every
// sample is computed from min and i directly, so repeated-addition
// drift cannot change the sample count or the final value.
func stepArray(min, max, step float64) ([]float64, error) {
	if step <= 0 || min >= max {
		return nil, ErrAxisRange
	}
	n := int(math.Floor((max-min)/step+stepEpsilon)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = min + float64(i)*step
	}

	return out, nil
}

// sample evaluates fn at every grid point in the fixed nested order
// (x outer, y middle, z inner) into a fresh flat buffer.
// Complexity: O(len(xs)·len(ys)·len(zs)).
func sample(fn Func, xs, ys, zs []float64) []float64 {
	vals := make([]float64, len(xs)*len(ys)*len(zs))
	i := 0
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				vals[i] = fn(x, y, z)
				i++
			}
		}
	}

	return vals
}

// Nx returns the number of samples along x. Complexity: O(1).
func (f *Field) Nx() int { return f.nx }

// Ny returns the number of samples along y. Complexity: O(1).
func (f *Field) Ny() int { return f.ny }

// Nz returns the number of samples along z. Complexity: O(1).
func (f *Field) Nz() int { return f.nz }

// Len returns the total number of grid points nx·ny·nz. Complexity: O(1).
func (f *Field) Len() int { return f.nx * f.ny * f.nz }

// IsAnalytic reports whether the field retains a generating function
// and therefore supports SetStep / SetBounds.
func (f *Field) IsAnalytic() bool { return f.fn != nil }

// X returns the i-th x coordinate. Panics if i is out of range, like a
// slice access.
func (f *Field) X(i int) float64 { return f.xs[i] }

// Y returns the j-th y coordinate. Panics if j is out of range.
func (f *Field) Y(j int) float64 { return f.ys[j] }

// Z returns the k-th z coordinate. Panics if k is out of range.
func (f *Field) Z(k int) float64 { return f.zs[k] }

// Xs returns a copy of the x coordinate array. Complexity: O(nx).
func (f *Field) Xs() []float64 { return clone(f.xs) }

// Ys returns a copy of the y coordinate array. Complexity: O(ny).
func (f *Field) Ys() []float64 { return clone(f.ys) }

// Zs returns a copy of the z coordinate array. Complexity: O(nz).
func (f *Field) Zs() []float64 { return clone(f.zs) }

// Values returns a copy of the flat values array in the
// x-outer / y-middle / z-inner layout. Complexity: O(nx·ny·nz).
func (f *Field) Values() []float64 { return clone(f.values) }

// FlatIndex maps grid indices (i, j, k) to the flat values index
// ((i·ny)+j)·nz + k. Complexity: O(1).
func (f *Field) FlatIndex(i, j, k int) int {
	return (i*f.ny+j)*f.nz + k
}

// Coordinate is the inverse of FlatIndex: it maps a flat values index
// back to grid indices (i, j, k). Complexity: O(1).
func (f *Field) Coordinate(flat int) (i, j, k int) {
	k = flat % f.nz
	flat /= f.nz
	j = flat % f.ny
	i = flat / f.ny

	return i, j, k
}

// At returns the sampled value at grid indices (i, j, k). Panics if any
// index is out of range, like a slice access.
func (f *Field) At(i, j, k int) float64 {
	return f.values[f.FlatIndex(i, j, k)]
}

// Steps returns the spacing between the first two samples of each axis.
// For evenly spaced axes this is the axis step; for explicit uneven
// coordinates it is merely the first gap.
func (f *Field) Steps() (sx, sy, sz float64) {
	return f.xs[1] - f.xs[0], f.ys[1] - f.ys[0], f.zs[1] - f.zs[0]
}

// Bounds returns the first and last sample of each axis. For a
// step-form axis the upper bound is the last generated sample, which
// may fall short of the max originally requested.
func (f *Field) Bounds() (xmin, xmax, ymin, ymax, zmin, zmax float64) {
	return f.xs[0], f.xs[f.nx-1], f.ys[0], f.ys[f.ny-1], f.zs[0], f.zs[f.nz-1]
}

// MinMax returns the smallest and largest sampled value. Useful for
// picking isovalues that actually intersect the field.
// Complexity: O(nx·ny·nz).
func (f *Field) MinMax() (min, max float64) {
	min, max = f.values[0], f.values[0]
	for _, v := range f.values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max
}

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
