package scalarfield

// SetStep applies a partial step-size update: each non-nil entry whose
// value differs from the axis's current derived step regenerates that
// axis from its current bounds and the new step (the sample count
// changes as a consequence). Axes not mentioned, and axes whose
// supplied step equals the current one exactly, are left untouched.
// When at least one axis changed, the whole values array is resampled
// from the generating function — there is no incremental recomputation.
// When nothing changed, SetStep returns without resampling.
//
// Returns ErrImmutableField for a Sampled-backed field (the field is
// left unchanged) and ErrAxisRange for a non-positive step. The update
// is atomic: arrays and values are replaced only after the full
// resample succeeds, so a panicking generator leaves prior state intact.
// Complexity: O(nx·ny·nz) over the new dimensions on change, O(1) otherwise.
func (f *Field) SetStep(u StepUpdate) error {
	if f.fn == nil {
		return ErrImmutableField
	}

	sx, sy, sz := f.Steps()
	xs, changedX, err := regenStep(f.xs, u.X, sx)
	if err != nil {
		return err
	}
	ys, changedY, err := regenStep(f.ys, u.Y, sy)
	if err != nil {
		return err
	}
	zs, changedZ, err := regenStep(f.zs, u.Z, sz)
	if err != nil {
		return err
	}
	if !changedX && !changedY && !changedZ {
		return nil
	}

	f.install(xs, ys, zs)

	return nil
}

// SetBounds applies a partial update to the six axis bounds: each axis
// with at least one non-nil, actually-different bound is regenerated
// from its new bounds and its existing derived step. As with SetStep,
// any change triggers one full resample and no change at all is a
// no-op; the swap is atomic.
//
// Returns ErrImmutableField for a Sampled-backed field and ErrAxisRange
// when an update would leave min ≥ max.
// Complexity: O(nx·ny·nz) over the new dimensions on change, O(1) otherwise.
func (f *Field) SetBounds(u BoundsUpdate) error {
	if f.fn == nil {
		return ErrImmutableField
	}

	sx, sy, sz := f.Steps()
	xs, changedX, err := regenBounds(f.xs, u.XMin, u.XMax, sx)
	if err != nil {
		return err
	}
	ys, changedY, err := regenBounds(f.ys, u.YMin, u.YMax, sy)
	if err != nil {
		return err
	}
	zs, changedZ, err := regenBounds(f.zs, u.ZMin, u.ZMax, sz)
	if err != nil {
		return err
	}
	if !changedX && !changedY && !changedZ {
		return nil
	}

	f.install(xs, ys, zs)

	return nil
}

// regenStep returns the axis array to use after a step update: the
// current array (changed=false) when step is nil or equal to cur, or a
// freshly generated array over the current bounds otherwise.
func regenStep(axis []float64, step *float64, cur float64) ([]float64, bool, error) {
	if step == nil || *step == cur {
		return axis, false, nil
	}
	out, err := stepArray(axis[0], axis[len(axis)-1], *step)
	if err != nil {
		return nil, false, err
	}

	return out, true, nil
}

// regenBounds returns the axis array to use after a bounds update: the
// current array when neither bound actually differs, or a freshly
// generated array from the new bounds and the existing step otherwise.
func regenBounds(axis []float64, min, max *float64, step float64) ([]float64, bool, error) {
	lo, hi := axis[0], axis[len(axis)-1]
	changed := false
	if min != nil && *min != lo {
		lo, changed = *min, true
	}
	if max != nil && *max != hi {
		hi, changed = *max, true
	}
	if !changed {
		return axis, false, nil
	}
	out, err := stepArray(lo, hi, step)
	if err != nil {
		return nil, false, err
	}

	return out, true, nil
}

// install resamples the generating function over the candidate axes and
// swaps everything in at once. Called only after validation; a panic
// escaping the generator aborts before any assignment, keeping the
// field consistent.
func (f *Field) install(xs, ys, zs []float64) {
	values := sample(f.fn, xs, ys, zs)

	f.xs, f.ys, f.zs = xs, ys, zs
	f.nx, f.ny, f.nz = len(xs), len(ys), len(zs)
	f.values = values
}
