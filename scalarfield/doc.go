// Package scalarfield builds regularly sampled 3D scalar fields on
// structured rectilinear grids, the raw material for isosurface
// extraction (see the sibling mcubes package).
//
// What:
//
//   - Axis describes one grid axis in exactly one of three forms:
//     explicit coordinates, {min, max, count}, or {min, max, step}.
//   - Field owns three coordinate arrays (x, y, z) and a dense flat
//     values array of length nx·ny·nz, laid out x-outer / y-middle /
//     z-inner (flat index ((ix·ny)+iy)·nz + iz).
//   - A Field is backed either by an Analytic generating function,
//     which is retained and re-invoked on demand, or by Sampled raw
//     values, which are frozen.
//   - SetStep and SetBounds apply partial per-axis updates, regenerate
//     the affected coordinate arrays, and resample the whole field.
//
// Why:
//
//   - Volume visualization: sample an implicit function once, extract
//     many isosurfaces interactively.
//   - Simulation output: wrap precomputed voxel data in the same grid
//     abstraction the triangulator consumes.
//   - Resolution sweeps: tighten or loosen the step size and resample
//     without rebuilding the field from scratch.
//
// Complexity:
//
//   - New:       O(nx·ny·nz) time and memory (one function call per
//     grid point for Analytic sources, one copy for Sampled).
//   - SetStep:   O(nx·ny·nz) over the new dimensions; no-op when no
//     supplied step differs from the current one.
//   - SetBounds: O(nx·ny·nz) over the new dimensions; no-op when no
//     supplied bound differs from the current one.
//   - Accessors: O(1), except slice accessors which copy in O(n).
//
// Resampling is atomic: values are built into a fresh buffer and
// installed only on success, so a generating function that panics
// leaves the field in its prior, fully consistent state.
//
// Errors:
//
//   - ErrAxisSpec: the Axis zero value (no form chosen) was supplied.
//   - ErrAxisTooShort: an explicit axis has fewer than two samples.
//   - ErrAxisRange: min ≥ max, count < 2, or step ≤ 0.
//   - ErrNoSource: no generating function or values were supplied.
//   - ErrValuesLength: raw values length does not equal nx·ny·nz.
//   - ErrImmutableField: SetStep/SetBounds on a Sampled-backed field.
package scalarfield
