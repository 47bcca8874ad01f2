// Package isomesh turns 3D scalar fields into triangle meshes — sample a
// function (or your own data) on a structured grid, then extract any
// isosurface with marching cubes.
//
// 🚀 What is isomesh?
//
//	A small, deterministic, CPU-bound library that brings together:
//		• scalarfield — rectilinear sample grids from bounds+count,
//		  bounds+step, or explicit coordinate arrays, backed by an
//		  analytic function or raw values
//		• mcubes — the classic marching-cubes triangulator: 256-entry
//		  edge/triangle lookup tables, linear edge interpolation,
//		  optional sharded sweep, and mesh post-processing (welding,
//		  per-vertex normals)
//
// ✨ Why choose isomesh?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always yield identical meshes,
//     even with the parallel sweep enabled
//   - Pure computation – no I/O, no rendering, no hidden state; the
//     mesh is plain data you hand to any 3D API
//   - Predictable errors – sentinel errors, fail-fast construction,
//     mutations degrade gracefully instead of crashing
//
// Everything is organized under two subpackages:
//
//	scalarfield/ — Axis specifications, Field construction & resampling
//	mcubes/      — Triangulate, Mesh, Weld, Normals, lookup tables
//
// Quick sketch:
//
//	f, _ := scalarfield.New(
//	    scalarfield.Linspace(-1.5, 1.5, 32),
//	    scalarfield.Linspace(-1.5, 1.5, 32),
//	    scalarfield.Linspace(-1.5, 1.5, 32),
//	    scalarfield.Analytic(func(x, y, z float64) float64 {
//	        return x*x + y*y + z*z - 1 // unit sphere
//	    }),
//	)
//	mesh, _ := mcubes.Triangulate(f, 0, nil)
//
// Dive into the per-package doc.go files for algorithmic details and
// complexity notes.
//
//	go get github.com/katalvlaran/isomesh
package isomesh
