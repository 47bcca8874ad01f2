// Package mcubes defines options for the marching-cubes triangulator.
package mcubes

// Options configures Triangulate.
//
// Fields:
//   - Workers — number of concurrent slabs the cell sweep is split into
//     along the x axis. Values ≤ 1 select the serial sweep. The output
//     mesh is identical regardless of Workers: each slab accumulates
//     privately and slabs are concatenated in x order with vertex
//     indices rebased.
//
// Example:
//
//	mesh, err := mcubes.Triangulate(f, 0.5, &mcubes.Options{Workers: 4})
type Options struct {
	Workers int
}

// DefaultOptions returns the default configuration: a serial sweep.
func DefaultOptions() *Options {
	return &Options{Workers: 1}
}
