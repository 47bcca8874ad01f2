// File: mcubes/example_test.go
package mcubes_test

import (
	"fmt"

	"github.com/katalvlaran/isomesh/mcubes"
	"github.com/katalvlaran/isomesh/scalarfield"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Triangulate
////////////////////////////////////////////////////////////////////////////////

// ExampleTriangulate extracts the mid-height cut plane from a single
// cell whose bottom corners sample 0 and top corners sample 1.
// Scenario:
//
//   - 2×2×2 grid over the unit cube (one elementary cell)
//   - isovalue 0.5: the surface crosses the four vertical edges
//   - Expect one quad — four vertices, two triangles — at z = 0.5
//
// Complexity: O((nx−1)·(ny−1)·(nz−1))
func ExampleTriangulate() {
	field, _ := scalarfield.New(
		scalarfield.Coords(0, 1),
		scalarfield.Coords(0, 1),
		scalarfield.Coords(0, 1),
		// Flat layout is z-innermost: value = z index.
		scalarfield.Sampled([]float64{0, 1, 0, 1, 0, 1, 0, 1}),
	)

	mesh, _ := mcubes.Triangulate(field, 0.5, nil)

	fmt.Println("vertices: ", len(mesh.Vertices))
	fmt.Println("triangles:", mesh.TriangleCount())
	fmt.Println("cut at z =", mesh.Vertices[0].Z)

	// Output:
	// vertices:  4
	// triangles: 2
	// cut at z = 0.5
}

////////////////////////////////////////////////////////////////////////////////
// Example: Mesh.Weld
////////////////////////////////////////////////////////////////////////////////

// ExampleMesh_Weld merges the coincident vertices that neighboring
// cells emit independently on their shared edges.
// Scenario:
//
//   - 3×2×2 grid: two cells side by side along x
//   - the cut plane crosses four vertical edges per cell; the two
//     middle crossings are emitted twice, once per cell
//   - welding merges the duplicated pair: 8 raw vertices become 6
func ExampleMesh_Weld() {
	field, _ := scalarfield.New(
		scalarfield.Coords(0, 1, 2),
		scalarfield.Coords(0, 1),
		scalarfield.Coords(0, 1),
		scalarfield.Sampled([]float64{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1}),
	)

	mesh, _ := mcubes.Triangulate(field, 0.5, nil)
	welded, _ := mesh.Weld(1e-9)

	fmt.Println("raw vertices:   ", len(mesh.Vertices))
	fmt.Println("welded vertices:", len(welded.Vertices))
	fmt.Println("triangles:      ", welded.TriangleCount())

	// Output:
	// raw vertices:    8
	// welded vertices: 6
	// triangles:       4
}
