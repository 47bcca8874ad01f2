// Package mcubes extracts isosurfaces from 3D scalar fields as triangle
// meshes using the classic marching-cubes algorithm.
//
// What:
//
//   - Triangulate sweeps every elementary cell of a scalarfield.Field,
//     classifies its 8 corners against an isovalue, and emits triangles
//     whose vertices are linearly interpolated along the crossed cell
//     edges, driven by the canonical 256-entry edge and triangle lookup
//     tables.
//   - Mesh is the result: vertex positions (gonum r3.Vec) plus triangle
//     index triples — plain data for any 3D rendering API.
//   - Weld and Normals are optional post-processing passes: the core
//     sweep itself never deduplicates vertices across cells.
//
// Why:
//
//   - Interactive visualization: re-extract a surface at a new isovalue
//     without touching the sampled field.
//   - Implicit modeling: turn any f(x,y,z)=c level set into geometry.
//   - Volume data: medical/simulation voxel grids to renderable meshes.
//
// Convention (fixed — the lookup tables are defined in these terms and
// any reordering silently corrupts output):
//
//   - Cube corners 0..7: 0=(0,0,0) 1=(1,0,0) 2=(1,1,0) 3=(0,1,0) on the
//     bottom face, 4..7 the same ring shifted to z+1.
//   - Edges 0..3 ring the bottom face, 4..7 the top face, 8..11 are the
//     verticals (corner i to corner i+4).
//   - Corner bit i of the cube index is set when the corner's value is
//     strictly greater than the isovalue.
//
// Complexity:
//
//   - Triangulate: O((nx−1)·(ny−1)·(nz−1)) — constant work per cell
//     (8 corner reads, ≤12 interpolations, ≤5 triangles), every cell
//     visited, no acceleration structure.
//   - Weld:    O(V + T) with a map over quantized positions.
//   - Normals: O(V + T).
//
// Options:
//
//   - Options.Workers: number of slabs the x-range is split into, each
//     swept concurrently (errgroup). Results are concatenated in slab
//     order, so output is identical to the serial sweep. Default 1.
//
// Errors:
//
//   - ErrNilField: Triangulate received a nil field.
//   - ErrWeldTolerance: Weld received a non-positive tolerance.
//
// An isovalue outside the field's value range is not an error: the
// sweep simply finds no crossings and returns an empty Mesh. Fields
// containing NaN/Inf values produce undefined interpolation results;
// guarding against them is the caller's responsibility.
package mcubes
