package mcubes

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a triangulation result: vertex positions plus triangles as
// index triples into Vertices. A Mesh is a pure derived artifact — it
// holds no reference back to the field it came from and is safe to
// discard and recompute at will.
type Mesh struct {
	Vertices  []r3.Vec
	Triangles [][3]int
}

// TriangleCount returns the number of triangles. Complexity: O(1).
func (m *Mesh) TriangleCount() int { return len(m.Triangles) }

// IsEmpty reports whether the mesh carries no geometry, the silent
// outcome of an isovalue outside the field's value range.
func (m *Mesh) IsEmpty() bool { return len(m.Triangles) == 0 }

// Weld merges vertices that coincide within tol and rewrites triangle
// indices, dropping triangles collapsed by the merge. The core sweep
// emits coincident-but-distinct vertices on edges shared between
// adjacent cells; welding is the optional pass that turns that raw
// triangle soup into a connected mesh. The receiver is not modified.
//
// Positions are quantized to a tol-spaced lattice, so two vertices
// merge when they land in the same lattice cell; the first occurrence's
// exact position is kept. Returns ErrWeldTolerance when tol ≤ 0.
// Complexity: O(V + T) expected, one map over quantized positions.
func (m *Mesh) Weld(tol float64) (*Mesh, error) {
	if tol <= 0 {
		return nil, ErrWeldTolerance
	}

	type cell struct{ x, y, z int64 }
	seen := make(map[cell]int, len(m.Vertices))
	remap := make([]int, len(m.Vertices))
	out := &Mesh{Vertices: make([]r3.Vec, 0, len(m.Vertices))}

	for i, v := range m.Vertices {
		c := cell{
			x: int64(math.Round(v.X / tol)),
			y: int64(math.Round(v.Y / tol)),
			z: int64(math.Round(v.Z / tol)),
		}
		id, ok := seen[c]
		if !ok {
			id = len(out.Vertices)
			seen[c] = id
			out.Vertices = append(out.Vertices, v)
		}
		remap[i] = id
	}

	out.Triangles = make([][3]int, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		a, b, c := remap[t[0]], remap[t[1]], remap[t[2]]
		if a == b || b == c || a == c {
			continue
		}
		out.Triangles = append(out.Triangles, [3]int{a, b, c})
	}

	return out, nil
}

// Normals computes one unit normal per vertex by accumulating
// area-weighted face normals (the raw cross product of each triangle's
// edge vectors) and normalizing the sums. Vertices referenced by no
// triangle, or whose incident faces cancel exactly, get a zero vector.
// Complexity: O(V + T).
func (m *Mesh) Normals() []r3.Vec {
	acc := make([]r3.Vec, len(m.Vertices))
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		fn := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		acc[t[0]] = r3.Add(acc[t[0]], fn)
		acc[t[1]] = r3.Add(acc[t[1]], fn)
		acc[t[2]] = r3.Add(acc[t[2]], fn)
	}
	for i, n := range acc {
		if r3.Norm(n) != 0 {
			acc[i] = r3.Unit(n)
		}
	}

	return acc
}
