// Package mcubes implements marching-cubes isosurface extraction over
// scalarfield grids.
//
// Triangulate is the entry point; the cell classification convention
// and the lookup tables live in tables.go, the Mesh type and its
// post-processing passes in mesh.go.
package mcubes

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/isomesh/scalarfield"
)

// Triangulate extracts the isosurface f(x,y,z) = isovalue from the
// field as a triangle mesh.
//
// Every elementary cell — (nx−1)·(ny−1)·(nz−1) of them — is visited in
// the fixed x-outer / y-middle / z-inner order. Per cell: the 8 corner
// values build an 8-bit cube index (bit i set when corner i's value is
// strictly greater than isovalue), the edge table yields the mask of
// crossed edges, each crossed edge contributes one linearly
// interpolated vertex, and the triangle table assembles the triangles.
// Vertices are shared within a cell but never across cells; use
// Mesh.Weld when a welded mesh is needed.
//
// An isovalue outside the field's value range yields an empty mesh and
// a nil error. Output is deterministic for identical inputs, including
// with Options.Workers > 1. A nil opts selects DefaultOptions.
//
// Returns ErrNilField when f is nil.
// Complexity: O(nx·ny·nz) time, O(V+T) memory for the result.
func Triangulate(f *scalarfield.Field, isovalue float64, opts *Options) (*Mesh, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	sw := newSweeper(f)
	cellsX := f.Nx() - 1

	workers := opts.Workers
	if workers > cellsX {
		workers = cellsX
	}
	if workers <= 1 {
		m := &Mesh{}
		sw.sweep(m, 0, cellsX, isovalue)

		return m, nil
	}

	// Slab decomposition along x: each shard owns a private accumulator
	// over a contiguous run of cell columns, so no synchronization is
	// needed beyond the join. Concatenating shards in x order with
	// rebased indices reproduces the serial output exactly.
	shards := make([]Mesh, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * cellsX / workers
		hi := (w + 1) * cellsX / workers
		shard := &shards[w]
		g.Go(func() error {
			sw.sweep(shard, lo, hi, isovalue)

			return nil
		})
	}
	// Shards never fail; the group only joins the goroutines.
	_ = g.Wait()

	out := &Mesh{}
	for i := range shards {
		base := len(out.Vertices)
		out.Vertices = append(out.Vertices, shards[i].Vertices...)
		for _, t := range shards[i].Triangles {
			out.Triangles = append(out.Triangles, [3]int{t[0] + base, t[1] + base, t[2] + base})
		}
	}

	return out, nil
}

// sweeper snapshots the field's arrays once so the per-cell loop works
// on plain slices. The snapshot is read-only and safe to share across
// shards.
type sweeper struct {
	xs, ys, zs []float64
	values     []float64
	ny, nz     int
}

func newSweeper(f *scalarfield.Field) *sweeper {
	return &sweeper{
		xs:     f.Xs(),
		ys:     f.Ys(),
		zs:     f.Zs(),
		values: f.Values(),
		ny:     f.Ny(),
		nz:     f.Nz(),
	}
}

// sweep marches all cells with anchor x index in [x0, x1), appending
// geometry to m. Cells are independent; the iteration order fixes the
// output order.
func (s *sweeper) sweep(m *Mesh, x0, x1 int, isovalue float64) {
	cellsY, cellsZ := len(s.ys)-1, len(s.zs)-1
	var cellVal [8]float64
	var cellPos [8]r3.Vec
	var edgeVert [12]int

	for i := x0; i < x1; i++ {
		for j := 0; j < cellsY; j++ {
			for k := 0; k < cellsZ; k++ {
				cube := 0
				for c := 0; c < 8; c++ {
					ci, cj, ck := i+cornerOffset[c][0], j+cornerOffset[c][1], k+cornerOffset[c][2]
					v := s.values[(ci*s.ny+cj)*s.nz+ck]
					cellVal[c] = v
					if v > isovalue {
						cube |= 1 << c
					}
					cellPos[c] = r3.Vec{X: s.xs[ci], Y: s.ys[cj], Z: s.zs[ck]}
				}

				mask := edgeTable[cube]
				if mask == 0 {
					continue
				}

				// One vertex per crossed edge slot: dedup within the
				// cell only.
				for e := 0; e < 12; e++ {
					if mask&(1<<e) == 0 {
						continue
					}
					a, b := edgeCorner[e][0], edgeCorner[e][1]
					edgeVert[e] = len(m.Vertices)
					m.Vertices = append(m.Vertices,
						interpolate(isovalue, cellPos[a], cellPos[b], cellVal[a], cellVal[b]))
				}

				row := triTable[cube]
				for t := 0; row[t] != -1; t += 3 {
					m.Triangles = append(m.Triangles, [3]int{
						edgeVert[row[t]],
						edgeVert[row[t+1]],
						edgeVert[row[t+2]],
					})
				}
			}
		}
	}
}

// interpolate finds the isosurface crossing on the edge (pa,va)-(pb,vb)
// by linear interpolation, with α clamped to [0,1]. Equal corner values
// place the vertex at the edge midpoint (α = 0.5) instead of dividing
// by zero; the strict greater-than classification keeps such edges off
// the crossed-edge mask, so the midpoint branch is a robustness policy,
// not a code path the tables can normally reach.
func interpolate(isovalue float64, pa, pb r3.Vec, va, vb float64) r3.Vec {
	alpha := 0.5
	if va != vb {
		alpha = (isovalue - va) / (vb - va)
		if alpha < 0 {
			alpha = 0
		} else if alpha > 1 {
			alpha = 1
		}
	}

	return r3.Add(pa, r3.Scale(alpha, r3.Sub(pb, pa)))
}
