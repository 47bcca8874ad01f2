package mcubes

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// The two lookup tables are frozen data; these tests pin the structural
// invariants that tie them to each other and to the corner/edge
// numbering, so any accidental edit is caught immediately.

// TestEdgeTable_Boundaries: all-outside and all-inside cells cross nothing.
func TestEdgeTable_Boundaries(t *testing.T) {
	require.EqualValues(t, 0, edgeTable[0])
	require.EqualValues(t, 0, edgeTable[255])
}

// TestEdgeTable_ComplementSymmetry: flipping which corners are inside
// leaves the set of crossed edges unchanged.
func TestEdgeTable_ComplementSymmetry(t *testing.T) {
	for i := 0; i < 256; i++ {
		require.Equal(t, edgeTable[i], edgeTable[255-i], "cube index %d", i)
	}
}

// TestEdgeTable_MatchesCornerSides: an edge is flagged exactly when its
// two corners lie on opposite sides of the cube index's bit pattern.
func TestEdgeTable_MatchesCornerSides(t *testing.T) {
	for cube := 0; cube < 256; cube++ {
		for e := 0; e < 12; e++ {
			a, b := edgeCorner[e][0], edgeCorner[e][1]
			split := (cube>>a)&1 != (cube>>b)&1
			flagged := edgeTable[cube]&(1<<e) != 0
			require.Equal(t, split, flagged, "cube %d edge %d", cube, e)
		}
	}
}

// TestTriTable_ConsistentWithEdgeTable: triangle assembly references
// exactly the crossed edges, in whole triples, at most five triangles.
func TestTriTable_ConsistentWithEdgeTable(t *testing.T) {
	for cube := 0; cube < 256; cube++ {
		row := triTable[cube]
		var used uint16
		n := 0
		for ; row[n] != -1; n++ {
			require.GreaterOrEqual(t, row[n], int8(0), "cube %d", cube)
			require.Less(t, row[n], int8(12), "cube %d", cube)
			used |= 1 << row[n]
		}
		require.Zero(t, n%3, "cube %d: assembly must be whole triples", cube)
		require.LessOrEqual(t, n, 15, "cube %d: at most five triangles", cube)
		require.Equal(t, edgeTable[cube], used,
			"cube %d: triangles must use exactly the crossed edges", cube)
	}
}

// TestCornerOffsets_RingStructure: corners 0-3 ring the bottom face,
// 4-7 the top, and vertical edges pair corner i with i+4.
func TestCornerOffsets_RingStructure(t *testing.T) {
	for c := 0; c < 4; c++ {
		require.Equal(t, 0, cornerOffset[c][2], "bottom ring at dk=0")
		require.Equal(t, 1, cornerOffset[c+4][2], "top ring at dk=1")
		require.Equal(t, cornerOffset[c][0], cornerOffset[c+4][0], "rings aligned in x")
		require.Equal(t, cornerOffset[c][1], cornerOffset[c+4][1], "rings aligned in y")
		require.Equal(t, [2]int{c, c + 4}, edgeCorner[8+c], "vertical edge pairing")
	}
}

// TestInterpolate pins the crossing parameterization, the [0,1] clamp,
// and the equal-values midpoint policy.
func TestInterpolate(t *testing.T) {
	pa, pb := r3.Vec{X: 0}, r3.Vec{X: 1}

	require.Equal(t, r3.Vec{X: 0.25}, interpolate(0.25, pa, pb, 0, 1))
	require.Equal(t, r3.Vec{X: 0.75}, interpolate(0.25, pa, pb, 1, 0))
	require.Equal(t, pa, interpolate(-5, pa, pb, 0, 1), "alpha clamped at 0")
	require.Equal(t, pb, interpolate(5, pa, pb, 0, 1), "alpha clamped at 1")
	require.Equal(t, r3.Vec{X: 0.5}, interpolate(0.5, pa, pb, 0.5, 0.5),
		"equal corner values place the vertex at the midpoint")
}
