package enumerate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/densematrix"
	"q.log/lrsgo/dictionary"
	"q.log/lrsgo/polyhedron"
)

func hFromRows(rows [][]int64) *polyhedron.H {
	m := densematrix.New(len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, bigrational.FromInt64(v))
		}
	}
	return polyhedron.NewH(m)
}

func vFromRows(rows [][]int64) *polyhedron.V {
	m := densematrix.New(len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, bigrational.FromInt64(v))
		}
	}
	return polyhedron.NewV(m)
}

func rowAt(m *densematrix.Matrix, r int) []int64 {
	out := make([]int64, m.Cols())
	for c := 0; c < m.Cols(); c++ {
		out[c] = m.Get(r, c).Numerator().Int64()
	}
	return out
}

func TestFromHUnitSquare(t *testing.T) {
	h := hFromRows([][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{1, -1, 0},
		{1, 0, -1},
	})

	result, err := FromH(h, 0)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Stats.Vertices)
	assert.Equal(t, 0, result.Stats.Rays)
	assert.Equal(t, 4, result.Stats.Bases)
	assert.Equal(t, 2, result.Stats.MaxDepth)
	assert.Equal(t, 4, result.Stats.IntegerVertices)

	require.Equal(t, 4, result.V.Rows())
	want := [][]int64{{1, 0, 0}, {1, 0, 1}, {1, 1, 1}, {1, 1, 0}}
	for i, w := range want {
		assert.Equal(t, w, rowAt(result.V.M, i), "row %d", i)
	}
}

func TestFromHUnboundedStrip(t *testing.T) {
	// 0<=x<=5, y>=0: a slab unbounded in +y, with two vertices and one
	// extreme ray.
	h := hFromRows([][]int64{
		{0, 0, 1},
		{0, 1, 0},
		{5, -1, 0},
	})

	result, err := FromH(h, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.Vertices)
	assert.Equal(t, 1, result.Stats.Rays)
	assert.Equal(t, 2, result.Stats.Bases)
	assert.Equal(t, 1, result.Stats.MaxDepth)
	assert.Equal(t, 2, result.Stats.IntegerVertices)

	require.Equal(t, 3, result.V.Rows())
	assert.Equal(t, []int64{1, 0, 0}, rowAt(result.V.M, 0))
	assert.Equal(t, []int64{1, 5, 0}, rowAt(result.V.M, 1))
	assert.Equal(t, []int64{0, 0, 1}, rowAt(result.V.M, 2))
}

func TestFromHInfeasibleIsEmptyNotError(t *testing.T) {
	h := hFromRows([][]int64{
		{0, 1},
		{-1, -1},
	})

	result, err := FromH(h, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.Vertices)
	assert.Equal(t, 0, result.V.Rows())
}

func TestFromHMaxDepthCap(t *testing.T) {
	h := hFromRows([][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{1, -1, 0},
		{1, 0, -1},
	})

	result, err := FromH(h, 1)
	require.NoError(t, err)
	// Capping depth at 1 still visits the root (depth 0) and its direct
	// neighbours (depth 1), but refuses to push their children: on the
	// square this reaches 3 of the 4 vertices, since (1,1) sits at depth 2
	// in the arborescence, and MaxDepth must not exceed the cap.
	assert.LessOrEqual(t, result.Stats.MaxDepth, 1)
}

func TestFromVSquareFacets(t *testing.T) {
	v := vFromRows([][]int64{
		{1, 0, 0},
		{1, 1, 0},
		{1, 1, 1},
		{1, 0, 1},
	})

	result, err := FromV(v)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Stats.Facets)
	require.Equal(t, 4, result.H.Rows())

	// Every facet must hold as a valid supporting halfspace for every
	// input vertex.
	for i := 0; i < result.H.Rows(); i++ {
		row := result.H.M.Row(i)
		for j := 0; j < v.Rows(); j++ {
			s := dot(row, v.M.Row(j))
			assert.True(t, s.Sign() >= 0, "facet %d violated at vertex %d", i, j)
		}
	}
}

func TestFromVTooFewRows(t *testing.T) {
	v := vFromRows([][]int64{{1, 0, 0}})
	result, err := FromV(v)
	require.NoError(t, err)
	assert.Equal(t, 0, result.H.Rows())
}

func TestFromHUnitCube(t *testing.T) {
	h := hFromRows([][]int64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{1, -1, 0, 0},
		{1, 0, -1, 0},
		{1, 0, 0, -1},
	})

	result, err := FromH(h, 0)
	require.NoError(t, err)

	// The cube is simple: exactly 3 of the 6 facets are tight at each
	// vertex, so each of the 8 vertices has exactly one feasible basis
	// and reverse search visits each exactly once.
	assert.Equal(t, 8, result.Stats.Vertices)
	assert.Equal(t, 8, result.Stats.Bases)
	assert.Equal(t, 0, result.Stats.Rays)
	assert.Equal(t, 8, result.Stats.IntegerVertices)
	require.Equal(t, 8, result.V.Rows())

	got := make(map[string]bool)
	for i := 0; i < result.V.Rows(); i++ {
		got[vecKey(result.V.M.Row(i))] = true
	}
	want := make(map[string]bool)
	for _, x := range []int64{0, 1} {
		for _, y := range []int64{0, 1} {
			for _, z := range []int64{0, 1} {
				row := make([]bigrational.Rational, 4)
				row[0] = bigrational.One()
				row[1] = bigrational.FromInt64(x)
				row[2] = bigrational.FromInt64(y)
				row[3] = bigrational.FromInt64(z)
				want[vecKey(row)] = true
			}
		}
	}
	assert.Equal(t, want, got)
}

func TestRoundTripSimplex(t *testing.T) {
	v := vFromRows([][]int64{
		{1, 0, 0, 0},
		{1, 1, 0, 0},
		{1, 0, 1, 0},
		{1, 0, 0, 1},
	})

	hResult, err := FromV(v)
	require.NoError(t, err)
	assert.Equal(t, 4, hResult.Stats.Facets)
	require.Equal(t, 4, hResult.H.Rows())

	vResult, err := FromH(hResult.H, 0)
	require.NoError(t, err)
	// The simplex is non-degenerate: each vertex is tight on exactly 3 of
	// the 4 facets, so vertex count equals basis count.
	assert.Equal(t, 4, vResult.Stats.Vertices)
	assert.Equal(t, 4, vResult.Stats.Bases)
	assert.Equal(t, 0, vResult.Stats.Rays)
	require.Equal(t, 4, vResult.V.Rows())

	got := make(map[string]bool)
	for i := 0; i < vResult.V.Rows(); i++ {
		got[vecKey(vResult.V.M.Row(i))] = true
	}
	want := make(map[string]bool)
	for i := 0; i < v.Rows(); i++ {
		want[vecKey(v.M.Row(i))] = true
	}
	assert.Equal(t, want, got)
}

func TestRayDirectionsOfConeReachH(t *testing.T) {
	// The 2-D cone y>=0, x-y>=0 has m==d==2: both rows sit in the only
	// possible basis, so the apex and its two rays must come entirely
	// from dictionary.RayDirections, not from any neighbouring basis.
	h := hFromRows([][]int64{
		{0, 0, 1},
		{0, 1, -1},
	})

	result, err := FromH(h, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.Vertices)
	assert.Equal(t, 2, result.Stats.Rays)
	require.Equal(t, 3, result.V.Rows())

	vertexRow := rowAt(result.V.M, 0)
	assert.Equal(t, []int64{1, 0, 0}, vertexRow)

	rays := make(map[string]bool)
	for i := 1; i < result.V.Rows(); i++ {
		rays[vecKey(result.V.M.Row(i))] = true
	}
	want := map[string]bool{
		vecKey([]bigrational.Rational{bigrational.Zero(), bigrational.FromInt64(1), bigrational.FromInt64(0)}): true,
		vecKey([]bigrational.Rational{bigrational.Zero(), bigrational.FromInt64(1), bigrational.FromInt64(1)}): true,
	}
	assert.Equal(t, want, rays)
}

// bruteForceVertices tries every d-subset of h's rows as a candidate
// basis, silently skipping singular ones, and keeps the distinct vertices
// that are feasible against every row. It exists only to cross-check
// FromH's reverse search against an independent, combinatorially
// exhaustive method on small inputs.
func bruteForceVertices(h *polyhedron.H) map[string]bool {
	d := h.Dim()
	seen := make(map[string]bool)
	for _, subset := range combinations(h.Rows(), d) {
		dict, err := dictionary.New(h.M, polyhedron.Basis(subset))
		if err != nil {
			continue
		}
		feasible := true
		for r := 0; r < h.Rows(); r++ {
			if dict.Slack(r).Sign() < 0 {
				feasible = false
				break
			}
		}
		if !feasible {
			continue
		}
		seen[vecKey(withLeading(bigrational.One(), dict.Vertex()))] = true
	}
	return seen
}

func TestDegenerateBasisAgainstBruteForce(t *testing.T) {
	// Unit square with row0 (x>=0) repeated as row4. Basis {0,4} (both
	// copies of the same constraint) is singular and must be silently
	// skipped by both the reverse search and the brute-force sweep; the
	// duplicate also lets some vertices be reached through more than one
	// basis, but the deduplicated vertex set must still be exactly the
	// square's 4 true vertices.
	h := hFromRows([][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{1, -1, 0},
		{1, 0, -1},
		{0, 1, 0},
	})

	result, err := FromH(h, 0)
	require.NoError(t, err)

	got := make(map[string]bool)
	for i := 0; i < result.V.Rows(); i++ {
		got[vecKey(result.V.M.Row(i))] = true
	}

	want := bruteForceVertices(h)
	assert.Equal(t, want, got)
	assert.Len(t, want, 4)
}

func TestCombinationsLexOrder(t *testing.T) {
	got := combinations(4, 2)
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	assert.Equal(t, want, got)
}
