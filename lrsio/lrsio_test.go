package lrsio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/densematrix"
	"q.log/lrsgo/polyhedron"
)

func TestReadPolyhedronHeaderDefaultsToH(t *testing.T) {
	src := `
* a comment
begin
4 3 rational
0 1 0
0 0 1
1 -1 0
1 0 -1
end
`
	in, err := ReadPolyhedron(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, polyhedron.VE, in.Mode)
	assert.False(t, in.IntegerData)
	require.Equal(t, 4, in.M.Rows())
	require.Equal(t, 3, in.M.Cols())
	assert.Equal(t, "1", in.M.Get(2, 0).String())
	assert.Equal(t, "-1", in.M.Get(2, 1).String())
}

func TestReadPolyhedronStarHeaderAndFractions(t *testing.T) {
	src := `
V-representation
begin
***** 3 rational
1 1/2 0
1 0 3/4
end
`
	in, err := ReadPolyhedron(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, polyhedron.CH, in.Mode)
	require.Equal(t, 2, in.M.Rows())
	assert.Equal(t, "1/2", in.M.Get(0, 1).String())
	assert.Equal(t, "3/4", in.M.Get(1, 2).String())
}

func TestReadPolyhedronMissingBeginFails(t *testing.T) {
	_, err := ReadPolyhedron(strings.NewReader("H-representation\n4 3 rational\n"))
	assert.Error(t, err)
}

func TestWriteResultVertexFormat(t *testing.T) {
	m := densematrix.New(2, 3)
	m.SetRow(0, []bigrational.Rational{bigrational.One(), bigrational.Zero(), bigrational.Zero()})
	m.SetRow(1, []bigrational.Rational{bigrational.One(), bigrational.FromInt64(1), bigrational.Zero()})

	res := &polyhedron.Result{
		V:     polyhedron.NewV(m),
		Stats: &polyhedron.EnumStats{Vertices: 2, Bases: 2, IntegerVertices: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, res, polyhedron.VE))

	out := buf.String()
	assert.Contains(t, out, "V-representation\n")
	assert.Contains(t, out, "***** 3 rational\n")
	assert.Contains(t, out, "1 0 0\n")
	assert.Contains(t, out, "1 1 0\n")
	assert.Contains(t, out, "end\n")
	assert.Contains(t, out, "*Totals: vertices=2 rays=0 bases=2 integer_vertices=2")
}

func TestRoundTripUnitSquare(t *testing.T) {
	src := `H-representation
begin
4 3 rational
0 1 0
0 0 1
1 -1 0
1 0 -1
end
`
	in, err := ReadPolyhedron(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	res := &polyhedron.Result{H: polyhedron.NewH(in.M), Stats: &polyhedron.EnumStats{Facets: 4, Bases: 4}}
	require.NoError(t, WriteResult(&buf, res, polyhedron.CH))
	assert.Contains(t, buf.String(), "*Totals: facets=4 bases=4")
}
