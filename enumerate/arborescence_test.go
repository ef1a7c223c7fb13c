package enumerate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArborescenceMirrorsDiscoveredEdges(t *testing.T) {
	h := hFromRows([][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{1, -1, 0},
		{1, 0, -1},
	})

	result, err := FromH(h, 0)
	require.NoError(t, err)
	require.NotEmpty(t, result.Stats.Edges)

	g := Arborescence(result.Stats)
	assert.Equal(t, len(result.Stats.Edges), g.Edges().Len())

	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, g))
	assert.Contains(t, buf.String(), "digraph")
}
