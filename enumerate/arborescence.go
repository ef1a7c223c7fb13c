package enumerate

import (
	"io"

	"gonum.org/v1/gonum/graph"
	gonumdot "gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"q.log/lrsgo/polyhedron"
)

// basisNode attaches a basis's display key to a gonum graph.Node id so the
// dot encoder can label vertices meaningfully instead of by opaque int64.
type basisNode struct {
	id  int64
	key string
}

func (n basisNode) ID() int64 { return n.id }

// DOTID implements dot.Node: it is what gonum's dot encoder prints in place
// of the bare node id.
func (n basisNode) DOTID() string { return n.key }

// Arborescence projects the parent(B)->B tree edges recorded in stats.Edges
// during a FromH run into a *simple.DirectedGraph, one node per visited
// basis. This mirrors ReverseSearchEnumerator's own lex arborescence
// (spec.md's glossary entry of the same name) as an explicit graph value,
// purely for diagnostics: the DFS itself never reads this graph back.
func Arborescence(stats *polyhedron.EnumStats) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	ids := make(map[string]int64)
	nodeFor := func(key string) basisNode {
		id, ok := ids[key]
		if !ok {
			id = int64(len(ids))
			ids[key] = id
			g.AddNode(basisNode{id: id, key: key})
		}
		return basisNode{id: id, key: key}
	}
	for _, e := range stats.Edges {
		from := nodeFor(e[0])
		to := nodeFor(e[1])
		g.SetEdge(simple.Edge{F: from, T: to})
	}
	return g
}

// WriteDOT renders g in Graphviz dot format, the same pairing
// gonum.org/v1/gonum/graph/encoding/dot uses for every gonum graph type.
func WriteDOT(w io.Writer, g graph.Directed) error {
	data, err := gonumdot.Marshal(g, "arborescence", "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
