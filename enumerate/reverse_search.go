// Package enumerate walks an H-polyhedron's arrangement of feasible bases
// via reverse search to produce its V-representation (FromH), and walks a
// V-polyhedron's lifted rows by d-subset to produce its H-representation
// (FromV). Both are grounded on ReverseSearchEnumerator.java and
// FacetEnumerator.java, re-expressed over dictionary.SimplexDictionary.
package enumerate

import (
	"errors"
	"math/big"

	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/densematrix"
	"q.log/lrsgo/dictionary"
	"q.log/lrsgo/polyhedron"
)

type stackEntry struct {
	basis polyhedron.Basis
	depth int
}

// FromH enumerates the vertices and extreme rays of h by reverse search
// over its feasible-basis arrangement. maxDepth caps the DFS depth (0 =
// unlimited). A structural Infeasible or DegenerateInfeasibility from
// Phase-I is not an error: it surfaces as an empty result with zeroed
// stats, per spec.md §4.6's contract.
func FromH(h *polyhedron.H, maxDepth int) (*polyhedron.Result, error) {
	d := h.Dim()
	stats := &polyhedron.EnumStats{}

	root, err := dictionary.FindFeasibleBasis(h)
	if err != nil {
		if errors.Is(err, dictionary.ErrInfeasible) || errors.Is(err, dictionary.ErrDegenerateInfeasibility) {
			return &polyhedron.Result{V: polyhedron.NewV(densematrix.New(0, d+1)), Stats: stats}, nil
		}
		return nil, err
	}

	seen := make(map[string]bool)
	rayKeys := make(map[string]bool)
	var vertexRows, rayRows [][]bigrational.Rational

	stack := []stackEntry{{root, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := top.basis.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		dict, err := dictionary.New(h.M, top.basis)
		if err != nil {
			continue
		}

		stats.Bases++
		if top.depth > stats.MaxDepth {
			stats.MaxDepth = top.depth
		}
		stats.LastCobasis = append([]int(nil), top.basis...)

		x := dict.Vertex()
		vertexRows = append(vertexRows, withLeading(bigrational.One(), x))
		stats.Vertices++
		if allIntegers(x) {
			stats.IntegerVertices++
		}

		for _, ray := range dict.RayDirections() {
			rk := vecKey(ray)
			if !rayKeys[rk] {
				rayKeys[rk] = true
				rayRows = append(rayRows, withLeading(bigrational.Zero(), ray))
				stats.Rays++
			}
		}

		if maxDepth > 0 && top.depth+1 > maxDepth {
			continue
		}

		children := dict.ChildrenBases()
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			cdict, err := dictionary.New(h.M, child)
			if err != nil {
				continue
			}
			parent, ok := cdict.ParentBasis()
			if ok && parent.Key() == top.basis.Key() {
				stats.Edges = append(stats.Edges, [2]string{top.basis.Key(), child.Key()})
				stack = append(stack, stackEntry{child, top.depth + 1})
			}
		}
	}

	rows := append(vertexRows, rayRows...)
	vm := densematrix.New(len(rows), d+1)
	for i, r := range rows {
		vm.SetRow(i, r)
	}
	return &polyhedron.Result{V: polyhedron.NewV(vm), Stats: stats}, nil
}

func withLeading(lead bigrational.Rational, v []bigrational.Rational) []bigrational.Rational {
	out := make([]bigrational.Rational, len(v)+1)
	out[0] = lead
	copy(out[1:], v)
	return out
}

func allIntegers(v []bigrational.Rational) bool {
	one := big.NewInt(1)
	for _, c := range v {
		if c.Denominator().Cmp(one) != 0 {
			return false
		}
	}
	return true
}

func vecKey(v []bigrational.Rational) string {
	var sb []byte
	for _, c := range v {
		sb = append(sb, []byte(c.String())...)
		sb = append(sb, ',')
	}
	return string(sb)
}
