// Package polyhedron holds the two standard representations of a convex
// polyhedron (H and V) and the plain records the enumerators produce:
// EnumStats and Result.
package polyhedron

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"q.log/lrsgo/densematrix"
)

// Mode selects which direction the driver runs the enumerator: VE reads an
// H-representation and produces vertices/rays, CH reads a V-representation
// and produces facets.
type Mode int

const (
	VE Mode = iota
	CH
)

// Input is what lrsio.ReadPolyhedron hands back: the representation type
// (carried separately from the matrix so VE/CH dispatch doesn't need to
// re-inspect row contents), the column's integer-vs-rational metadata, and
// the parsed matrix itself.
type Input struct {
	Mode        Mode
	IntegerData bool
	M           *densematrix.Matrix
}

// H is an m x n DenseMatrix with n = d+1. Row i is [b_i | a_i], encoding
// b_i + a_i . x >= 0.
type H struct {
	M *densematrix.Matrix
}

// NewH wraps m, requiring at least one column (the constant term).
func NewH(m *densematrix.Matrix) *H { return &H{M: m} }

// Dim returns the geometric dimension d = n - 1.
func (h *H) Dim() int { return h.M.Cols() - 1 }

// Rows returns the inequality count m.
func (h *H) Rows() int { return h.M.Rows() }

// V is an m x n DenseMatrix with n = d+1. Row i is a vertex ([1|x]) when
// row[0] == 1, or an extreme ray ([0|r]) when row[0] == 0.
type V struct {
	M *densematrix.Matrix
}

// NewV wraps m.
func NewV(m *densematrix.Matrix) *V { return &V{M: m} }

// Dim returns the geometric dimension d = n - 1.
func (v *V) Dim() int { return v.M.Cols() - 1 }

// Rows returns the row count m.
func (v *V) Rows() int { return v.M.Rows() }

// Basis is a sorted set of exactly d row indices identifying the tight
// inequalities at a candidate vertex.
type Basis []int

// Sorted returns a sorted copy of rows.
func Sorted(rows []int) Basis {
	b := make(Basis, len(rows))
	copy(b, rows)
	sort.Ints(b)
	return b
}

// Clone returns an independent copy.
func (b Basis) Clone() Basis {
	out := make(Basis, len(b))
	copy(out, b)
	return out
}

// Key returns a string uniquely identifying this basis for use as a map
// key (seen-sets, arborescence edge labels).
func (b Basis) Key() string {
	var sb strings.Builder
	for _, r := range b {
		sb.WriteString(strconv.Itoa(r))
		sb.WriteByte(',')
	}
	return sb.String()
}

// Less implements the lexicographic total order spec.md defines on sorted
// basis tuples: int-by-int comparison.
func (b Basis) Less(o Basis) bool {
	return Compare(b, o) < 0
}

// Compare returns -1, 0 or +1 as a <, ==, > o lexicographically.
func Compare(a, o Basis) int {
	n := len(a)
	if len(o) < n {
		n = len(o)
	}
	for i := 0; i < n; i++ {
		if a[i] != o[i] {
			if a[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(o):
		return -1
	case len(a) > len(o):
		return 1
	default:
		return 0
	}
}

// Contains reports whether row is present in the (sorted) basis.
func (b Basis) Contains(row int) bool {
	i := sort.SearchInts(b, row)
	return i < len(b) && b[i] == row
}

// EnumStats is a plain record of enumeration counters, populated during a
// single enumerate.FromH or enumerate.FromV run.
type EnumStats struct {
	Vertices        int
	Rays            int
	Bases           int
	Facets          int
	IntegerVertices int
	MaxDepth        int
	LastCobasis     []int

	// Edges records each parent(B)->B tree edge discovered by the
	// reverse-search DFS, keyed by Basis.Key(). It is populated purely for
	// diagnostics (see the enumerate package's lex arborescence export)
	// and is never read back into the traversal itself.
	Edges [][2]string
}

// VertexTotalsLine renders the H->V *Totals: trailer line spec.md §6
// specifies.
func (s *EnumStats) VertexTotalsLine() string {
	return fmt.Sprintf("*Totals: vertices=%d rays=%d bases=%d integer_vertices=%d",
		s.Vertices, s.Rays, s.Bases, s.IntegerVertices)
}

// FacetTotalsLine renders the V->H *Totals: trailer line spec.md §6
// specifies.
func (s *EnumStats) FacetTotalsLine() string {
	return fmt.Sprintf("*Totals: facets=%d bases=%d", s.Facets, s.Bases)
}

// Result bundles an enumeration's output representation with its stats.
// Exactly one of V or H is populated, depending on direction.
type Result struct {
	V     *V
	H     *H
	Stats *EnumStats
}
