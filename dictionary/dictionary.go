// Package dictionary implements SimplexDictionary: the per-basis view of
// an H-polyhedron that the enumerate package's reverse search walks. A
// dictionary is constructed from an H matrix and a candidate basis (a set
// of d tight row indices); it exposes the vertex the basis identifies, the
// slack of every row at that vertex, the lexicographically ordered
// neighbour bases reachable by a single feasibility-preserving pivot, the
// unique parent in the lex arborescence, and the extreme-ray directions
// incident to the vertex. It is grounded directly on SimplexDictionary's
// refactor/slack/childrenBases/parentBasis methods, with the Fraction[]
// row arrays generalized to densematrix.Matrix and
// []bigrational.Rational. RayDirections uses a different formula than
// SimplexDictionary.rayDirections; see its own doc comment.
package dictionary

import (
	"fmt"
	"sort"

	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/densematrix"
	"q.log/lrsgo/linalg"
	"q.log/lrsgo/polyhedron"
)

// SimplexDictionary is the refactored view of h at basis: B^-1 and the
// vertex x = B^-1 . (-b_B), where B is the d x d matrix of a-columns of
// the basis rows.
type SimplexDictionary struct {
	h     *densematrix.Matrix // m x (d+1): row i is [b_i | a_i]
	m, d  int
	basis polyhedron.Basis
	binv  *densematrix.Matrix // d x d
	x     []bigrational.Rational
}

// New refactors h at basis, returning ErrSingularBasis if the basis's
// coefficient submatrix has no inverse.
func New(h *densematrix.Matrix, basis polyhedron.Basis) (*SimplexDictionary, error) {
	m, n := h.Rows(), h.Cols()
	d := n - 1
	if len(basis) != d {
		return nil, fmt.Errorf("dictionary: basis has %d rows, want d=%d", len(basis), d)
	}
	dict := &SimplexDictionary{h: h, m: m, d: d, basis: basis.Clone()}
	if err := dict.refactor(); err != nil {
		return nil, err
	}
	return dict, nil
}

func (dict *SimplexDictionary) refactor() error {
	d := dict.d
	bmat := densematrix.New(d, d)
	negBB := make([]bigrational.Rational, d)
	for i, r := range dict.basis {
		negBB[i] = dict.h.Get(r, 0).Neg()
		for j := 0; j < d; j++ {
			bmat.Set(i, j, dict.h.Get(r, j+1))
		}
	}

	binv, ok := linalg.Invert(bmat)
	if !ok {
		return fmt.Errorf("%w: %v", ErrSingularBasis, dict.basis)
	}
	dict.binv = binv
	dict.x = matVec(binv, negBB)
	return nil
}

// Basis returns the (sorted) basis this dictionary was refactored at.
func (dict *SimplexDictionary) Basis() polyhedron.Basis { return dict.basis.Clone() }

// Vertex returns the d coordinates of the vertex this basis identifies.
// The caller prepends the leading 1 when emitting a V-row.
func (dict *SimplexDictionary) Vertex() []bigrational.Rational {
	out := make([]bigrational.Rational, dict.d)
	copy(out, dict.x)
	return out
}

// Slack returns b_row + a_row . x, the row's tightness at the current
// vertex: zero for a row in the basis, and for a feasible vertex
// nonnegative for every other row.
func (dict *SimplexDictionary) Slack(row int) bigrational.Rational {
	s := dict.h.Get(row, 0)
	for j := 0; j < dict.d; j++ {
		s = s.Add(dict.h.Get(row, j+1).Mul(dict.x[j]))
	}
	return s
}

func (dict *SimplexDictionary) rowA(row int) []bigrational.Rational {
	out := make([]bigrational.Rational, dict.d)
	for j := 0; j < dict.d; j++ {
		out[j] = dict.h.Get(row, j+1)
	}
	return out
}

func (dict *SimplexDictionary) dotRowA(row int, v []bigrational.Rational) bigrational.Rational {
	s := bigrational.Zero()
	for j := 0; j < dict.d; j++ {
		s = s.Add(dict.h.Get(row, j+1).Mul(v[j]))
	}
	return s
}

func (dict *SimplexDictionary) binvCol(l int) []bigrational.Rational {
	out := make([]bigrational.Rational, dict.d)
	for i := 0; i < dict.d; i++ {
		out[i] = dict.binv.Get(i, l)
	}
	return out
}

// ChildrenBases returns every basis reachable from this one by replacing
// a single basis row B[l] with a nonbasic row e, subject to: (1) e's
// pivot column u = B^-1 column l has a.e . u < 0, and (2) every other
// nonbasic row's slack stays nonnegative under the implied step. The
// result is sorted lexicographically; it is the neighbour set reverse
// search walks, not a ratio-test minimization.
func (dict *SimplexDictionary) ChildrenBases() []polyhedron.Basis {
	var out []polyhedron.Basis
	for e := 0; e < dict.m; e++ {
		if dict.basis.Contains(e) {
			continue
		}
		se := dict.Slack(e)
		for l := 0; l < dict.d; l++ {
			u := dict.binvCol(l)
			denom := dict.dotRowA(e, u)
			if denom.Sign() >= 0 {
				continue
			}
			ok := true
			for j := 0; j < dict.m; j++ {
				if j == e || dict.basis.Contains(j) {
					continue
				}
				ajU := dict.dotRowA(j, u)
				ajdx, _ := ajU.Neg().Div(denom)
				val := dict.Slack(j).Add(se.Mul(ajdx))
				if val.Sign() < 0 {
					ok = false
					break
				}
			}
			if ok {
				nb := dict.basis.Clone()
				nb[l] = e
				out = append(out, polyhedron.Sorted(nb))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// ParentBasis returns the lex-smallest neighbour strictly less than this
// basis, or ok=false if this basis is the arborescence root (no neighbour
// precedes it).
func (dict *SimplexDictionary) ParentBasis() (polyhedron.Basis, bool) {
	var best polyhedron.Basis
	for _, nb := range dict.ChildrenBases() {
		if polyhedron.Compare(nb, dict.basis) < 0 {
			if best == nil || polyhedron.Compare(nb, best) < 0 {
				best = nb
			}
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// RayDirections returns the canonicalized direction vectors of every
// extreme ray incident to this vertex. For each basis position l, the
// edge that relaxes row basis[l] while holding every other basic row
// exactly tight runs in direction dx = B^-1 column l (the same u
// ChildrenBases pivots against): by construction a_(basis[i]).dx is 1
// for i==l and 0 for every other basis row, so dx is an edge direction
// leaving the vertex. It is a ray rather than a bounded edge to a
// neighbouring vertex precisely when no other row ever turns tight
// against it, i.e. every nonbasic row's coefficient on dx is
// nonnegative (slack can only grow, never hit zero, as you walk the
// edge). This also covers the case m == d, where every row is in the
// unique basis and there is no nonbasic row to pivot against at all: a
// simplicial cone's extreme rays are exactly these d relaxed-row edges.
// The caller prepends the leading 0 when emitting a V-row.
func (dict *SimplexDictionary) RayDirections() [][]bigrational.Rational {
	var rays [][]bigrational.Rational
	for l := 0; l < dict.d; l++ {
		dx := dict.binvCol(l)
		feasible := true
		for j := 0; j < dict.m; j++ {
			if dict.basis.Contains(j) {
				continue
			}
			if dict.dotRowA(j, dx).Sign() < 0 {
				feasible = false
				break
			}
		}
		if feasible {
			rays = append(rays, bigrational.CanonicalizeIntegerRay(dx))
		}
	}
	return rays
}

// leavingFor runs the lex ratio test for entering row e: among basis
// positions i with delta_i = a_(B[i]) . dx > 0 (dx = B^-1 . (-a_e)), it
// picks the position minimizing (t_i, B^-1 row i) lexicographically,
// where t_i = slack(e) / delta_i, breaking ties by the smaller basis row
// index. ok=false means e's direction is unbounded against the current
// basis: no row can leave.
func (dict *SimplexDictionary) leavingFor(e int) (pos int, ok bool) {
	negAe := negate(dict.rowA(e))
	dx := matVec(dict.binv, negAe)
	se := dict.Slack(e)

	leave := -1
	var bestLex []bigrational.Rational
	for i := 0; i < dict.d; i++ {
		r := dict.basis[i]
		delta := dict.dotRowA(r, dx)
		if delta.Sign() <= 0 {
			continue
		}
		t, _ := se.Div(delta)
		cand := append([]bigrational.Rational{t}, dict.binv.Row(i)...)
		if bestLex == nil {
			bestLex, leave = cand, i
			continue
		}
		switch lexCompare(cand, bestLex) {
		case -1:
			bestLex, leave = cand, i
		case 0:
			if r < dict.basis[leave] {
				bestLex, leave = cand, i
			}
		}
	}
	if leave == -1 {
		return 0, false
	}
	return leave, true
}

func lexCompare(a, b []bigrational.Rational) int {
	for i := range a {
		c := a[i].Compare(b[i])
		if c != 0 {
			return c
		}
	}
	return 0
}

func negate(v []bigrational.Rational) []bigrational.Rational {
	out := make([]bigrational.Rational, len(v))
	for i, c := range v {
		out[i] = c.Neg()
	}
	return out
}

func matVec(m *densematrix.Matrix, v []bigrational.Rational) []bigrational.Rational {
	out := make([]bigrational.Rational, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		s := bigrational.Zero()
		for j := 0; j < m.Cols(); j++ {
			s = s.Add(m.Get(i, j).Mul(v[j]))
		}
		out[i] = s
	}
	return out
}
