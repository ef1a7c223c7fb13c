package enumerate

import (
	"sort"

	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/densematrix"
	"q.log/lrsgo/linalg"
	"q.log/lrsgo/polyhedron"
)

type facetRecord struct {
	canon   []bigrational.Rational
	cobasis []int
}

// FromV enumerates the facets of the polyhedron whose lifted rows are v
// (vertices with leading 1, rays with leading 0), by testing every
// d-subset of rows for an affine normal. If v has fewer than d rows,
// there are not enough points to span a facet and the result is empty,
// per spec.md §4.7's contract.
func FromV(v *polyhedron.V) (*polyhedron.Result, error) {
	d := v.Dim()
	stats := &polyhedron.EnumStats{}

	if v.Rows() < d {
		return &polyhedron.Result{H: polyhedron.NewH(densematrix.New(0, d+1)), Stats: stats}, nil
	}

	seen := make(map[string]bool)
	var records []facetRecord

	for _, subset := range combinations(v.Rows(), d) {
		mat := densematrix.New(d, d+1)
		for i, r := range subset {
			mat.SetRow(i, v.M.Row(r))
		}

		normal, ok := linalg.Nullspace1(mat)
		if !ok {
			continue
		}

		h, ok := orient(v, normal)
		if !ok {
			continue
		}
		stats.Bases++
		canon := canonicalizeFacet(h)

		key := vecKey(canon)
		if seen[key] {
			continue
		}
		seen[key] = true

		tight := tightVertices(v, canon)
		cobasis := lexMinAffineIndependent(v, tight, d)

		records = append(records, facetRecord{canon: canon, cobasis: cobasis})
		stats.Facets++
	}

	sort.SliceStable(records, func(i, j int) bool { return facetLess(records[i], records[j]) })

	hm := densematrix.New(len(records), d+1)
	for i, rec := range records {
		hm.SetRow(i, rec.canon)
		if i == len(records)-1 {
			stats.LastCobasis = rec.cobasis
		}
	}

	return &polyhedron.Result{H: polyhedron.NewH(hm), Stats: stats}, nil
}

// orient flips normal's sign if needed so it holds as b0+a.x>=0 on every
// vertex and a.r>=0 on every ray; ok=false if neither orientation holds.
func orient(v *polyhedron.V, normal []bigrational.Rational) (h []bigrational.Rational, ok bool) {
	if satisfiesAll(v, normal) {
		return normal, true
	}
	flipped := negateVec(normal)
	if satisfiesAll(v, flipped) {
		return flipped, true
	}
	return nil, false
}

func satisfiesAll(v *polyhedron.V, h []bigrational.Rational) bool {
	for i := 0; i < v.Rows(); i++ {
		if dot(h, v.M.Row(i)).Sign() < 0 {
			return false
		}
	}
	return true
}

// canonicalizeFacet divides h by the absolute value of its first nonzero
// coordinate, fixing the magnitude of any scalar multiple of h to a
// single representative while leaving the orientation orient chose
// intact (dividing by a signed value could flip every coordinate's sign
// back, undoing that choice).
func canonicalizeFacet(h []bigrational.Rational) []bigrational.Rational {
	first := -1
	for i, c := range h {
		if !c.IsZero() {
			first = i
			break
		}
	}
	if first == -1 {
		return h
	}
	divisor := h[first].Abs()
	out := make([]bigrational.Rational, len(h))
	for i, c := range h {
		out[i], _ = c.Div(divisor)
	}
	return out
}

// tightVertices returns the indices of every vertex row (leading 1) on
// which canon is tight (b0 + a.x == 0).
func tightVertices(v *polyhedron.V, canon []bigrational.Rational) []int {
	var out []int
	one := bigrational.One()
	for i := 0; i < v.Rows(); i++ {
		row := v.M.Row(i)
		if !row[0].Equals(one) {
			continue
		}
		if dot(canon, row).IsZero() {
			out = append(out, i)
		}
	}
	return out
}

// lexMinAffineIndependent returns the lex-first d-subset of tight (by
// input order) that is affinely independent: the rank of their [1|x]
// rows equals d. If fewer than d tight vertices exist, the facet is
// unbounded and every tight vertex is returned.
func lexMinAffineIndependent(v *polyhedron.V, tight []int, d int) []int {
	if len(tight) < d {
		return tight
	}
	for _, subset := range combinations(len(tight), d) {
		rows := make([]int, d)
		for i, j := range subset {
			rows[i] = tight[j]
		}
		mat := densematrix.New(d, d+1)
		for i, r := range rows {
			mat.SetRow(i, v.M.Row(r))
		}
		if linalg.Rank(mat) == d {
			return rows
		}
	}
	return tight
}

func facetLess(a, b facetRecord) bool {
	aOrigin := a.canon[0].IsZero()
	bOrigin := b.canon[0].IsZero()
	if aOrigin != bOrigin {
		return aOrigin
	}
	if c := compareIntSlices(a.cobasis, b.cobasis); c != 0 {
		return c < 0
	}
	return vecKey(a.canon) < vecKey(b.canon)
}

func compareIntSlices(a, b []int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func dot(a, b []bigrational.Rational) bigrational.Rational {
	s := bigrational.Zero()
	for i := range a {
		s = s.Add(a[i].Mul(b[i]))
	}
	return s
}

func negateVec(v []bigrational.Rational) []bigrational.Rational {
	out := make([]bigrational.Rational, len(v))
	for i, c := range v {
		out[i] = c.Neg()
	}
	return out
}
