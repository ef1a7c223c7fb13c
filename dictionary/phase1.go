package dictionary

import (
	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/densematrix"
	"q.log/lrsgo/polyhedron"
)

// FindFeasibleBasis locates a starting basis for reverse search over h.
// It first tries the trivial basis (rows 0..d-1); if that is singular or
// infeasible it falls back to a textbook two-phase simplex, expressed in
// this package's row-index-basis terms: d artificial rows are appended,
// each a unit direction e_i with constant term 1 (so their basis is
// trivially B^-1 = I, vertex (-1,...,-1)), and the loop repeatedly brings
// in the first original row with negative slack, via the dictionary's own
// lex ratio test, until every original row is nonnegative. A basis row
// still artificial at that point gives ErrDegenerateInfeasibility. An
// entering row for which no basis row passes the ratio test gives
// ErrInfeasible. Neither error proves that h has no feasible point.
func FindFeasibleBasis(h *polyhedron.H) (polyhedron.Basis, error) {
	m, d := h.Rows(), h.Dim()

	trivial := polyhedron.Sorted(firstIndices(d))
	if dict, err := New(h.M, trivial); err == nil {
		if allNonNegative(dict, m) {
			return trivial, nil
		}
	}

	aug := augment(h.M, m, d)
	basis := polyhedron.Sorted(artificialIndices(m, d))

	for {
		dict, err := New(aug, basis)
		if err != nil {
			return nil, ErrDegenerateInfeasibility
		}

		enter := -1
		for i := 0; i < m; i++ {
			if basis.Contains(i) {
				continue
			}
			if dict.Slack(i).Sign() < 0 {
				enter = i
				break
			}
		}
		if enter == -1 {
			for _, r := range basis {
				if r >= m {
					return nil, ErrDegenerateInfeasibility
				}
			}
			return basis, nil
		}

		leavePos, ok := dict.leavingFor(enter)
		if !ok {
			return nil, ErrInfeasible
		}
		next := basis.Clone()
		next[leavePos] = enter
		basis = polyhedron.Sorted(next)
	}
}

func firstIndices(d int) []int {
	out := make([]int, d)
	for i := range out {
		out[i] = i
	}
	return out
}

func artificialIndices(m, d int) []int {
	out := make([]int, d)
	for i := range out {
		out[i] = m + i
	}
	return out
}

func allNonNegative(dict *SimplexDictionary, m int) bool {
	for i := 0; i < m; i++ {
		if dict.Slack(i).Sign() < 0 {
			return false
		}
	}
	return true
}

// augment appends d artificial rows [1 | e_i] to h, giving an (m+d) x
// (d+1) matrix whose last d rows form the identity in the a-columns.
func augment(h *densematrix.Matrix, m, d int) *densematrix.Matrix {
	out := densematrix.New(m+d, d+1)
	one := bigrational.One()
	zero := bigrational.Zero()
	for i := 0; i < m; i++ {
		for j := 0; j < d+1; j++ {
			out.Set(i, j, h.Get(i, j))
		}
	}
	for i := 0; i < d; i++ {
		out.Set(m+i, 0, one)
		for j := 0; j < d; j++ {
			if j == i {
				out.Set(m+i, j+1, one)
			} else {
				out.Set(m+i, j+1, zero)
			}
		}
	}
	return out
}
