// Package linalg implements exact Gauss-Jordan linear algebra over
// densematrix.Matrix: solve, invert, a rank-1 nullspace, and rank. All
// four are stateless, deterministic, and never touch floating point.
package linalg

import (
	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/densematrix"
)

// Solve returns x solving A x = b for an n x n A, or ok=false if A is
// singular or the system is inconsistent (a zero row with nonzero RHS
// survives elimination).
func Solve(a *densematrix.Matrix, b []bigrational.Rational) (x []bigrational.Rational, ok bool) {
	n := a.Rows()
	if a.Cols() != n || len(b) != n {
		return nil, false
	}
	aug := densematrix.New(n, n+1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug.Set(i, j, a.Get(i, j))
		}
		aug.Set(i, n, b[i])
	}

	colPerm, ok := reduceFullPivot(aug, n, n+1)
	if !ok {
		return nil, false
	}

	// inconsistency check: a zero row (across the A-part) with nonzero RHS
	for i := 0; i < n; i++ {
		allZero := true
		for j := 0; j < n; j++ {
			if !aug.Get(i, j).IsZero() {
				allZero = false
				break
			}
		}
		if allZero && !aug.Get(i, n).IsZero() {
			return nil, false
		}
	}

	x = make([]bigrational.Rational, n)
	for i := 0; i < n; i++ {
		x[colPerm[i]] = aug.Get(i, n)
	}
	return x, true
}

// Invert returns A^-1 for an n x n A, or ok=false if A is singular.
func Invert(a *densematrix.Matrix) (inv *densematrix.Matrix, ok bool) {
	n := a.Rows()
	if a.Cols() != n {
		return nil, false
	}
	aug := densematrix.New(n, 2*n)
	one := bigrational.One()
	zero := bigrational.Zero()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug.Set(i, j, a.Get(i, j))
		}
		for j := 0; j < n; j++ {
			if i == j {
				aug.Set(i, n+j, one)
			} else {
				aug.Set(i, n+j, zero)
			}
		}
	}

	colPerm, ok := reduceFullPivot(aug, n, 2*n)
	if !ok {
		return nil, false
	}

	inv = densematrix.New(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			inv.Set(colPerm[i], j, aug.Get(i, n+j))
		}
	}
	return inv, true
}

// Nullspace1 returns a nonzero v with A v = 0 when A's nullspace has
// dimension exactly 1; ok=false otherwise (including nullspace dimension
// 0, which cannot happen for a non-square system with more columns than
// independent rows, or dimension > 1).
func Nullspace1(a *densematrix.Matrix) (v []bigrational.Rational, ok bool) {
	r, n := a.Rows(), a.Cols()
	m := a.Clone()
	zero := bigrational.Zero()
	one := bigrational.One()

	lead := make([]int, r)
	for i := range lead {
		lead[i] = -1
	}

	row := 0
	for col := 0; col < n && row < r; col++ {
		piv := row
		for piv < r && m.Get(piv, col).IsZero() {
			piv++
		}
		if piv == r {
			continue
		}
		if piv != row {
			swapRows(m, piv, row)
		}
		diag := m.Get(row, col)
		for j := col; j < n; j++ {
			v, _ := m.Get(row, j).Div(diag)
			m.Set(row, j, v)
		}
		for i := 0; i < r; i++ {
			if i == row {
				continue
			}
			f := m.Get(i, col)
			if !f.IsZero() {
				for j := col; j < n; j++ {
					m.Set(i, j, m.Get(i, j).Sub(f.Mul(m.Get(row, j))))
				}
			}
		}
		lead[row] = col
		row++
	}

	rank := 0
	for i := 0; i < r; i++ {
		if lead[i] != -1 {
			rank++
		}
	}
	if n-rank != 1 {
		return nil, false
	}

	isPivot := make([]bool, n)
	for i := 0; i < r; i++ {
		if lead[i] >= 0 {
			isPivot[lead[i]] = true
		}
	}
	free := -1
	for j := n - 1; j >= 0; j-- {
		if !isPivot[j] {
			free = j
			break
		}
	}
	if free == -1 {
		return nil, false
	}

	x := make([]bigrational.Rational, n)
	for j := range x {
		x[j] = zero
	}
	x[free] = one
	for i := 0; i < r; i++ {
		if lead[i] != -1 {
			x[lead[i]] = zero.Sub(m.Get(i, free))
		}
	}
	return x, true
}

// Rank returns the rank of A over the rationals.
func Rank(a *densematrix.Matrix) int {
	r, c := a.Rows(), a.Cols()
	m := a.Clone()
	row := 0
	for col := 0; col < c && row < r; col++ {
		piv := row
		for piv < r && m.Get(piv, col).IsZero() {
			piv++
		}
		if piv == r {
			continue
		}
		if piv != row {
			swapRows(m, piv, row)
		}
		diag := m.Get(row, col)
		for j := col; j < c; j++ {
			v, _ := m.Get(row, j).Div(diag)
			m.Set(row, j, v)
		}
		for i := 0; i < r; i++ {
			if i == row {
				continue
			}
			f := m.Get(i, col)
			if !f.IsZero() {
				for j := col; j < c; j++ {
					m.Set(i, j, m.Get(i, j).Sub(f.Mul(m.Get(row, j))))
				}
			}
		}
		row++
	}
	return row
}

// reduceFullPivot row-reduces m (rows x cols, with the first `square`
// columns treated as the coefficient block) to reduced row-echelon form
// via full pivoting, tracking the column permutation it applies to the
// coefficient block. Reports ok=false if the coefficient block is
// singular.
func reduceFullPivot(m *densematrix.Matrix, square, cols int) (colPerm []int, ok bool) {
	colPerm = make([]int, square)
	for j := range colPerm {
		colPerm[j] = j
	}

	for k := 0; k < square; k++ {
		pivRow, pivCol := -1, -1
	search:
		for i := k; i < square; i++ {
			for j := k; j < square; j++ {
				if !m.Get(i, j).IsZero() {
					pivRow, pivCol = i, j
					break search
				}
			}
		}
		if pivRow == -1 {
			return nil, false
		}

		if pivRow != k {
			swapRows(m, pivRow, k)
		}
		if pivCol != k {
			swapCols(m, pivCol, k)
			colPerm[pivCol], colPerm[k] = colPerm[k], colPerm[pivCol]
		}

		diag := m.Get(k, k)
		for j := k; j < cols; j++ {
			v, _ := m.Get(k, j).Div(diag)
			m.Set(k, j, v)
		}
		for i := 0; i < square; i++ {
			if i == k {
				continue
			}
			f := m.Get(i, k)
			if !f.IsZero() {
				for j := k; j < cols; j++ {
					m.Set(i, j, m.Get(i, j).Sub(f.Mul(m.Get(k, j))))
				}
			}
		}
	}
	return colPerm, true
}

func swapRows(m *densematrix.Matrix, a, b int) {
	if a == b {
		return
	}
	ra := m.Row(a)
	rb := m.Row(b)
	m.SetRow(a, rb)
	m.SetRow(b, ra)
}

func swapCols(m *densematrix.Matrix, a, b int) {
	if a == b {
		return
	}
	for i := 0; i < m.Rows(); i++ {
		va, vb := m.Get(i, a), m.Get(i, b)
		m.Set(i, a, vb)
		m.Set(i, b, va)
	}
}
