// Package densematrix implements a dense two-dimensional container over
// bigrational.Rational, the substrate every core algorithm in this module
// builds on top of.
package densematrix

import (
	"fmt"
	"math/big"

	"gonum.org/v1/gonum/mat"

	"q.log/lrsgo/bigrational"
)

// Matrix is a dense r x c grid of bigrational.Rational, addressed by
// (row, col), both zero-based. Entries default to zero. Matrix is mutable:
// New returns an owned, independent value.
type Matrix struct {
	rows, cols int
	data       []bigrational.Rational
}

// New returns a rows x cols matrix with every entry set to zero.
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic("densematrix: negative dimensions")
	}
	data := make([]bigrational.Rational, rows*cols)
	z := bigrational.Zero()
	for i := range data {
		data[i] = z
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) index(r, c int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d matrix", ErrIndexFault, r, c, m.rows, m.cols))
	}
	return r*m.cols + c
}

// Get returns the entry at (row, col). Panics with ErrIndexFault if out of
// range.
func (m *Matrix) Get(row, col int) bigrational.Rational {
	return m.data[m.index(row, col)]
}

// Set stores value at (row, col). Panics with ErrIndexFault if out of
// range.
func (m *Matrix) Set(row, col int, value bigrational.Rational) {
	m.data[m.index(row, col)] = value
}

// Row returns an owned copy of row r.
func (m *Matrix) Row(r int) []bigrational.Rational {
	out := make([]bigrational.Rational, m.cols)
	for c := 0; c < m.cols; c++ {
		out[c] = m.Get(r, c)
	}
	return out
}

// Col returns an owned copy of column c.
func (m *Matrix) Col(c int) []bigrational.Rational {
	out := make([]bigrational.Rational, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.Get(r, c)
	}
	return out
}

// SetRow overwrites row r from vec, which must have length Cols().
func (m *Matrix) SetRow(r int, vec []bigrational.Rational) {
	if len(vec) != m.cols {
		panic(fmt.Errorf("%w: row length %d != %d", ErrIndexFault, len(vec), m.cols))
	}
	for c, v := range vec {
		m.Set(r, c, v)
	}
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]bigrational.Rational, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Approx returns a float64 snapshot of m for debug/log printing only (e.g.
// with mat.Formatted), the way the teacher's model.Model.PrintA/PrintB/
// PrintC print a *mat.Dense. Precision is lost; never read this back into
// exact arithmetic.
func (m *Matrix) Approx() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			v := m.Get(r, c)
			f, _ := new(big.Rat).SetFrac(v.Numerator(), v.Denominator()).Float64()
			d.Set(r, c, f)
		}
	}
	return d
}
