//go:build glpk

// Package xcheck cross-checks the exact enumerator's answer against
// GLPK's floating-point simplex solver. It is diagnostic only: a mismatch
// is reported to the caller as a value, never as an error from the core,
// and the package is gated behind the "glpk" build tag since it pulls in
// a cgo dependency. Grounded on instance.Reader's GLPK construction
// primitives (glpk.New, SetMatRow, RowLB/RowUB), re-purposed here from
// MPS-file ingestion into building the equivalent LP directly from a
// *polyhedron.H plus a rational objective.
package xcheck

import (
	"fmt"
	"math/big"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"gonum.org/v1/gonum/mat"

	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/polyhedron"
)

// Mismatch describes a disagreement between GLPK's optimum and the exact
// optimum recovered by scanning the enumerated vertex set.
type Mismatch struct {
	Exact float64
	GLPK  float64
	Delta float64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("exact=%g glpk=%g delta=%g", m.Exact, m.GLPK, m.Delta)
}

// Epsilon is the maximum tolerated absolute difference between the exact
// and GLPK optima before CrossCheck reports a Mismatch.
const Epsilon = 1e-6

// CrossCheck builds the GLPK problem equivalent to maximizing c over h,
// solves it with GLPK's simplex, and compares the result to the exact
// optimum obtained by evaluating c at every vertex in v. It returns a
// non-nil *Mismatch when the two optima disagree by more than Epsilon.
func CrossCheck(h *polyhedron.H, v *polyhedron.V, c []bigrational.Rational) (*Mismatch, error) {
	exact, ok := exactOptimum(v, c)
	if !ok {
		return nil, fmt.Errorf("xcheck: no vertices to evaluate")
	}

	glpkOpt, err := glpkOptimum(h, c)
	if err != nil {
		return nil, err
	}

	delta := glpkOpt - exact
	if delta < 0 {
		delta = -delta
	}
	if delta > Epsilon {
		return &Mismatch{Exact: exact, GLPK: glpkOpt, Delta: delta}, nil
	}
	return nil, nil
}

func exactOptimum(v *polyhedron.V, c []bigrational.Rational) (float64, bool) {
	best := bigrational.Zero()
	have := false
	for i := 0; i < v.Rows(); i++ {
		row := v.M.Row(i)
		if !row[0].Equals(bigrational.One()) {
			continue // skip rays: no finite contribution to a bounded optimum
		}
		val := bigrational.Zero()
		for j, cj := range c {
			val = val.Add(cj.Mul(row[j+1]))
		}
		if !have || val.Compare(best) > 0 {
			best = val
			have = true
		}
	}
	if !have {
		return 0, false
	}
	return floatOf(best), true
}

func floatOf(r bigrational.Rational) float64 {
	num := new(big.Float).SetInt(r.Numerator())
	den := new(big.Float).SetInt(r.Denominator())
	q := new(big.Float).Quo(num, den)
	f, _ := q.Float64()
	return f
}

func glpkOptimum(h *polyhedron.H, c []bigrational.Rational) (float64, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	d := h.Dim()

	// Marshal the exact coefficients through a float64 mat.Dense boundary
	// before crossing into GLPK's C API, the same role model.Model.A/C
	// play in the teacher's own MPS-reading path.
	objRow := mat.NewDense(1, d, nil)
	for j := 0; j < d; j++ {
		objRow.Set(0, j, floatOf(c[j]))
	}
	coeffs := mat.NewDense(h.Rows(), d, nil)
	rhs := mat.NewDense(h.Rows(), 1, nil)
	for i := 0; i < h.Rows(); i++ {
		row := h.M.Row(i)
		for j := 0; j < d; j++ {
			coeffs.Set(i, j, floatOf(row[j+1]))
		}
		rhs.Set(i, 0, floatOf(row[0]))
	}

	lp := glpk.New()
	defer lp.Delete()
	lp.SetObjDir(glpk.MAX)

	lp.AddCols(d)
	for j := 0; j < d; j++ {
		lp.SetColBnds(j+1, glpk.FR, 0, 0)
		lp.SetObjCoef(j+1, objRow.At(0, j))
	}

	lp.AddRows(h.Rows())
	for i := 0; i < h.Rows(); i++ {
		idx := make([]int32, d)
		vals := coeffs.RawRowView(i)
		for j := 0; j < d; j++ {
			idx[j] = int32(j + 1)
		}
		lp.SetMatRow(i+1, idx, vals)
		// row encodes b + a.x >= 0, i.e. a.x >= -b
		lp.SetRowBnds(i+1, glpk.LO, -rhs.At(i, 0), 0)
	}

	parm := glpk.NewSimplexParm()
	if err := lp.Simplex(parm); err != nil {
		return 0, err
	}
	return lp.ObjVal(), nil
}
