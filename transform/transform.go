// Package transform holds the optional H-representation passes the driver
// can run before handing a polyhedron to the enumerator: eliminating rows
// by linearity, Fourier-Motzkin elimination, column projection, and
// redundancy removal. All five are no-ops in this repository, grounded on
// Transforms.applyAll's own TODO-stub methods in the original source, but
// are wired into cmd/lrsgo's pipeline so enabling one later is a one-
// function change rather than a new call site.
package transform

import "q.log/lrsgo/polyhedron"

// MarkLinearity marks the given H-rows as equalities. A no-op: the rows
// are returned unchanged.
func MarkLinearity(h *polyhedron.H, rows []int) *polyhedron.H {
	return h
}

// Eliminate removes the given columns by Fourier-Motzkin elimination. A
// no-op: h is returned unchanged.
func Eliminate(h *polyhedron.H, cols []int) *polyhedron.H {
	return h
}

// Project keeps only the given columns. A no-op: h is returned unchanged.
func Project(h *polyhedron.H, keep []int) *polyhedron.H {
	return h
}

// Redund removes rows that are implied by the others. A no-op: h is
// returned unchanged.
func Redund(h *polyhedron.H) *polyhedron.H {
	return h
}

// MinRep detects hidden linearities and removes redundant rows to produce
// a minimal representation. A no-op: h is returned unchanged.
func MinRep(h *polyhedron.H) *polyhedron.H {
	return h
}
