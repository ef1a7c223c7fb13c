package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/densematrix"
	"q.log/lrsgo/polyhedron"
)

func sampleH() *polyhedron.H {
	m := densematrix.New(2, 2)
	m.Set(0, 0, bigrational.Zero())
	m.Set(0, 1, bigrational.One())
	m.Set(1, 0, bigrational.One())
	m.Set(1, 1, bigrational.FromInt64(-1))
	return polyhedron.NewH(m)
}

func TestStubsReturnInputUnchanged(t *testing.T) {
	h := sampleH()
	assert.Same(t, h, MarkLinearity(h, []int{0}))
	assert.Same(t, h, Eliminate(h, []int{1}))
	assert.Same(t, h, Project(h, []int{0}))
	assert.Same(t, h, Redund(h))
	assert.Same(t, h, MinRep(h))
}
