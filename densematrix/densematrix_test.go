package densematrix

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"q.log/lrsgo/bigrational"
)

func TestNewZeroFilled(t *testing.T) {
	m := New(2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			assert.True(t, m.Get(r, c).IsZero())
		}
	}
}

func TestGetSet(t *testing.T) {
	m := New(2, 2)
	m.Set(0, 1, bigrational.MustNew(3, 4))
	assert.True(t, m.Get(0, 1).Equals(bigrational.MustNew(3, 4)))
	assert.True(t, m.Get(1, 0).IsZero())
}

func TestIndexFaultPanics(t *testing.T) {
	m := New(2, 2)
	assert.Panics(t, func() { m.Get(2, 0) })
	assert.Panics(t, func() { m.Set(-1, 0, bigrational.Zero()) })
}

func TestRowColCopiesAreOwned(t *testing.T) {
	m := New(2, 2)
	m.Set(0, 0, bigrational.MustNew(1, 1))
	row := m.Row(0)
	row[0] = bigrational.MustNew(99, 1)
	assert.True(t, m.Get(0, 0).Equals(bigrational.MustNew(1, 1)))

	col := m.Col(0)
	col[0] = bigrational.MustNew(99, 1)
	assert.True(t, m.Get(0, 0).Equals(bigrational.MustNew(1, 1)))
}

func TestCloneIsIndependent(t *testing.T) {
	m := New(1, 1)
	m.Set(0, 0, bigrational.MustNew(5, 1))
	c := m.Clone()
	c.Set(0, 0, bigrational.MustNew(6, 1))
	assert.True(t, m.Get(0, 0).Equals(bigrational.MustNew(5, 1)))
	assert.True(t, c.Get(0, 0).Equals(bigrational.MustNew(6, 1)))
}

func TestApprox(t *testing.T) {
	m := New(1, 2)
	m.Set(0, 0, bigrational.MustNew(1, 2))
	m.Set(0, 1, bigrational.MustNew(-3, 1))
	a := m.Approx()
	assert.InDelta(t, 0.5, a.At(0, 0), 1e-12)
	assert.InDelta(t, -3.0, a.At(0, 1), 1e-12)
}
