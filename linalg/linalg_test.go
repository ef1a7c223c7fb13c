package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"q.log/lrsgo/bigrational"
	"q.log/lrsgo/densematrix"
)

func vec(vals ...int64) []bigrational.Rational {
	out := make([]bigrational.Rational, len(vals))
	for i, v := range vals {
		out[i] = bigrational.FromInt64(v)
	}
	return out
}

func matFrom(rows [][]int64) *densematrix.Matrix {
	m := densematrix.New(len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, bigrational.FromInt64(v))
		}
	}
	return m
}

func mul(a *densematrix.Matrix, x []bigrational.Rational) []bigrational.Rational {
	out := make([]bigrational.Rational, a.Rows())
	for i := 0; i < a.Rows(); i++ {
		s := bigrational.Zero()
		for j := 0; j < a.Cols(); j++ {
			s = s.Add(a.Get(i, j).Mul(x[j]))
		}
		out[i] = s
	}
	return out
}

func TestSolveBasic(t *testing.T) {
	a := matFrom([][]int64{{2, 1}, {1, 3}})
	b := vec(5, 10)
	x, ok := Solve(a, b)
	require.True(t, ok)
	got := mul(a, x)
	for i := range got {
		assert.True(t, got[i].Equals(b[i]))
	}
}

func TestSolveSingular(t *testing.T) {
	a := matFrom([][]int64{{1, 2}, {2, 4}})
	_, ok := Solve(a, vec(1, 2))
	assert.False(t, ok)
}

func TestInvertIdentityProperty(t *testing.T) {
	a := matFrom([][]int64{{4, 7}, {2, 6}})
	inv, ok := Invert(a)
	require.True(t, ok)

	n := a.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := bigrational.Zero()
			for k := 0; k < n; k++ {
				s = s.Add(inv.Get(i, k).Mul(a.Get(k, j)))
			}
			if i == j {
				assert.True(t, s.Equals(bigrational.One()))
			} else {
				assert.True(t, s.IsZero())
			}
		}
	}
}

func TestInvertSingular(t *testing.T) {
	a := matFrom([][]int64{{1, 2}, {2, 4}})
	_, ok := Invert(a)
	assert.False(t, ok)
}

func TestRank(t *testing.T) {
	assert.Equal(t, 2, Rank(matFrom([][]int64{{1, 0}, {0, 1}})))
	assert.Equal(t, 1, Rank(matFrom([][]int64{{1, 2}, {2, 4}})))
	assert.Equal(t, 0, Rank(matFrom([][]int64{{0, 0}, {0, 0}})))
}

func TestNullspace1(t *testing.T) {
	a := matFrom([][]int64{{1, -1, 0}, {0, 1, -1}})
	v, ok := Nullspace1(a)
	require.True(t, ok)

	zero := bigrational.Zero()
	for i := 0; i < a.Rows(); i++ {
		s := zero
		for j := 0; j < a.Cols(); j++ {
			s = s.Add(a.Get(i, j).Mul(v[j]))
		}
		assert.True(t, s.IsZero())
	}

	allZero := true
	for _, c := range v {
		if !c.IsZero() {
			allZero = false
		}
	}
	assert.False(t, allZero)
}

func TestNullspace1WrongDimension(t *testing.T) {
	// full rank square -> nullspace dimension 0
	a := matFrom([][]int64{{1, 0}, {0, 1}})
	_, ok := Nullspace1(a)
	assert.False(t, ok)

	// rank 1 with 3 columns -> nullspace dimension 2
	b := matFrom([][]int64{{1, 2, 3}})
	_, ok = Nullspace1(b)
	assert.False(t, ok)
}
