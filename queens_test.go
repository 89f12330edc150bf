// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gobdd/ibdd"
)

// nqueens builds a BDD over an NxN board whose satisfying assignments
// are exactly the placements of N non-attacking queens, adapted from the
// teacher library's own nqueens_test.go stress test to this package's
// error-returning Boolean operators.
func nqueens(t *testing.T, n int) *big.Int {
	t.Helper()
	e, err := ibdd.New(n*n, ibdd.Nodesize(n*n*256), ibdd.Cachesize(n*n*64))
	require.NoError(t, err)

	must := func(v ibdd.Edge, err error) ibdd.Edge {
		require.NoError(t, err)
		return v
	}

	x := make([][]ibdd.Edge, n)
	for i := range x {
		x[i] = make([]ibdd.Edge, n)
		for j := range x[i] {
			x[i][j] = e.Variable(i*n + j + 1)
		}
	}

	queen := e.True()
	for i := 0; i < n; i++ {
		row := e.False()
		for j := 0; j < n; j++ {
			row = must(e.Or(row, x[i][j]))
		}
		queen = must(e.And(queen, row))
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := e.True()
			for k := 0; k < n; k++ {
				if k != j {
					a = must(e.And(a, must(e.Imp(x[i][j], e.Not(x[i][k])))))
				}
			}
			b := e.True()
			for k := 0; k < n; k++ {
				if k != i {
					b = must(e.And(b, must(e.Imp(x[i][j], e.Not(x[k][j])))))
				}
			}
			c := e.True()
			for k := 0; k < n; k++ {
				l := k - i + j
				if l >= 0 && l < n && k != i {
					c = must(e.And(c, must(e.Imp(x[i][j], e.Not(x[k][l])))))
				}
			}
			d := e.True()
			for k := 0; k < n; k++ {
				l := i + j - k
				if l >= 0 && l < n && k != i {
					d = must(e.And(d, must(e.Imp(x[i][j], e.Not(x[k][l])))))
				}
			}
			queen = must(e.And(queen, a))
			queen = must(e.And(queen, b))
			queen = must(e.And(queen, c))
			queen = must(e.And(queen, d))
		}
	}
	return e.SatCount(queen)
}

func TestNQueens(t *testing.T) {
	tests := []struct {
		n        int
		expected int64
	}{
		{4, 2},
		{5, 10},
		{6, 4},
	}
	for _, tt := range tests {
		got := nqueens(t, tt.n)
		require.Equalf(t, big.NewInt(tt.expected), got, "nqueens(%d)", tt.n)
	}
}
