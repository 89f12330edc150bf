// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package trace_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gobdd/ibdd"
	"github.com/gobdd/ibdd/trace"
)

const c17 = `MODULE c17
INPUT
  1gat,2gat,3gat,6gat,7gat;
OUTPUT
  22gat,23gat;
STRUCTURE
  10gat = nand(1gat, 3gat);
  11gat = nand(3gat, 6gat);
  16gat = nand(2gat, 11gat);
  19gat = nand(11gat, 7gat);
  22gat = nand(10gat, 16gat);
  23gat = nand(16gat, 19gat);
ENDMODULE
`

func TestParseC17(t *testing.T) {
	c, err := trace.Parse(strings.NewReader(c17))
	require.NoError(t, err)
	require.Equal(t, "c17", c.Name)
	require.Equal(t, []string{"1gat", "2gat", "3gat", "6gat", "7gat"}, c.Inputs)
	require.Equal(t, []string{"22gat", "23gat"}, c.Outputs)
	require.Len(t, c.Gates, 6)
	require.Equal(t, trace.Gate{Out: "10gat", Op: "nand", Args: []string{"1gat", "3gat"}}, c.Gates[0])
}

func TestBuildC17MatchesDirectSynthesis(t *testing.T) {
	c, err := trace.Parse(strings.NewReader(c17))
	require.NoError(t, err)

	e, err := ibdd.New(len(c.Inputs))
	require.NoError(t, err)

	edges, err := trace.Build(e, c)
	require.NoError(t, err)

	v1, v2, v3, v6, v7 := e.Variable(1), e.Variable(2), e.Variable(3), e.Variable(4), e.Variable(5)

	nand := func(a, b ibdd.Edge) ibdd.Edge {
		r, err := e.And(a, b)
		require.NoError(t, err)
		return e.Not(r)
	}

	n10 := nand(v1, v3)
	n11 := nand(v3, v6)
	n16 := nand(v2, n11)
	n19 := nand(n11, v7)
	n22 := nand(n10, n16)
	n23 := nand(n16, n19)

	require.True(t, *n22 == *edges["22gat"])
	require.True(t, *n23 == *edges["23gat"])
}
