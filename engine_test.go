// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gobdd/ibdd"
)

func TestNewRejectsInvalidVarnum(t *testing.T) {
	_, err := ibdd.New(0)
	require.Error(t, err)

	_, err = ibdd.New(-1)
	require.Error(t, err)
}

func TestVariableOutOfRangePanics(t *testing.T) {
	e := newEngine(t, 2)
	require.Panics(t, func() { e.Variable(0) })
	require.Panics(t, func() { e.Variable(3) })
	require.Panics(t, func() { e.NVariable(3) })
}

func TestVariableIsNegationOfNVariable(t *testing.T) {
	e := newEngine(t, 1)
	require.True(t, eq(t, e.Variable(1), e.Not(e.NVariable(1))))
}

func TestTrueFalseAreDistinctAndComplementary(t *testing.T) {
	e := newEngine(t, 1)
	require.False(t, eq(t, e.True(), e.False()))
	require.True(t, eq(t, e.Not(e.True()), e.False()))
}

func TestFromRoundTrips(t *testing.T) {
	e := newEngine(t, 1)
	require.True(t, eq(t, e.From(true), e.True()))
	require.True(t, eq(t, e.From(false), e.False()))
}

func TestClearResetsTables(t *testing.T) {
	e := newEngine(t, 2)
	x, y := e.Variable(1), e.Variable(2)
	_, err := e.And(x, y)
	require.NoError(t, err)

	require.NoError(t, e.Clear())

	stats := e.Stats()
	require.Equal(t, 2, stats.Varnum)
	require.Equal(t, 0, stats.CollectRuns)
}

func TestCountNodesOfConstantsIsJustTheLeaf(t *testing.T) {
	e := newEngine(t, 1)
	require.Equal(t, 1, e.CountNodes(e.True()))
	require.Equal(t, 1, e.CountNodes(e.False()))
}

func TestCountNodesOfSingleVariable(t *testing.T) {
	e := newEngine(t, 1)
	require.Equal(t, 2, e.CountNodes(e.Variable(1)))
}
