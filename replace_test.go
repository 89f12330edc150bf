// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplaceSwapsVariables(t *testing.T) {
	e := newEngine(t, 2)
	x, y := e.Variable(1), e.Variable(2)

	f, err := e.And(x, e.Not(y))
	require.NoError(t, err)

	r, err := e.NewReplacer(map[int]int{1: 2, 2: 1})
	require.NoError(t, err)

	got, err := e.Replace(f, r)
	require.NoError(t, err)

	want, err := e.And(y, e.Not(x))
	require.NoError(t, err)

	require.True(t, eq(t, got, want))
}

func TestReplaceIdentityIsNoop(t *testing.T) {
	e := newEngine(t, 3)
	x, y, z := e.Variable(1), e.Variable(2), e.Variable(3)

	or, err := e.Or(y, z)
	require.NoError(t, err)
	f, err := e.And(x, or)
	require.NoError(t, err)

	r, err := e.NewReplacer(map[int]int{1: 1})
	require.NoError(t, err)

	got, err := e.Replace(f, r)
	require.NoError(t, err)

	require.True(t, eq(t, got, f))
}

func TestReplaceRejectsOutOfRangeVariable(t *testing.T) {
	e := newEngine(t, 2)
	_, err := e.NewReplacer(map[int]int{1: 5})
	require.Error(t, err)
}
