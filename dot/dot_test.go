// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package dot_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gobdd/ibdd"
	"github.com/gobdd/ibdd/dot"
)

func TestWriteProducesValidGraph(t *testing.T) {
	e, err := ibdd.New(2)
	require.NoError(t, err)
	f, err := e.And(e.Variable(1), e.NVariable(2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, e, f))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "digraph G {\n"))
	require.True(t, strings.HasSuffix(out, "}\n"))
	require.Contains(t, out, `label="1"`)
}
