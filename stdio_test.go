// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	f, err := b.Ite(b.Ithvar(0), b.Ithvar(1), b.NIthvar(2))
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, b.Dot(&sb, f))
	out := sb.String()
	require.True(t, strings.HasPrefix(out, "digraph G {"))
	require.Contains(t, out, "T [shape=box")
	require.Contains(t, out, "f0 [shape=plaintext")
	// the else branch of the x2 node is a complement edge to the terminal
	require.Contains(t, out, "arrowhead=odot")
	require.Contains(t, out, "style=dotted")
}
