// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagAlgebra(t *testing.T) {
	require.Equal(t, Complemented, None.Not())
	require.Equal(t, None, Complemented.Not())
	require.Equal(t, None, Complemented.Xor(Complemented))
	require.Equal(t, Complemented, None.Xor(Complemented))
	require.Equal(t, None, None.Xor(None))
}

func TestEdgeNot(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	x := b.Ithvar(1)
	require.Equal(t, x, x.Not().Not())
	require.Equal(t, b.NIthvar(1), b.Not(x))
	require.Equal(t, x.Not(), x.NotIf(true))
	require.Equal(t, x, x.NotIf(false))
	// negation is a tag flip on the same node
	require.Equal(t, x.untagged(), x.Not().untagged())
	require.True(t, b.Equal(b.False(), b.Not(b.True())))
}

func TestEdgePack(t *testing.T) {
	for _, e := range []Edge{bddone, bddzero, {id: 42, tag: None}, {id: 42, tag: Complemented}} {
		require.Equal(t, e, unpack(e.pack()))
	}
}

func TestEdgeString(t *testing.T) {
	require.Equal(t, "T", bddone.String())
	require.Equal(t, "F", bddzero.String())
	require.Equal(t, "!3", Edge{id: 3, tag: Complemented}.String())
	require.Equal(t, "3", Edge{id: 3, tag: None}.String())
}
