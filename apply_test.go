// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests in this file cross-check the apply engine against explicit truth
// tables. With 4 variables a Boolean function is a 16 bit mask indexed by
// assignments, so every connective can be checked exhaustively with bitwise
// arithmetic on the masks.

const tnvars = 4

const tmask = uint32(1)<<(1<<tnvars) - 1

// assign expands a bitmask into a variable assignment; bit k gives the value
// of variable k.
func assign(m uint32) []bool {
	res := make([]bool, tnvars)
	for k := range res {
		res[k] = m&(1<<k) != 0
	}
	return res
}

// truthtable evaluates e on every assignment; bit m of the result is the
// value of e under assign(m).
func truthtable(b *BDD, e Edge) uint32 {
	var res uint32
	for m := uint32(0); m < 1<<tnvars; m++ {
		if b.Eval(e, assign(m)) {
			res |= 1 << m
		}
	}
	return res
}

// buildtable builds the diagram of an arbitrary truth table, as a
// disjunction of minterms.
func buildtable(b *BDD, table uint32) (Edge, error) {
	res := b.False()
	for m := uint32(0); m < 1<<tnvars; m++ {
		if table&(1<<m) == 0 {
			continue
		}
		term := b.True()
		var err error
		for k := 0; k < tnvars; k++ {
			lit := b.Ithvar(k)
			if m&(1<<k) == 0 {
				lit = b.NIthvar(k)
			}
			if term, err = b.And(term, lit); err != nil {
				return Edge{}, err
			}
		}
		if res, err = b.Or(res, term); err != nil {
			return Edge{}, err
		}
	}
	return res, nil
}

func tableBDD(t *testing.T, b *BDD, table uint32) Edge {
	t.Helper()
	res, err := buildtable(b, table)
	require.NoError(t, err)
	return res
}

func TestBinaryConnectives(t *testing.T) {
	b, err := New(tnvars)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		tf, tg, th := rng.Uint32()&tmask, rng.Uint32()&tmask, rng.Uint32()&tmask
		f, g, h := tableBDD(t, b, tf), tableBDD(t, b, tg), tableBDD(t, b, th)

		and, err := b.And(f, g)
		require.NoError(t, err)
		require.Equal(t, tf&tg, truthtable(b, and))
		// applying twice yields the same tagged edge
		and2, err := b.And(f, g)
		require.NoError(t, err)
		require.Equal(t, and, and2)

		or, err := b.Or(f, g)
		require.NoError(t, err)
		require.Equal(t, tf|tg, truthtable(b, or))

		xor, err := b.Xor(f, g)
		require.NoError(t, err)
		require.Equal(t, tf^tg, truthtable(b, xor))

		imp, err := b.Imp(f, g)
		require.NoError(t, err)
		require.Equal(t, (^tf|tg)&tmask, truthtable(b, imp))

		equiv, err := b.Equiv(f, g)
		require.NoError(t, err)
		require.Equal(t, ^(tf^tg)&tmask, truthtable(b, equiv))

		nand, err := b.Nand(f, g)
		require.NoError(t, err)
		require.Equal(t, ^(tf&tg)&tmask, truthtable(b, nand))

		diff, err := b.Diff(f, g)
		require.NoError(t, err)
		require.Equal(t, tf&^tg, truthtable(b, diff))

		ite, err := b.Ite(f, g, h)
		require.NoError(t, err)
		require.Equal(t, (tf&tg)|(^tf&th)&tmask, truthtable(b, ite))

		// canonicity: building the same function along a completely
		// different path must return the same tagged edge
		require.True(t, b.Equal(and, tableBDD(t, b, tf&tg)))
		require.True(t, b.Equal(xor, tableBDD(t, b, tf^tg)))
		require.True(t, b.Equal(b.Not(f), tableBDD(t, b, ^tf&tmask)))
	}
}

func TestShortcuts(t *testing.T) {
	b, err := New(tnvars)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))
	check := func(expected Edge, actual Edge, err error) {
		t.Helper()
		require.NoError(t, err)
		require.True(t, b.Equal(expected, actual))
	}
	for i := 0; i < 50; i++ {
		f := tableBDD(t, b, rng.Uint32()&tmask)
		g := tableBDD(t, b, rng.Uint32()&tmask)
		h := tableBDD(t, b, rng.Uint32()&tmask)

		res, err := b.And(f, f)
		check(f, res, err)
		res, err = b.And(f, b.Not(f))
		check(b.False(), res, err)
		res, err = b.And(f, b.True())
		check(f, res, err)
		res, err = b.And(f, b.False())
		check(b.False(), res, err)

		res, err = b.Xor(f, f)
		check(b.False(), res, err)
		res, err = b.Xor(f, b.Not(f))
		check(b.True(), res, err)
		res, err = b.Xor(f, b.False())
		check(f, res, err)
		res, err = b.Xor(f, b.True())
		check(b.Not(f), res, err)

		res, err = b.Or(f, b.Not(f))
		check(b.True(), res, err)

		res, err = b.Ite(b.True(), g, h)
		check(g, res, err)
		res, err = b.Ite(b.False(), g, h)
		check(h, res, err)
		res, err = b.Ite(f, g, g)
		check(g, res, err)
		res, err = b.Ite(f, f, h)
		or, oerr := b.Or(f, h)
		require.NoError(t, oerr)
		check(or, res, err)
	}
}

func TestCommutativity(t *testing.T) {
	b, err := New(tnvars)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		f := tableBDD(t, b, rng.Uint32()&tmask)
		g := tableBDD(t, b, rng.Uint32()&tmask)
		fg, err := b.And(f, g)
		require.NoError(t, err)
		gf, err := b.And(g, f)
		require.NoError(t, err)
		require.True(t, b.Equal(fg, gf))
		fg, err = b.Xor(f, g)
		require.NoError(t, err)
		gf, err = b.Xor(g, f)
		require.NoError(t, err)
		require.True(t, b.Equal(fg, gf))
	}
}

// TestIteNode checks the exact shape of the diagram for ite(x0, x1, x2): a
// single new node, testing x0, whose cofactors are the operand variables.
func TestIteNode(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	before := b.Allocated()
	res, err := b.Ite(b.Ithvar(0), b.Ithvar(1), b.Ithvar(2))
	require.NoError(t, err)
	require.Equal(t, before+1, b.Allocated())
	require.Equal(t, 0, b.Label(res))
	require.Equal(t, None, res.Tag())
	require.True(t, b.Equal(b.Ithvar(1), b.High(res)))
	require.True(t, b.Equal(b.Ithvar(2), b.Low(res)))
	// one node per variable plus the terminal
	count := 0
	err = b.Allnodes(func(id, level int, th, el Edge) error {
		count++
		return nil
	}, res)
	require.NoError(t, err)
	require.Equal(t, 4, count)
	// xor of an edge with itself resolves by shortcut, without recursion and
	// without touching the cache
	stats := b.OperatorStats()[OPxor]
	zero, err := b.Xor(res, res)
	require.NoError(t, err)
	require.True(t, b.Equal(b.False(), zero))
	require.Equal(t, stats.Terminal+1, b.OperatorStats()[OPxor].Terminal)
	require.Equal(t, stats.CacheMiss, b.OperatorStats()[OPxor].CacheMiss)
}

func TestApplyPanics(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)
	require.Panics(t, func() { b.Apply(OPand, b.True()) })
	require.Panics(t, func() { b.Apply(OPite, b.True(), b.True()) })
	require.Panics(t, func() { b.Apply(Operator(12), b.True(), b.True()) })
	require.Panics(t, func() { b.Ithvar(2) })
	require.Panics(t, func() { b.NIthvar(-1) })
	require.Panics(t, func() { b.High(b.True()) })
	require.Panics(t, func() { b.Low(b.False()) })
}
