// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakesetScanset(t *testing.T) {
	b, err := New(6)
	require.NoError(t, err)
	for _, vs := range [][]int{{0}, {0, 2, 3}, {1, 4, 5}, {0, 1, 2, 3, 4, 5}} {
		cube, err := b.Makeset(vs)
		require.NoError(t, err)
		require.Equal(t, vs, b.Scanset(cube))
	}
	empty, err := b.Makeset(nil)
	require.NoError(t, err)
	require.True(t, b.Equal(b.True(), empty))
	require.Nil(t, b.Scanset(empty))
	require.Nil(t, b.Scanset(b.False()))
}

func TestSatcount(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)
	require.Equal(t, int64(16), b.Satcount(b.True()).Int64())
	require.Equal(t, int64(0), b.Satcount(b.False()).Int64())
	require.Equal(t, int64(8), b.Satcount(b.Ithvar(0)).Int64())
	require.Equal(t, int64(8), b.Satcount(b.NIthvar(3)).Int64())
	f, err := b.And(b.Ithvar(0), b.Ithvar(1))
	require.NoError(t, err)
	require.Equal(t, int64(4), b.Satcount(f).Int64())
	g, err := b.Or(b.Ithvar(0), b.Ithvar(1))
	require.NoError(t, err)
	require.Equal(t, int64(12), b.Satcount(g).Int64())
	// the number of satisfying assignments is the popcount of the table
	rng := rand.New(rand.NewSource(7))
	bt, err := New(tnvars)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		tf := rng.Uint32() & tmask
		h := tableBDD(t, bt, tf)
		count := 0
		for m := uint32(0); m < 1<<tnvars; m++ {
			if tf&(1<<m) != 0 {
				count++
			}
		}
		require.Equal(t, int64(count), bt.Satcount(h).Int64())
	}
}

// TestAllsat follows the shape of the bddtest program in the Buddy
// distribution: the disjunction of all the assignments reported by Allsat
// must rebuild the original function, and subtracting each of them from the
// function must leave nothing.
func TestAllsat(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)

	check := func(x Edge) {
		t.Helper()
		rest := x
		sum := b.False()
		err := b.Allsat(x, func(prof []int) error {
			term := b.True()
			var err error
			for k, v := range prof {
				switch v {
				case 0:
					term, err = b.And(term, b.NIthvar(k))
				case 1:
					term, err = b.And(term, b.Ithvar(k))
				}
				if err != nil {
					return err
				}
			}
			if sum, err = b.Or(sum, term); err != nil {
				return err
			}
			rest, err = b.Diff(rest, term)
			return err
		})
		require.NoError(t, err)
		require.True(t, b.Equal(sum, x), "Allsat sum differs from the initial BDD")
		require.True(t, b.Equal(rest, b.False()), "Allsat left some assignment out")
	}

	a, c := b.Ithvar(0), b.Ithvar(2)
	na, nb := b.NIthvar(0), b.NIthvar(1)

	check(b.True())
	check(b.False())
	for i := 0; i < 4; i++ {
		check(b.Ithvar(i))
		check(b.NIthvar(i))
	}
	f, err := b.And(a, b.Ithvar(1))
	require.NoError(t, err)
	g, err := b.And(na, nb)
	require.NoError(t, err)
	fg, err := b.Or(f, g)
	require.NoError(t, err)
	check(fg)
	h, err := b.Xor(c, b.Ithvar(3))
	require.NoError(t, err)
	check(h)

	rng := rand.New(rand.NewSource(8))
	set := b.True()
	for i := 0; i < 30; i++ {
		v := rng.Intn(4)
		lit := b.Ithvar(v)
		if rng.Intn(2) == 0 {
			lit = b.NIthvar(v)
		}
		if set, err = b.And(set, lit); err != nil {
			break
		}
		check(set)
	}
	require.NoError(t, err)
}

func TestAllnodes(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	f, err := b.And(b.Ithvar(0), b.Ithvar(1), b.Ithvar(2))
	require.NoError(t, err)
	// the cube has one node per level, plus the terminal
	count := 0
	err = b.Allnodes(func(id, level int, th, el Edge) error {
		count++
		return nil
	}, f)
	require.NoError(t, err)
	require.Equal(t, 4, count)
	// without roots we visit every active node: terminal, the three
	// variables, and the two inner nodes of the cube
	count = 0
	err = b.Allnodes(func(id, level int, th, el Edge) error {
		count++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, b.Allocated(), count)
}

func TestEval(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	f, err := b.Ite(b.Ithvar(0), b.Ithvar(1), b.Ithvar(2))
	require.NoError(t, err)
	require.True(t, b.Eval(f, []bool{true, true, false}))
	require.False(t, b.Eval(f, []bool{true, false, true}))
	require.True(t, b.Eval(f, []bool{false, false, true}))
	require.False(t, b.Eval(f, []bool{false, true, false}))
	// missing variables count as false
	require.False(t, b.Eval(f, []bool{true}))
	require.True(t, b.Eval(b.True(), nil))
}

func TestSatcountBig(t *testing.T) {
	// sanity check that counting does not overflow on wide managers
	b, err := New(80)
	require.NoError(t, err)
	expected := new(big.Int).Lsh(big.NewInt(1), 79)
	require.Equal(t, expected, b.Satcount(b.Ithvar(0)))
}
