// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"fmt"
	"math/big"
)

// Makeset returns an edge corresponding to the conjunction (the cube) of all
// the variables in varset, in their positive form. It is such that
// Scanset(Makeset(a)) == a, up to ordering.
func (b *BDD) Makeset(varset []int) (Edge, error) {
	res := bddone
	for _, lvl := range varset {
		var err error
		if res, err = b.opAnd(res, b.Ithvar(lvl), 0); err != nil {
			return Edge{}, err
		}
	}
	return res, nil
}

// Scanset returns the set of variables (levels) found when following the
// non-false branch of a cube. This is the dual of function Makeset. The
// result is nil for a constant edge.
func (b *BDD) Scanset(e Edge) []int {
	if e.isconst() {
		return nil
	}
	res := []int{}
	for !e.isconst() {
		res = append(res, int(b.level(e)))
		e = b.nextvar(e)
	}
	return res
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by e. We return a result using arbitrary-precision
// arithmetic to avoid possible overflows.
func (b *BDD) Satcount(e Edge) *big.Int {
	// We compute 2^level with a bit shift 1 << level
	res := big.NewInt(0)
	res.SetBit(res, int(b.level(e)), 1)
	satc := make(map[Edge]*big.Int)
	return res.Mul(res, b.satcount(e, satc))
}

func (b *BDD) satcount(e Edge, satc map[Edge]*big.Int) *big.Int {
	if e == bddone {
		return big.NewInt(1)
	}
	if e == bddzero {
		return big.NewInt(0)
	}
	// we memoize the value of satcount for each tagged edge; a node and its
	// complement count differently
	if res, ok := satc[e]; ok {
		return res
	}
	lvl := b.level(e)
	t, el := b.cofactors(e)

	res := big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, int(b.level(el)-lvl-1), 1)
	res.Add(res, two.Mul(two, b.satcount(el, satc)))
	two = big.NewInt(0)
	two.SetBit(two, int(b.level(t)-lvl-1), 1)
	res.Add(res, two.Mul(two, b.satcount(t, satc)))
	satc[e] = res
	return res
}

// Allsat iterates through all legal variable assignments for e and calls the
// function f on each of them. We pass an int slice of length Varnum to f
// where each entry is either 0 if the variable is false, 1 if it is true,
// and -1 if it is a don't care. We stop and return an error if f returns an
// error at some point.
func (b *BDD) Allsat(e Edge, f func([]int) error) error {
	prof := make([]int, b.varnum)
	for k := range prof {
		prof[k] = -1
	}
	// the function does not create new nodes, so there is no possible
	// allocation failure
	return b.allsat(e, prof, f)
}

func (b *BDD) allsat(e Edge, prof []int, f func([]int) error) error {
	if e == bddzero {
		return nil
	}
	if e == bddone {
		return f(prof)
	}
	lvl := b.level(e)
	t, el := b.cofactors(e)

	if el != bddzero {
		prof[lvl] = 0
		for v := b.level(el) - 1; v > lvl; v-- {
			prof[v] = -1
		}
		if err := b.allsat(el, prof, f); err != nil {
			return err
		}
	}
	if t != bddzero {
		prof[lvl] = 1
		for v := b.level(t) - 1; v > lvl; v-- {
			prof[v] = -1
		}
		if err := b.allsat(t, prof, f); err != nil {
			return err
		}
	}
	prof[lvl] = -1
	return nil
}

// Allnodes applies function f over all the nodes accessible from the edges
// in the sequence roots, or over all the active nodes if roots is absent.
// The parameters to f are the index and level of the node, then its two
// children edges; the terminal is visited first with both children equal to
// the constant true. We stop the computation and return an error if f
// returns an error at some point.
//
// Like Reclaim, Allnodes must not run concurrently with apply operations.
func (b *BDD) Allnodes(f func(id, level int, t, e Edge) error, roots ...Edge) error {
	if err := f(int(terminal), int(b.varnum), bddone, bddone); err != nil {
		return err
	}
	next := min(b.next.Load(), int32(len(b.nodes)))
	if len(roots) == 0 {
		for id := int32(1); id < next; id++ {
			if b.nodes[id].then == -1 {
				continue
			}
			n := b.nodes[id]
			if err := f(int(id), int(n.level), Edge{id: n.then}, unpack(n.els)); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range roots {
		b.markrec(r.id)
	}
	var ferr error
	for id := int32(1); id < next; id++ {
		if !b.ismarked(id) {
			continue
		}
		b.unmarknode(id)
		if ferr == nil {
			n := b.nodes[id]
			ferr = f(int(id), int(n.level), Edge{id: n.then}, unpack(n.els))
		}
	}
	b.unmarknode(terminal)
	return ferr
}

// Eval returns the value of the function denoted by e under the given
// variable assignment. Missing entries (when assign is shorter than Varnum)
// count as false.
func (b *BDD) Eval(e Edge, assign []bool) bool {
	for !e.isconst() {
		t, el := b.cofactors(e)
		lvl := int(b.level(e))
		if lvl < len(assign) && assign[lvl] {
			e = t
		} else {
			e = el
		}
	}
	return e == bddone
}

// Print returns a one-line description of the node under e.
func (b *BDD) Print(e Edge) string {
	if e == bddone {
		return "True"
	}
	if e == bddzero {
		return "False"
	}
	t, el := b.cofactors(e)
	return fmt.Sprintf("(%v[%d] ? %v : %v)", e, b.level(e), t, el)
}
