// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import "sync/atomic"

// makenode applies the reduction rules to a candidate (level, then, else)
// triple and canonicalizes the outcome through the unique table. There are
// two rules:
//
//   - when both children are equal the test is useless and the then edge is
//     returned as is, without creating a node (counted as a "reduced" hit for
//     op);
//   - when the then edge carries a complement, the complement is pushed onto
//     the incoming edge by flipping the tags of both children, so that a
//     stored node never has a tagged then-child (invariant I1). A node and
//     its negation therefore share a single record.
//
// The only possible failure is ErrMemory from the unique table.
func (b *BDD) makenode(op Operator, level int32, then, els Edge) (Edge, error) {
	if then == els {
		atomic.AddUint64(&b.opstats[op].reduced, 1)
		return then, nil
	}
	tag := None
	if then.tag == Complemented {
		then = then.Not()
		els = els.Not()
		tag = Complemented
	}
	id, err := b.insert(level, then, els)
	if err != nil {
		return Edge{}, err
	}
	return Edge{id: id, tag: tag}, nil
}

// cofactor returns the i'th child edge (0 for then, 1 for else) of the node
// under e, with the tag of e composed onto it. The stored node is never
// mutated: a complemented incoming edge simply flips the tags of the
// children on the fly, which is how a single record serves both a function
// and its negation during traversal.
func (b *BDD) cofactor(e Edge, i int) Edge {
	n := &b.nodes[e.id]
	var c Edge
	if i == 0 {
		c = Edge{id: n.then, tag: None}
	} else {
		c = unpack(n.els)
	}
	return c.NotIf(e.tag == Complemented)
}

// cofactors returns the two child edges (then, else) of the node under e,
// with tags composed like in cofactor.
func (b *BDD) cofactors(e Edge) (Edge, Edge) {
	n := &b.nodes[e.id]
	t := Edge{id: n.then, tag: None}
	el := unpack(n.els)
	if e.tag == Complemented {
		return t.Not(), el.Not()
	}
	return t, el
}

// branches returns the cofactors of e at the decomposition level lvl.
// Operands whose own level is strictly greater do not test lvl and act as
// their own cofactor on both sides.
func (b *BDD) branches(e Edge, lvl int32) (Edge, Edge) {
	if e.isconst() || b.level(e) != lvl {
		return e, e
	}
	return b.cofactors(e)
}
