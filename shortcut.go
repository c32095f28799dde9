// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import "sync/atomic"

// Terminal cases for the binary operators. A shortcut resolves an operation
// in constant time from structural identity (same node modulo sign) or from
// a terminal operand, without descending into the children. These paths are
// hit very often in practice, on shared sub-DAGs and absorbing elements, and
// they keep whole subgraphs out of the apply recursion.

// terminalAnd resolves f & g without recursion when possible.
func (b *BDD) terminalAnd(f, g Edge) (Edge, bool) {
	if f.untagged() == g.untagged() {
		// f & f = f and f & !f = false
		if f.tag == g.tag {
			return g, true
		}
		return bddzero, true
	}
	if f.isconst() {
		// false is absorbing, true is neutral
		if f.tag == Complemented {
			return bddzero, true
		}
		return g, true
	}
	if g.isconst() {
		if g.tag == Complemented {
			return bddzero, true
		}
		return f, true
	}
	return Edge{}, false
}

// terminalXor resolves f ^ g without recursion when possible.
func (b *BDD) terminalXor(f, g Edge) (Edge, bool) {
	if f.untagged() == g.untagged() {
		// f ^ f = false and f ^ !f = true
		if f.tag == g.tag {
			return bddzero, true
		}
		return bddone, true
	}
	if f.isconst() {
		// xor with true is negation, xor with false is identity
		return g.NotIf(f.tag == None), true
	}
	if g.isconst() {
		return f.NotIf(g.tag == None), true
	}
	return Edge{}, false
}

// shortcut records a terminal-case hit for op and returns the resolved edge.
func (b *BDD) shortcut(op Operator, res Edge) (Edge, error) {
	atomic.AddUint64(&b.opstats[op].terminal, 1)
	return res, nil
}
