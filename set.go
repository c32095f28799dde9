// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

// Derived connectives. None of these is a native operator: complement edges
// make negation free, so they all reduce to And/Xor plus tag flips and share
// the same apply cache entries as their duals.

// Or returns the logical 'or' of a sequence of edges.
func (b *BDD) Or(ns ...Edge) (Edge, error) {
	res := bddzero
	for _, n := range ns {
		var err error
		if res, err = b.opOr(res, n, 0); err != nil {
			return Edge{}, err
		}
	}
	return res, nil
}

// Imp returns the logical 'implication' between two edges.
func (b *BDD) Imp(f, g Edge) (Edge, error) {
	// f => g  =  !(f & !g)
	res, err := b.opAnd(f, g.Not(), 0)
	if err != nil {
		return Edge{}, err
	}
	return res.Not(), nil
}

// Equiv returns the logical 'bi-implication' between two edges.
func (b *BDD) Equiv(f, g Edge) (Edge, error) {
	// f <=> g  =  !(f ^ g)
	res, err := b.opXor(f, g, 0)
	if err != nil {
		return Edge{}, err
	}
	return res.Not(), nil
}

// Nand returns the negation of the conjunction of two edges.
func (b *BDD) Nand(f, g Edge) (Edge, error) {
	res, err := b.opAnd(f, g, 0)
	if err != nil {
		return Edge{}, err
	}
	return res.Not(), nil
}

// Diff returns the set difference f \ g, that is f & !g.
func (b *BDD) Diff(f, g Edge) (Edge, error) {
	return b.opAnd(f, g.Not(), 0)
}
