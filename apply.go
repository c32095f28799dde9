// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"fmt"
)

// The apply engine. Every operation follows the same strategy: try the
// operator's terminal-case shortcut, then the apply cache, and only then
// decompose on the smallest level among the operands, recurse on the two
// cofactor branches, and pass the pair through the reduction rules. Each call
// is a pure function of its operator and operands, so results can be memoized
// and the recursion can be forked (see fork in parallel.go) without changing
// the canonical outcome. The only possible failure is ErrMemory, which
// unwinds the enclosing call chain; subresults already canonicalized remain
// valid.

// Apply evaluates one of the native operators over its operands: two edges
// for OPand and OPxor, three for OPite, and a function followed by a cube of
// variables (see Makeset) for OPrestrict and the quantifications. It panics
// when called with the wrong number of operands.
func (b *BDD) Apply(op Operator, operands ...Edge) (Edge, error) {
	if op < 0 || int(op) >= _OPCOUNT || len(operands) != oparity[op] {
		panic(fmt.Sprintf("bcdd: wrong operands in call to Apply %s (%d operands)", op, len(operands)))
	}
	switch op {
	case OPand:
		return b.opAnd(operands[0], operands[1], 0)
	case OPxor:
		return b.opXor(operands[0], operands[1], 0)
	case OPite:
		return b.opIte(operands[0], operands[1], operands[2], 0)
	case OPrestrict:
		return b.opRestrict(operands[0], operands[1], 0)
	default:
		return b.opQuant(op, operands[0], operands[1], 0)
	}
}

// And returns the conjunction of a sequence of edges.
func (b *BDD) And(ns ...Edge) (Edge, error) {
	res := bddone
	for _, n := range ns {
		var err error
		if res, err = b.opAnd(res, n, 0); err != nil {
			return Edge{}, err
		}
	}
	return res, nil
}

// Xor returns the exclusive or of two edges.
func (b *BDD) Xor(f, g Edge) (Edge, error) {
	return b.opXor(f, g, 0)
}

// Ite computes the BDD for "if f then g else h", that is [(f & g) | (!f &
// h)], more efficiently than doing the operations separately.
func (b *BDD) Ite(f, g, h Edge) (Edge, error) {
	return b.opIte(f, g, h, 0)
}

// Exist returns the existential quantification of f for the variables in
// varset, where varset is a cube built with a method such as Makeset.
func (b *BDD) Exist(f, varset Edge) (Edge, error) {
	return b.opQuant(OPexist, f, varset, 0)
}

// Forall returns the universal quantification of f for the variables in
// varset.
func (b *BDD) Forall(f, varset Edge) (Edge, error) {
	return b.opQuant(OPforall, f, varset, 0)
}

// Unique returns the unique (parity) quantification of f for the variables
// in varset: branches are combined with xor instead of or, and a quantified
// variable outside the support of f yields the constant false.
func (b *BDD) Unique(f, varset Edge) (Edge, error) {
	return b.opQuant(OPunique, f, varset, 0)
}

// Restrict computes the restriction of f by the cube varset: every variable
// of the cube is fixed to true, or to false when the cube reaches the
// variable through a complemented then-branch (as built by NIthvar
// conjunctions).
func (b *BDD) Restrict(f, varset Edge) (Edge, error) {
	return b.opRestrict(f, varset, 0)
}

// ************************************************************

func (b *BDD) opAnd(f, g Edge, depth int32) (Edge, error) {
	if res, ok := b.terminalAnd(f, g); ok {
		return b.shortcut(OPand, res)
	}
	// And is commutative; normalizing the operand order doubles the cache
	// hit rate and makes the canonical result independent of it.
	if g.pack() < f.pack() {
		f, g = g, f
	}
	if res, ok := b.cache.get2(OPand, f, g); ok {
		b.cachehit(OPand)
		return res, nil
	}
	b.cachemiss(OPand)
	lvl := min(b.level(f), b.level(g))
	ft, fe := b.branches(f, lvl)
	gt, ge := b.branches(g, lvl)
	t, e, err := b.fork(depth,
		func() (Edge, error) { return b.opAnd(ft, gt, depth+1) },
		func() (Edge, error) { return b.opAnd(fe, ge, depth+1) })
	if err != nil {
		return Edge{}, err
	}
	res, err := b.makenode(OPand, lvl, t, e)
	if err != nil {
		return Edge{}, err
	}
	b.cache.put2(OPand, f, g, res)
	return res, nil
}

func (b *BDD) opXor(f, g Edge, depth int32) (Edge, error) {
	if res, ok := b.terminalXor(f, g); ok {
		return b.shortcut(OPxor, res)
	}
	// complements factor out of a xor: compute on untagged operands and put
	// the combined tag back on the result
	tag := f.tag.Xor(g.tag)
	f, g = f.untagged(), g.untagged()
	if g.pack() < f.pack() {
		f, g = g, f
	}
	if res, ok := b.cache.get2(OPxor, f, g); ok {
		b.cachehit(OPxor)
		return res.NotIf(tag == Complemented), nil
	}
	b.cachemiss(OPxor)
	lvl := min(b.level(f), b.level(g))
	ft, fe := b.branches(f, lvl)
	gt, ge := b.branches(g, lvl)
	t, e, err := b.fork(depth,
		func() (Edge, error) { return b.opXor(ft, gt, depth+1) },
		func() (Edge, error) { return b.opXor(fe, ge, depth+1) })
	if err != nil {
		return Edge{}, err
	}
	res, err := b.makenode(OPxor, lvl, t, e)
	if err != nil {
		return Edge{}, err
	}
	b.cache.put2(OPxor, f, g, res)
	return res.NotIf(tag == Complemented), nil
}

// opOr derives a disjunction from opAnd; with complement edges the extra
// negations are free.
func (b *BDD) opOr(f, g Edge, depth int32) (Edge, error) {
	res, err := b.opAnd(f.Not(), g.Not(), depth)
	if err != nil {
		return Edge{}, err
	}
	return res.Not(), nil
}

func (b *BDD) opIte(f, g, h Edge, depth int32) (Edge, error) {
	switch {
	case f == bddone:
		return b.shortcut(OPite, g)
	case f == bddzero:
		return b.shortcut(OPite, h)
	case g == h:
		return b.shortcut(OPite, g)
	case g == h.Not():
		// f ? g : !g  =  !(f ^ g)
		res, err := b.opXor(f, g, depth)
		if err != nil {
			return Edge{}, err
		}
		return res.Not(), nil
	case f == g:
		// f ? f : h  =  f | h
		return b.opOr(f, h, depth)
	case f == g.Not():
		// f ? !f : h  =  !f & h
		return b.opAnd(f.Not(), h, depth)
	case f == h:
		// f ? g : f  =  f & g
		return b.opAnd(f, g, depth)
	case f == h.Not():
		// f ? g : !f  =  !f | g
		return b.opOr(f.Not(), g, depth)
	}
	if g.isconst() {
		if g.tag == None {
			return b.opOr(f, h, depth)
		}
		return b.opAnd(f.Not(), h, depth)
	}
	if h.isconst() {
		if h.tag == None {
			return b.opOr(f.Not(), g, depth)
		}
		return b.opAnd(f, g, depth)
	}
	// ite(!f, g, h) = ite(f, h, g)
	if f.tag == Complemented {
		f = f.untagged()
		g, h = h, g
	}
	if res, ok := b.cache.get3(OPite, f, g, h); ok {
		b.cachehit(OPite)
		return res, nil
	}
	b.cachemiss(OPite)
	lvl := min(b.level(f), b.level(g), b.level(h))
	ft, fe := b.branches(f, lvl)
	gt, ge := b.branches(g, lvl)
	ht, he := b.branches(h, lvl)
	t, e, err := b.fork(depth,
		func() (Edge, error) { return b.opIte(ft, gt, ht, depth+1) },
		func() (Edge, error) { return b.opIte(fe, ge, he, depth+1) })
	if err != nil {
		return Edge{}, err
	}
	res, err := b.makenode(OPite, lvl, t, e)
	if err != nil {
		return Edge{}, err
	}
	b.cache.put3(OPite, f, g, h, res)
	return res, nil
}

// nextvar unwraps one variable from a cube, following the branch that does
// not lead to the constant false.
func (b *BDD) nextvar(varset Edge) Edge {
	vt, ve := b.cofactors(varset)
	if vt == bddzero {
		return ve
	}
	return vt
}

func (b *BDD) opQuant(op Operator, f, varset Edge, depth int32) (Edge, error) {
	// drop quantified variables above the level of f: for exist and forall
	// they do not constrain the result, but a parity quantification over a
	// variable outside the support gives f ^ f = false
	for !varset.isconst() && b.level(varset) < b.level(f) {
		if op == OPunique {
			return b.shortcut(op, bddzero)
		}
		varset = b.nextvar(varset)
	}
	if f.isconst() || varset.isconst() {
		return b.shortcut(op, f)
	}
	if res, ok := b.cache.get2(op, f, varset); ok {
		b.cachehit(op)
		return res, nil
	}
	b.cachemiss(op)
	lvl := b.level(f)
	ft, fe := b.cofactors(f)
	var t, e, res Edge
	var err error
	if b.level(varset) == lvl {
		next := b.nextvar(varset)
		t, e, err = b.fork(depth,
			func() (Edge, error) { return b.opQuant(op, ft, next, depth+1) },
			func() (Edge, error) { return b.opQuant(op, fe, next, depth+1) })
		if err != nil {
			return Edge{}, err
		}
		// combine the two branches: or for exist, and for forall, xor for
		// unique
		switch op {
		case OPexist:
			res, err = b.opOr(t, e, depth)
		case OPforall:
			res, err = b.opAnd(t, e, depth)
		default:
			res, err = b.opXor(t, e, depth)
		}
	} else {
		t, e, err = b.fork(depth,
			func() (Edge, error) { return b.opQuant(op, ft, varset, depth+1) },
			func() (Edge, error) { return b.opQuant(op, fe, varset, depth+1) })
		if err != nil {
			return Edge{}, err
		}
		res, err = b.makenode(op, lvl, t, e)
	}
	if err != nil {
		return Edge{}, err
	}
	b.cache.put2(op, f, varset, res)
	return res, nil
}

func (b *BDD) opRestrict(f, varset Edge, depth int32) (Edge, error) {
	if varset.isconst() || f.isconst() {
		return b.shortcut(OPrestrict, f)
	}
	// variables of the cube that do not occur in f are dropped
	for b.level(varset) < b.level(f) {
		varset = b.nextvar(varset)
		if varset.isconst() {
			return b.shortcut(OPrestrict, f)
		}
	}
	if res, ok := b.cache.get2(OPrestrict, f, varset); ok {
		b.cachehit(OPrestrict)
		return res, nil
	}
	b.cachemiss(OPrestrict)
	lvl := b.level(f)
	var res Edge
	var err error
	if b.level(varset) == lvl {
		// the tested variable is fixed: substitute the matching cofactor;
		// a cube binds positively unless its then-branch leads to false
		vt, ve := b.cofactors(varset)
		ft, fe := b.cofactors(f)
		if vt == bddzero {
			res, err = b.opRestrict(fe, ve, depth)
		} else {
			res, err = b.opRestrict(ft, vt, depth)
		}
	} else {
		ft, fe := b.cofactors(f)
		var t, e Edge
		t, e, err = b.fork(depth,
			func() (Edge, error) { return b.opRestrict(ft, varset, depth+1) },
			func() (Edge, error) { return b.opRestrict(fe, varset, depth+1) })
		if err != nil {
			return Edge{}, err
		}
		res, err = b.makenode(OPrestrict, lvl, t, e)
	}
	if err != nil {
		return Edge{}, err
	}
	b.cache.put2(OPrestrict, f, varset, res)
	return res, nil
}
