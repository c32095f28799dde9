// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import "fmt"

// Tag is the annotation carried by every edge of the diagram. Tags form a
// two-element group under Xor, with None as the identity.
type Tag uint8

const (
	// None means that the semantics of the edge is the semantics of the node
	// it references.
	None Tag = iota
	// Complemented means that the semantics of the edge is the negation of
	// the node it references.
	Complemented
)

// Not returns the flipped tag. It is its own inverse.
func (t Tag) Not() Tag {
	return t ^ 1
}

// Xor combines two tags. The operation is commutative, associative, and None
// is its identity.
func (t Tag) Xor(o Tag) Tag {
	return t ^ o
}

func (t Tag) String() string {
	if t == Complemented {
		return "!"
	}
	return ""
}

// ************************************************************

// Edge is a reference to a node of the diagram together with a Tag. It is the
// atomic unit of interactions and computations within the BDD: an Edge with a
// None tag denotes the function of the node it points to, while a
// Complemented tag denotes its negation. Edges are plain values; comparing
// two edges with == compares node identity and tag, which decides functional
// equality thanks to canonicity.
type Edge struct {
	id  int32
	tag Tag
}

// Tag returns the tag carried by the edge.
func (e Edge) Tag() Tag {
	return e.tag
}

// Not returns a view of the same node with the tag flipped. Negation of a BDD
// with complement edges is a constant-time operation that allocates nothing.
func (e Edge) Not() Edge {
	return Edge{id: e.id, tag: e.tag.Not()}
}

// NotIf flips the tag of e when cond holds. This is a convenience for
// composing negations during traversals.
func (e Edge) NotIf(cond bool) Edge {
	if cond {
		return e.Not()
	}
	return e
}

// untagged returns the same edge with the tag forced to None. Comparing
// untagged edges tests node identity modulo sign.
func (e Edge) untagged() Edge {
	return Edge{id: e.id, tag: None}
}

// pack serializes an edge into a single integer. Used for cache keys and for
// the else-child slot of stored nodes.
func (e Edge) pack() uint32 {
	return uint32(e.id)<<1 | uint32(e.tag)
}

func unpack(v uint32) Edge {
	return Edge{id: int32(v >> 1), tag: Tag(v & 1)}
}

// ************************************************************

// The diagram stores a single terminal node, always at index 0, denoting the
// constant true. The constant false is an edge to the same node with a
// Complemented tag; it is never stored separately.
const terminal int32 = 0

var bddone = Edge{id: terminal, tag: None}

var bddzero = Edge{id: terminal, tag: Complemented}

// isconst reports whether the edge references the terminal node.
func (e Edge) isconst() bool {
	return e.id == terminal
}

func (e Edge) String() string {
	if e == bddone {
		return "T"
	}
	if e == bddzero {
		return "F"
	}
	return fmt.Sprintf("%s%d", e.tag, e.id)
}
