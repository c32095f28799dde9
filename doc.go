// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bcdd defines a concrete type for Binary Decision Diagrams with
complement edges (BCDD), a data structure used to efficiently represent
Boolean functions over a fixed set of variables.

Basics

Each BDD has a fixed number of variables, Varnum, declared when it is
initialized (using the function New) and each variable is represented by an
(integer) index in the interval [0..Varnum), called a level. The library
supports the creation of multiple BDD with possibly different number of
variables.

Operations over a BDD return an Edge: a value referencing a vertex of the
diagram together with a one-bit tag. A Complemented tag means that the edge
denotes the negation of the function stored at the vertex, so a node and its
negation share a single record and negation (Not) costs nothing. A single
terminal node, denoting true, is stored; false is an edge to the terminal
with a Complemented tag.

The representation is canonical: two edges denote the same Boolean function
exactly when they are equal (same vertex, same tag), which makes equivalence
checking a constant time operation. Canonicity is enforced by a reduction
rule that forbids tags on then-branches and by a content-addressed unique
table shared by all operations.

Concurrency

All operations of a BDD are safe for concurrent use. With the Workers option
the apply engine itself becomes parallel: the two cofactor branches of a
call may be evaluated by different goroutines, with a depth threshold (see
Grain) under which execution stays sequential. The parallel engine always
returns the same canonical edges as the sequential one, whatever the
scheduling.

Memory management

The node table has a fixed capacity (see Nodesize). An operation that
exhausts it fails with an error wrapping ErrMemory; results computed before
the failure remain valid. External references are managed explicitly with
Clone and Free, and Reclaim sweeps every node that is no longer referenced.
There is no automatic garbage collection: with a concurrent apply engine,
finalizer-based reference counting cannot tell apart a dead node from an
intermediate result still in flight, so reclamation is an explicit,
quiescent operation.
*/
package bcdd
