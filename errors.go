// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"errors"
)

// _MAXVAR is the maximal number of levels in the BDD. We use only the first
// 21 bits for encoding levels so that a level together with its mark bit
// always fits an int32.
const _MAXVAR int32 = 0x1FFFFF

// _MAXREFCOUNT is the maximal value of the reference counter (refcou), also
// used to stick nodes (like constants and variables) in the node table. It is
// equal to 1023 (10 bits).
const _MAXREFCOUNT int32 = 0x3FF

// _MARKBIT is set on the refcou field during Reclaim and Allnodes traversals
// to flag reachable nodes. It does not overlap with the counter bits.
const _MARKBIT int32 = 0x200000

// ErrMemory is the only error kind reported by the engine: the node table is
// exhausted and an operation needed a new node. Subresults canonicalized
// before the failure stay valid; the caller may Reclaim and retry.
var ErrMemory = errors.New("unable to allocate new node, table is full")
