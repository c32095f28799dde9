// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"encoding/binary"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// bcddnode is a vertex of the diagram. Thanks to the reduction rules the
// then-child never carries a tag (invariant I1), so we only store its index;
// the else-child is a packed tagged edge. A node and its logical complement
// share the same record and are distinguished by the tag of incoming edges.
type bcddnode struct {
	level  int32  // Order of the variable in the BDD
	then   int32  // Reference to the true branch; tag is always None. -1 when the slot is free
	els    uint32 // Packed edge (reference and tag) to the false branch
	refcou int32  // Count the number of external references, with the mark bit above
}

// nodekey is the content address of a node in the unique table.
type nodekey struct {
	level int32
	then  int32
	els   uint32
}

// shard is one lock domain of the unique table. Registration of a candidate
// (level, then, else) triple is a check-then-insert under the shard mutex, so
// exactly one canonical node survives concurrent attempts.
type shard struct {
	mu     sync.Mutex
	unique map[nodekey]int32
}

// BDD is a manager for complement edge binary decision diagrams over a fixed
// set of varnum variables. All operations on a BDD are safe for concurrent
// use, with the exception of Reclaim and Allnodes which require that no
// operation is in flight.
type BDD struct {
	varnum  int32
	nodes   []bcddnode // Node arena; the terminal is always at index 0
	next    atomic.Int32
	shards  []shard
	smask   uint64
	varset  []int32 // Canonical node for each variable, in level order
	freemu  sync.Mutex
	free    []int32 // Slots released by Reclaim, shared by all shards
	cache   *applycache
	grain   int32
	sem     *semaphore.Weighted // nil when the engine runs sequentially
	opstats [_OPCOUNT]opstat
	logger  *zap.Logger
}

// New initializes a new BDD with varnum variables. The number of nodes and
// the size of the apply cache are fixed at creation time and can be set with
// the Nodesize and Cachesize options; Workers enables the parallel apply
// engine. See the documentation of the configuration options for the
// defaults.
func New(varnum int, options ...func(*configs)) (*BDD, error) {
	if (varnum < 1) || (int32(varnum) > _MAXVAR) {
		return nil, fmt.Errorf("bad number of variables (%d)", varnum)
	}
	c := makeconfigs(varnum)
	for _, f := range options {
		f(c)
	}
	b := &BDD{
		varnum: int32(varnum),
		nodes:  make([]bcddnode, c.nodesize),
		shards: make([]shard, c.shards),
		smask:  uint64(c.shards - 1),
		varset: make([]int32, varnum),
		cache:  newapplycache(c.cachesize),
		grain:  c.grain,
		logger: c.logger,
	}
	for k := range b.shards {
		b.shards[k].unique = make(map[nodekey]int32, c.nodesize/c.shards)
	}
	if c.workers > 1 {
		b.sem = semaphore.NewWeighted(int64(c.workers - 1))
	}
	// The terminal always sits at index 0 and has the highest level. It never
	// enters the unique table: candidates with equal children are reduced
	// away before registration.
	b.nodes[0] = bcddnode{level: b.varnum, then: 0, els: bddone.pack(), refcou: _MAXREFCOUNT}
	b.next.Store(1)
	// One node per variable; the negated literal is the complemented edge to
	// the same node.
	for k := int32(0); k < b.varnum; k++ {
		id, err := b.insert(k, bddone, bddzero)
		if err != nil {
			return nil, fmt.Errorf("cannot allocate variable %d: %w", k, err)
		}
		b.nodes[id].refcou = _MAXREFCOUNT
		b.varset[k] = id
	}
	b.logger.Debug("created BDD",
		zap.Int("varnum", varnum),
		zap.Int("nodesize", c.nodesize),
		zap.Int("cachesize", c.cachesize),
		zap.Int("shards", c.shards),
		zap.Int("workers", c.workers),
	)
	return b, nil
}

// ************************************************************

func (k nodekey) sum() uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(k.level))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(k.then))
	binary.LittleEndian.PutUint32(buf[8:12], k.els)
	return xxhash.Sum64(buf[:])
}

// insert registers a canonical candidate in the unique table and returns the
// index of the resulting node. The caller must have applied the reduction
// rules already: then must carry no tag and differ from els. When an equal
// node exists it is reused; otherwise a slot is taken from the free list or
// from the arena, and ErrMemory is returned when both are exhausted.
func (b *BDD) insert(level int32, then Edge, els Edge) (int32, error) {
	k := nodekey{level: level, then: then.id, els: els.pack()}
	sh := &b.shards[k.sum()&b.smask]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if id, ok := sh.unique[k]; ok {
		return id, nil
	}
	id, err := b.alloc()
	if err != nil {
		b.logger.Warn("node table full", zap.Int("allocated", b.Allocated()))
		return -1, err
	}
	b.nodes[id] = bcddnode{level: level, then: then.id, els: els.pack()}
	sh.unique[k] = id
	return id, nil
}

// alloc takes a node slot, preferring slots released by Reclaim over fresh
// arena slots. The free list is shared by all shards so that a Reclaim and
// retry can always reuse the whole reclaimed capacity, wherever the new keys
// hash. On failure the arena counter is given back, so next never stays past
// the capacity and the sweep loops stay within the arena.
func (b *BDD) alloc() (int32, error) {
	b.freemu.Lock()
	if n := len(b.free); n > 0 {
		id := b.free[n-1]
		b.free = b.free[:n-1]
		b.freemu.Unlock()
		return id, nil
	}
	b.freemu.Unlock()
	id := b.next.Add(1) - 1
	if int(id) >= len(b.nodes) {
		b.next.Add(-1)
		return -1, ErrMemory
	}
	return id, nil
}

// level returns the level of the node referenced by e; constants have level
// varnum, below every variable.
func (b *BDD) level(e Edge) int32 {
	return b.nodes[e.id].level
}

// ************************************************************

// Varnum returns the number of defined variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// True returns the edge for the constant true.
func (b *BDD) True() Edge {
	return bddone
}

// False returns the edge for the constant false.
func (b *BDD) False() Edge {
	return bddzero
}

// From returns a constant edge from a boolean value.
func (b *BDD) From(v bool) Edge {
	if v {
		return bddone
	}
	return bddzero
}

// Ithvar returns an edge representing the i'th variable. The requested
// variable must be in the range [0..Varnum); the function panics otherwise.
func (b *BDD) Ithvar(i int) Edge {
	if (i < 0) || (int32(i) >= b.varnum) {
		panic(fmt.Sprintf("bcdd: unknown variable (%d) in call to Ithvar", i))
	}
	return Edge{id: b.varset[i], tag: None}
}

// NIthvar returns an edge representing the negation of the i'th variable.
// With complement edges this is the same node as Ithvar(i) reached through a
// complemented edge.
func (b *BDD) NIthvar(i int) Edge {
	if (i < 0) || (int32(i) >= b.varnum) {
		panic(fmt.Sprintf("bcdd: unknown variable (%d) in call to NIthvar", i))
	}
	return Edge{id: b.varset[i], tag: Complemented}
}

// Not returns the negation of the expression rooted at e. This is a pure tag
// flip; no node is ever created.
func (b *BDD) Not(e Edge) Edge {
	return e.Not()
}

// Equal tests equivalence between edges. Canonicity makes this a constant
// time identity-plus-tag comparison.
func (b *BDD) Equal(f, g Edge) bool {
	return f == g
}

// Label returns the variable (level) tested by the node under e, or -1 for a
// constant edge.
func (b *BDD) Label(e Edge) int {
	if e.isconst() {
		return -1
	}
	return int(b.level(e))
}

// High returns the true branch (then cofactor) of e, with the complement tag
// of e composed onto it. It panics on a constant edge.
func (b *BDD) High(e Edge) Edge {
	if e.isconst() {
		panic("bcdd: try to access the cofactor of a constant")
	}
	t, _ := b.cofactors(e)
	return t
}

// Low returns the false branch (else cofactor) of e. It panics on a constant
// edge.
func (b *BDD) Low(e Edge) Edge {
	if e.isconst() {
		panic("bcdd: try to access the cofactor of a constant")
	}
	_, el := b.cofactors(e)
	return el
}

// ************************************************************

// Clone declares an external reference to the node under e, protecting it
// (and its descendants) from Reclaim. It returns e so that calls can be
// chained. Reference counts saturate: constants and variables are always
// kept.
func (b *BDD) Clone(e Edge) Edge {
	for {
		old := atomic.LoadInt32(&b.nodes[e.id].refcou)
		if old&_MAXREFCOUNT == _MAXREFCOUNT {
			return e
		}
		if atomic.CompareAndSwapInt32(&b.nodes[e.id].refcou, old, old+1) {
			return e
		}
	}
}

// Free releases an external reference taken with Clone. Releasing an edge
// transfers the ownership obligation back to the manager; the node remains
// valid until the next Reclaim.
func (b *BDD) Free(e Edge) {
	for {
		old := atomic.LoadInt32(&b.nodes[e.id].refcou)
		cou := old & _MAXREFCOUNT
		if cou == 0 || cou == _MAXREFCOUNT {
			return
		}
		if atomic.CompareAndSwapInt32(&b.nodes[e.id].refcou, old, old-1) {
			return
		}
	}
}

// ************************************************************

func (b *BDD) ismarked(id int32) bool {
	return (b.nodes[id].refcou & _MARKBIT) != 0
}

func (b *BDD) marknode(id int32) {
	b.nodes[id].refcou |= _MARKBIT
}

func (b *BDD) unmarknode(id int32) {
	b.nodes[id].refcou &^= _MARKBIT
}

func (b *BDD) markrec(id int32) {
	if b.ismarked(id) || b.nodes[id].then == -1 {
		return
	}
	b.marknode(id)
	if id == terminal {
		return
	}
	b.markrec(b.nodes[id].then)
	b.markrec(unpack(b.nodes[id].els).id)
}

// markcount returns the number of nodes under id and marks them.
func (b *BDD) markcount(id int32) int {
	if b.ismarked(id) || b.nodes[id].then == -1 {
		return 0
	}
	b.marknode(id)
	if id == terminal {
		return 1
	}
	return 1 + b.markcount(b.nodes[id].then) + b.markcount(unpack(b.nodes[id].els).id)
}

func (b *BDD) unmarkrec(id int32) {
	if !b.ismarked(id) {
		return
	}
	b.unmarknode(id)
	if id == terminal {
		return
	}
	b.unmarkrec(b.nodes[id].then)
	b.unmarkrec(unpack(b.nodes[id].els).id)
}

// Count returns the number of nodes in the diagram rooted at e, terminal
// included. Like Allnodes, Count must not run concurrently with apply
// operations since it marks nodes during the traversal.
func (b *BDD) Count(e Edge) int {
	res := b.markcount(e.id)
	b.unmarkrec(e.id)
	return res
}

// Reclaim sweeps every node that is not reachable from an edge with a
// positive reference count (see Clone) back to the free list, and flushes
// the apply cache. The caller must make sure that no operation is in flight:
// unlike the rest of the API, Reclaim is not safe to run concurrently with
// apply calls, whose intermediate results hold no references.
func (b *BDD) Reclaim() {
	for k := range b.shards {
		b.shards[k].mu.Lock()
	}
	defer func() {
		for k := range b.shards {
			b.shards[k].mu.Unlock()
		}
	}()
	next := min(b.next.Load(), int32(len(b.nodes)))
	// mark from the terminal, the variables, and every externally referenced
	// node
	b.marknode(terminal)
	for _, id := range b.varset {
		b.markrec(id)
	}
	for id := int32(1); id < next; id++ {
		if b.nodes[id].refcou&_MAXREFCOUNT > 0 {
			b.markrec(id)
		}
	}
	freed := 0
	b.freemu.Lock()
	for id := int32(1); id < next; id++ {
		if b.ismarked(id) {
			b.unmarknode(id)
			continue
		}
		if b.nodes[id].then == -1 {
			continue
		}
		k := nodekey{level: b.nodes[id].level, then: b.nodes[id].then, els: b.nodes[id].els}
		sh := &b.shards[k.sum()&b.smask]
		delete(sh.unique, k)
		b.nodes[id].then = -1
		b.nodes[id].refcou = 0
		b.free = append(b.free, id)
		freed++
	}
	b.freemu.Unlock()
	b.unmarknode(terminal)
	// cached results may reference swept nodes
	b.cache.purge()
	b.logger.Debug("reclaim",
		zap.Int32("allocated", next),
		zap.Int("freed", freed),
	)
}

// Size returns the capacity of the node table.
func (b *BDD) Size() int {
	return len(b.nodes)
}

// Allocated returns the number of arena slots ever taken. Slots released by
// Reclaim are reused before the arena grows further, so this is an upper
// bound on the number of live nodes, never above Size even after allocation
// failures.
func (b *BDD) Allocated() int {
	return int(min(b.next.Load(), int32(len(b.nodes))))
}
