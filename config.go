// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"runtime"

	"go.uber.org/zap"
)

// configs is used to store the values of different parameters of the BDD.
type configs struct {
	varnum    int         // number of BDD variables
	nodesize  int         // capacity of the node table
	cachesize int         // number of entries in the apply cache
	shards    int         // number of lock domains in the unique table
	workers   int         // number of goroutines usable by the apply engine
	grain     int32       // recursion depth under which branches may fork
	logger    *zap.Logger // diagnostics sink
}

func makeconfigs(varnum int) *configs {
	return &configs{
		varnum:    varnum,
		nodesize:  1 << 20,
		cachesize: 1 << 16,
		shards:    64,
		workers:   1,
		grain:     8,
		logger:    zap.NewNop(),
	}
}

// Nodesize is a configuration option (function). Used as a parameter in New
// it sets the capacity of the node table. The table is never resized: an
// operation that needs more nodes returns ErrMemory, and it is up to the
// caller to Reclaim and retry. The default is about a million nodes.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New
// it sets the number of entries in the apply cache. Eviction is handled by
// the cache itself; a miss is always safe since the recursive path
// recomputes. The default is 65 536 entries.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// Shards is a configuration option (function). Used as a parameter in New it
// sets the number of lock domains of the unique table. The value is rounded
// up to a power of two. The default (64) is a good fit up to a few dozen
// workers.
func Shards(n int) func(*configs) {
	return func(c *configs) {
		if n < 1 {
			return
		}
		p := 1
		for p < n {
			p <<= 1
		}
		c.shards = p
	}
}

// Workers is a configuration option (function). Used as a parameter in New it
// sets the number of goroutines the apply engine may use. With the default
// value of 1 the engine is purely sequential; any larger value enables the
// fork-join variant, which is guaranteed to return the same canonical edges
// as the sequential one. Use 0 for one worker per CPU.
func Workers(n int) func(*configs) {
	return func(c *configs) {
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		if n >= 1 {
			c.workers = n
		}
	}
}

// Grain is a configuration option (function). Used as a parameter in New it
// sets the recursion depth under which the parallel engine may fork the two
// cofactor branches of an apply call. Below the threshold execution falls
// back to plain recursion to bound scheduling overhead. The default is 8.
func Grain(depth int) func(*configs) {
	return func(c *configs) {
		if depth >= 0 {
			c.grain = int32(depth)
		}
	}
}

// Logger is a configuration option (function). Used as a parameter in New it
// sets the logger receiving diagnostics about table creation, reclamation
// and allocation failures. The default discards everything.
func Logger(l *zap.Logger) func(*configs) {
	return func(c *configs) {
		if l != nil {
			c.logger = l
		}
	}
}
