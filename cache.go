// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// applycache memoizes the results of apply calls, keyed by the operator and
// the (ordered) operand edges. Eviction and locking are delegated to the LRU
// implementation; the engine only needs get/put and the guarantee that a hit
// is a currently valid edge. A miss is always safe: the recursive path
// recomputes the entry.
type applycache struct {
	lru *lru.Cache[cachekey, uint32]
}

type cachekey struct {
	op      Operator
	a, b, c uint32
}

func newapplycache(size int) *applycache {
	if size < 2 {
		size = 2
	}
	// lru.New only fails on a non-positive size
	c, _ := lru.New[cachekey, uint32](size)
	return &applycache{lru: c}
}

func (c *applycache) get2(op Operator, f, g Edge) (Edge, bool) {
	res, ok := c.lru.Get(cachekey{op: op, a: f.pack(), b: g.pack()})
	if !ok {
		return Edge{}, false
	}
	return unpack(res), true
}

func (c *applycache) put2(op Operator, f, g, res Edge) {
	c.lru.Add(cachekey{op: op, a: f.pack(), b: g.pack()}, res.pack())
}

func (c *applycache) get3(op Operator, f, g, h Edge) (Edge, bool) {
	res, ok := c.lru.Get(cachekey{op: op, a: f.pack(), b: g.pack(), c: h.pack()})
	if !ok {
		return Edge{}, false
	}
	return unpack(res), true
}

func (c *applycache) put3(op Operator, f, g, h, res Edge) {
	c.lru.Add(cachekey{op: op, a: f.pack(), b: g.pack(), c: h.pack()}, res.pack())
}

func (c *applycache) purge() {
	c.lru.Purge()
}
