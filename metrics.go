// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector returns a read-only prometheus.Collector exposing the state of
// the BDD: node table occupancy and the per-operator shortcut and cache
// counters. Collecting has no effect on computations.
func (b *BDD) Collector() prometheus.Collector {
	return &collector{b: b}
}

type collector struct {
	b *BDD
}

var (
	descAllocated = prometheus.NewDesc("bcdd_nodes_allocated",
		"Number of node slots ever taken in the table.", nil, nil)
	descCapacity = prometheus.NewDesc("bcdd_nodes_capacity",
		"Capacity of the node table.", nil, nil)
	descReduced = prometheus.NewDesc("bcdd_reduced_total",
		"Canonicalization short-circuits of the reduction rule.", []string{"op"}, nil)
	descTerminal = prometheus.NewDesc("bcdd_terminal_shortcuts_total",
		"Operations resolved by a terminal-case shortcut.", []string{"op"}, nil)
	descCacheHit = prometheus.NewDesc("bcdd_apply_cache_hits_total",
		"Apply cache hits.", []string{"op"}, nil)
	descCacheMiss = prometheus.NewDesc("bcdd_apply_cache_misses_total",
		"Apply cache misses.", []string{"op"}, nil)
)

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- descAllocated
	ch <- descCapacity
	ch <- descReduced
	ch <- descTerminal
	ch <- descCacheHit
	ch <- descCacheMiss
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(descAllocated, prometheus.GaugeValue, float64(c.b.Allocated()))
	ch <- prometheus.MustNewConstMetric(descCapacity, prometheus.GaugeValue, float64(c.b.Size()))
	for _, s := range c.b.OperatorStats() {
		op := s.Op.String()
		ch <- prometheus.MustNewConstMetric(descReduced, prometheus.CounterValue, float64(s.Reduced), op)
		ch <- prometheus.MustNewConstMetric(descTerminal, prometheus.CounterValue, float64(s.Terminal), op)
		ch <- prometheus.MustNewConstMetric(descCacheHit, prometheus.CounterValue, float64(s.CacheHit), op)
		ch <- prometheus.MustNewConstMetric(descCacheMiss, prometheus.CounterValue, float64(s.CacheMiss), op)
	}
}
