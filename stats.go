// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/olekukonko/tablewriter"
)

// opstat counts, for one operator, the canonicalization short-circuits
// (candidates resolved without creating a node), the terminal-case shortcut
// hits, and the apply cache traffic. Counters are diagnostics only and have
// no effect on results.
type opstat struct {
	reduced   uint64 // reduction rule returned an existing edge
	terminal  uint64 // operation resolved by a terminal-case shortcut
	cachehit  uint64
	cachemiss uint64
}

// OpStats is a read-only snapshot of the counters for one operator.
type OpStats struct {
	Op        Operator
	Reduced   uint64
	Terminal  uint64
	CacheHit  uint64
	CacheMiss uint64
}

func (b *BDD) cachehit(op Operator) {
	atomic.AddUint64(&b.opstats[op].cachehit, 1)
}

func (b *BDD) cachemiss(op Operator) {
	atomic.AddUint64(&b.opstats[op].cachemiss, 1)
}

// OperatorStats returns a snapshot of the per-operator counters, indexed by
// Operator.
func (b *BDD) OperatorStats() [_OPCOUNT]OpStats {
	var res [_OPCOUNT]OpStats
	for op := range b.opstats {
		res[op] = OpStats{
			Op:        Operator(op),
			Reduced:   atomic.LoadUint64(&b.opstats[op].reduced),
			Terminal:  atomic.LoadUint64(&b.opstats[op].terminal),
			CacheHit:  atomic.LoadUint64(&b.opstats[op].cachehit),
			CacheMiss: atomic.LoadUint64(&b.opstats[op].cachemiss),
		}
	}
	return res
}

// Stats returns a printable description of the state of the BDD: table
// occupancy followed by the per-operator counters.
func (b *BDD) Stats() string {
	var sb strings.Builder
	allocated := b.Allocated()
	fmt.Fprintf(&sb, "Varnum:     %d\n", b.varnum)
	fmt.Fprintf(&sb, "Capacity:   %d\n", b.Size())
	fmt.Fprintf(&sb, "Allocated:  %d  (%.3g %%)\n", allocated,
		float64(allocated)/float64(b.Size())*100)
	tw := tablewriter.NewWriter(&sb)
	tw.SetHeader([]string{"Op", "Reduced", "Terminal", "Cache Hit", "Cache Miss"})
	for _, s := range b.OperatorStats() {
		tw.Append([]string{
			s.Op.String(),
			strconv.FormatUint(s.Reduced, 10),
			strconv.FormatUint(s.Terminal, 10),
			strconv.FormatUint(s.CacheHit, 10),
			strconv.FormatUint(s.CacheMiss, 10),
		})
	}
	tw.Render()
	return sb.String()
}
