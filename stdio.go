// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bcdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
)

// PrintDot prints a graph-like description of the diagram rooted at the
// given edges on the standard output, using the DOT format.
func (b *BDD) PrintDot(roots ...Edge) error {
	return b.Dot(os.Stdout, roots...)
}

// FPrintDot is like Dot but writes to the named file, or to the standard
// output when filename is "-".
func (b *BDD) FPrintDot(filename string, roots ...Edge) error {
	if filename == "-" {
		return b.Dot(os.Stdout, roots...)
	}
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()
	return b.Dot(out, roots...)
}

// Dot writes a GraphViz description of the diagram reachable from the given
// edges, or of all active nodes when roots is absent. Then-branches are
// drawn with filled arrows and else-branches with dotted ones; a complement
// edge ends with an odot arrowhead. Roots appear as plain-text entry points.
// Since the terminal denotes true, an edge reaching it with an odot head
// reads as the constant false.
func (b *BDD) Dot(w io.Writer, roots ...Edge) error {
	nodes := []int{}
	if err := b.Allnodes(func(id, level int, t, e Edge) error {
		nodes = append(nodes, id)
		return nil
	}, roots...); err != nil {
		return err
	}
	sort.Ints(nodes)
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "T [shape=box, label=\"1\", style=filled, height=0.3, width=0.3];")
	for k, r := range roots {
		fmt.Fprintf(bw, "f%d [shape=plaintext, label=\"f%[1]d\"];\n", k)
		fmt.Fprintf(bw, "f%d -> %s;\n", k, dotedge(r))
	}
	for _, v := range nodes {
		if v == int(terminal) {
			continue
		}
		n := b.nodes[v]
		fmt.Fprintf(bw, "%d %s\n", v, dotlabel(v, n.level))
		fmt.Fprintf(bw, "%d -> %s [style=filled];\n", v, dotedge(Edge{id: n.then}))
		fmt.Fprintf(bw, "%d -> %s [style=dotted];\n", v, dotedge(unpack(n.els)))
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// dotedge renders the target of an edge, with an odot arrowhead marking a
// complement. The terminal is always vertex T in the output.
func dotedge(e Edge) string {
	target := fmt.Sprintf("%d", e.id)
	if e.id == terminal {
		target = "T"
	}
	if e.tag == Complemented {
		return target + " [arrowhead=odot]"
	}
	return target
}

func dotlabel(a int, b int32) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, b, a)
}
