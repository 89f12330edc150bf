// Copyright (c) 2024 The ibdd Authors
//
// MIT License

// Package dot renders a Shared ROBDD as a Graphviz DOT graph, adapted
// from the teacher library's printDot/print_dot/dotlabel functions in
// stdio.go. Low edges are drawn dotted, since they are the edge that may
// carry a complement bit; a complemented low edge additionally gets an
// open-circle arrowhead so the negation is visible in the rendered
// graph. High edges are always drawn as plain solid arrows, since
// invariant 4 of this package's Engine forbids a high edge from ever
// being complemented.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/gobdd/ibdd"
)

// Write renders the sub-diagram rooted at f.
func Write(w io.Writer, e *ibdd.Engine, f ibdd.Edge) error {
	bw := bufio.NewWriter(w)
	if err := write(bw, e, []ibdd.Edge{f}); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteAll renders every root in fs sharing one graph, useful for
// dumping the outputs of a synthesized circuit together so shared
// substructure is visible.
func WriteAll(w io.Writer, e *ibdd.Engine, fs []ibdd.Edge) error {
	bw := bufio.NewWriter(w)
	if err := write(bw, e, fs); err != nil {
		return err
	}
	return bw.Flush()
}

func write(w *bufio.Writer, e *ibdd.Engine, roots []ibdd.Edge) error {
	nodes := map[int32]struct{}{}
	for _, r := range roots {
		e.Walk(r, func(idx int32) {
			nodes[idx] = struct{}{}
		})
	}
	ids := make([]int32, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fmt.Fprintln(w, "digraph G {")
	// The shared leaf lives at arena index 0 (spec.md §3); every low/high
	// edge that targets it is drawn to node id 0, so the box itself must
	// use that same id rather than the label text "1" it displays.
	fmt.Fprintln(w, `0 [shape=box, label="1", style=filled, height=0.3, width=0.3];`)

	for _, id := range ids {
		if id == 0 {
			continue
		}
		level, low, high := e.NodeFields(id)
		fmt.Fprintf(w, "%d %s\n", id, dotlabel(id, level))
		// Every low edge is drawn, including one to the leaf with its
		// complement bit set (the constant False), which gets the
		// open-circle arrowhead like any other complemented low edge.
		// High can never carry the complement bit (invariant 4), so it is
		// always drawn as a plain arrow.
		arrow := "normal"
		if low.Compl() {
			arrow = "odot"
		}
		fmt.Fprintf(w, "%d -> %d [style=dotted, arrowhead=%s];\n", id, low.Index(), arrow)
		fmt.Fprintf(w, "%d -> %d;\n", id, high.Index())
	}
	fmt.Fprintln(w, "}")
	return nil
}

func dotlabel(id int32, level uint16) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, level, id)
}
