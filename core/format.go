// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: Deterministic textual rendering (String, WriteTo).
// Format (bit-exact):
//
//	<node> (
//	  <dst> | <weight>
//	)
//
// repeated for each node in ascending order, edges in ascending (dst, weight)
// order. An empty graph renders as the empty string. Values print with %v.

package core

import (
	"fmt"
	"io"
	"strings"
)

// String returns the textual rendering of g.
// Complexity: O(V + E).
func (g *Graph[N, E]) String() string {
	var b strings.Builder
	g.render(&b)

	return b.String()
}

// WriteTo writes the textual rendering of g to w in a single Write call.
// It implements io.WriterTo.
func (g *Graph[N, E]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

func (g *Graph[N, E]) render(b *strings.Builder) {
	g.nodes.ascend(func(v N, h handle) bool {
		fmt.Fprintf(b, "%v (\n", v)
		g.edges.ascendSrc(h, func(r edgeRecord[E]) bool {
			fmt.Fprintf(b, "  %v | %v\n", g.nodes.value(r.dst), r.weight)
			return true
		})
		b.WriteString(")\n")
		return true
	})
}
