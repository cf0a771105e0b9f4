// SPDX-License-Identifier: MIT
// Package: wdigraph/builder
//
// impl_complete.go - complete digraph K_n: idFn(i)→idFn(j) for all i ≠ j.
//
// Complexity: n·(n-1) edge inserts. Self-loops are never added.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that links every ordered pair of distinct
// nodes over idFn(0..n-1). Edges are emitted in (i, j) lexicographic index
// order so seeded weights are reproducible.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := link(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
