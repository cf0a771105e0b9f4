// SPDX-License-Identifier: MIT
// Package: wdigraph/builder
//
// impl_path.go - directed path P_n: v0→v1→…→v(n-1).
//
// Complexity: O(n log n) node inserts, O(n log n) edge inserts.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that adds n nodes idFn(0..n-1) and the n-1
// edges idFn(i)→idFn(i+1).
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// addNodes inserts idFn(0..n-1) and returns the IDs in index order.
// Nodes already present are reused.
func addNodes(g *Graph, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		g.InsertNode(ids[i])
	}

	return ids
}
