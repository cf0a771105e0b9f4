// SPDX-License-Identifier: MIT
// Package: wdigraph/builder
//
// impl_star.go - star S_n: one hub "Center" plus n-1 leaves.
//
// Contract:
//   - n ≥ 2, else ErrTooFewVertices.
//   - Leaves are idFn(1..n-1); the hub ID is fixed.
//   - Every spoke is added in both directions: Center→leaf, then leaf→Center.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2

	// Center is the hub node ID used by Star.
	Center = "Center"
)

// Star returns a Constructor that builds a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		g.InsertNode(Center)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			g.InsertNode(leaf)
			if err := link(g, cfg, methodStar, Center, leaf); err != nil {
				return err
			}
			if err := link(g, cfg, methodStar, leaf, Center); err != nil {
				return err
			}
		}

		return nil
	}
}
