// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries: InsertNode/EraseNode/IsNode/Nodes/NodeCount/Empty.
// Determinism:
//   - Nodes() returns values in ascending comparator order.

package core

// InsertNode adds v if no equal value exists and reports whether it was added.
// Existing nodes and edges are never disturbed.
// Complexity: O(log V).
func (g *Graph[N, E]) InsertNode(v N) bool {
	_, inserted := g.nodes.insert(v)
	return inserted
}

// EraseNode removes v and every edge touching it. It reports whether v existed.
//
// Steps:
//  1. Return false if v is absent.
//  2. Remove every edge with src == v or dst == v.
//  3. Release v's slot.
//
// Complexity: O(log V + E).
func (g *Graph[N, E]) EraseNode(v N) bool {
	if !g.nodes.contains(v) {
		return false
	}
	g.edges.eraseMatchingNode(v)
	g.nodes.erase(v)

	return true
}

// IsNode reports whether v is a node of g.
// Complexity: O(log V).
func (g *Graph[N, E]) IsNode(v N) bool {
	return g.nodes.contains(v)
}

// Nodes returns every node value in ascending order.
// Complexity: O(V).
func (g *Graph[N, E]) Nodes() []N {
	return g.nodes.values()
}

// NodeCount returns the number of nodes.
func (g *Graph[N, E]) NodeCount() int { return g.nodes.len() }

// Empty reports whether g has no nodes (and therefore no edges).
func (g *Graph[N, E]) Empty() bool { return g.nodes.len() == 0 }
