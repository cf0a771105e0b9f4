// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/EraseEdge/EraseEdgeAt/EraseEdgeRange,
//       IsConnected/Weights/Connections/Find/Edges/EdgeCount.
// Determinism:
//   - Weights() is ascending by weight; Connections() by (dst, weight).
// Errors:
//   - Every node-targeted method validates its endpoints first and returns
//     ErrNodeNotFound (wrapping ErrInvalidArgument) before touching state.

package core

// InsertEdge adds src→dst with weight w and reports whether it was added.
// An identical triple is rejected (false, nil); parallel and reflexive edges
// are accepted.
//
// Errors: ErrNodeNotFound if src or dst is not a node.
// Complexity: O(log V + log E).
func (g *Graph[N, E]) InsertEdge(src, dst N, w E) (bool, error) {
	sh, dh, ok := g.nodes.lookupPair(src, dst)
	if !ok {
		return false, invalidArgf(methodInsertEdge, "src or dst node does not exist")
	}

	return g.edges.insert(sh, dh, w), nil
}

// EraseEdge removes the edge (src, dst, w) and reports whether it existed.
// A missing edge between existing nodes is (false, nil), not an error.
//
// Errors: ErrNodeNotFound if src or dst is not a node.
// Complexity: O(log V + log E).
func (g *Graph[N, E]) EraseEdge(src, dst N, w E) (bool, error) {
	if !g.nodes.contains(src) || !g.nodes.contains(dst) {
		return false, invalidArgf(methodEraseEdge, "src or dst node does not exist")
	}

	return g.edges.eraseMatching(src, dst, w) > 0, nil
}

// EraseEdgeAt removes the edge under it and returns a cursor at the edge that
// followed it (or End). End, unbound and foreign cursors are a no-op
// returning End, as is a cursor whose source or destination node has since
// been erased.
// Complexity: O(log E).
func (g *Graph[N, E]) EraseEdgeAt(it EdgeIterator[N, E]) EdgeIterator[N, E] {
	if it.set != g.edges || it.end || !g.edges.live(it.rec) {
		return g.End()
	}
	if !g.edges.remove(it.rec) {
		return g.End()
	}

	return it.Next()
}

// EraseEdgeRange removes every edge in [first, last) and returns last.
// Edges are collected before any removal. An unbound, foreign or stale bound
// (one whose source or destination node has been erased) is a no-op
// returning End; a range whose first is not before last removes nothing.
// Complexity: O(log E + k log E) for k removed edges.
func (g *Graph[N, E]) EraseEdgeRange(first, last EdgeIterator[N, E]) EdgeIterator[N, E] {
	s := g.edges
	if first.set != s || last.set != s {
		return g.End()
	}
	if (!first.end && !s.live(first.rec)) || (!last.end && !s.live(last.rec)) {
		return g.End()
	}
	if first.end {
		return last
	}
	var doomed []edgeRecord[E]
	s.tree.AscendGreaterOrEqual(first.rec, func(r edgeRecord[E]) bool {
		if !last.end && s.compare(r, last.rec) >= 0 {
			return false
		}
		doomed = append(doomed, r)
		return true
	})
	for _, r := range doomed {
		s.remove(r)
	}
	if last.end {
		return g.End()
	}

	return last
}

// IsConnected reports whether at least one edge src→dst exists.
//
// Errors: ErrNodeNotFound if src or dst is not a node.
// Complexity: O(log V + log E).
func (g *Graph[N, E]) IsConnected(src, dst N) (bool, error) {
	sh, dh, ok := g.nodes.lookupPair(src, dst)
	if !ok {
		return false, invalidArgf(methodIsConnected, "src or dst node does not exist")
	}
	found := false
	g.edges.ascendPair(sh, dh, func(edgeRecord[E]) bool {
		found = true
		return false
	})

	return found, nil
}

// Weights returns the weights of every edge src→dst in ascending order.
//
// Errors: ErrNodeNotFound if src or dst is not a node.
// Complexity: O(log V + log E + k).
func (g *Graph[N, E]) Weights(src, dst N) ([]E, error) {
	sh, dh, ok := g.nodes.lookupPair(src, dst)
	if !ok {
		return nil, invalidArgf(methodWeights, "src or dst node does not exist")
	}
	out := []E{}
	g.edges.ascendPair(sh, dh, func(r edgeRecord[E]) bool {
		out = append(out, r.weight)
		return true
	})

	return out, nil
}

// Connections returns the destination of every edge sourced at src, in
// ascending (dst, weight) order. A destination reached by k parallel edges
// appears k times.
//
// Errors: ErrNodeNotFound if src is not a node.
// Complexity: O(log V + log E + k).
func (g *Graph[N, E]) Connections(src N) ([]N, error) {
	sh, ok := g.nodes.lookup(src)
	if !ok {
		return nil, invalidArgf(methodConnections, "src node does not exist")
	}
	out := []N{}
	g.edges.ascendSrc(sh, func(r edgeRecord[E]) bool {
		out = append(out, g.nodes.value(r.dst))
		return true
	})

	return out, nil
}

// Find returns a cursor at (src, dst, w), or End if there is no such edge.
// Missing nodes are not an error here; they simply yield End.
// Complexity: O(log V + log E).
func (g *Graph[N, E]) Find(src, dst N, w E) EdgeIterator[N, E] {
	return g.edges.find(src, dst, w)
}

// Edges returns a snapshot of every edge in ascending (src, dst, weight) order.
// Complexity: O(E).
func (g *Graph[N, E]) Edges() []Edge[N, E] {
	out := make([]Edge[N, E], 0, g.edges.len())
	for e := range g.All() {
		out = append(out, e)
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph[N, E]) EdgeCount() int { return g.edges.len() }
