// SPDX-License-Identifier: MIT
//
// File: iterator.go
// Role: EdgeIterator, a bidirectional cursor over the ordered edge set,
//       plus range-over-func adapters (All, Backward).
// Determinism:
//   - Forward order is ascending (src, dst, weight); Backward is its exact reverse.
// Notes:
//   - A cursor stores the record it points at, never a tree-internal position,
//     so removing other edges does not disturb it.
//   - The zero EdgeIterator is "unbound": equal only to another unbound cursor.

package core

import "iter"

// EdgeIterator is a position in a graph's edge order.
//
// Value dereferences by value. Next and Prev return the neighbouring
// position. Equal is structural: same edge storage and same edge (or both end).
type EdgeIterator[N, E any] struct {
	set *edgeSet[N, E]
	rec edgeRecord[E]
	end bool
}

// Unbound reports whether it is the zero cursor.
func (it EdgeIterator[N, E]) Unbound() bool { return it.set == nil }

// IsEnd reports whether it is an end cursor.
func (it EdgeIterator[N, E]) IsEnd() bool { return it.set != nil && it.end }

// Value returns a snapshot of the edge under the cursor.
// ok is false for end and unbound cursors and for cursors whose edge has
// since been removed.
// Complexity: O(log E).
func (it EdgeIterator[N, E]) Value() (Edge[N, E], bool) {
	if it.set == nil || it.end {
		return Edge[N, E]{}, false
	}
	a := &it.set.nodes.arena
	from, okSrc := a.resolve(it.rec.src)
	to, okDst := a.resolve(it.rec.dst)
	if !okSrc || !okDst || !it.set.has(it.rec) {
		return Edge[N, E]{}, false
	}

	return Edge[N, E]{From: from, To: to, Weight: it.rec.weight}, true
}

// Next returns the cursor at the following edge, or end after the last one.
// Next of end is end; Next of an unbound cursor is itself. A cursor whose
// source or destination node has been erased steps to end.
// Complexity: O(log E).
func (it EdgeIterator[N, E]) Next() EdgeIterator[N, E] {
	if it.set == nil || it.end {
		return it
	}
	s := it.set
	if !s.live(it.rec) {
		return s.end()
	}
	next := s.end()
	s.tree.AscendGreaterOrEqual(it.rec, func(r edgeRecord[E]) bool {
		if s.compare(r, it.rec) == 0 {
			return true
		}
		next = EdgeIterator[N, E]{set: s, rec: r}
		return false
	})

	return next
}

// Prev returns the cursor at the preceding edge. Prev of end is the last
// edge; Prev of the first edge is end. Prev of an unbound cursor is itself.
// A cursor whose source or destination node has been erased steps to end.
// Complexity: O(log E).
func (it EdgeIterator[N, E]) Prev() EdgeIterator[N, E] {
	if it.set == nil {
		return it
	}
	s := it.set
	if it.end {
		if r, ok := s.tree.Max(); ok {
			return EdgeIterator[N, E]{set: s, rec: r}
		}
		return it
	}
	if !s.live(it.rec) {
		return s.end()
	}
	prev := s.end()
	s.tree.DescendLessOrEqual(it.rec, func(r edgeRecord[E]) bool {
		if s.compare(r, it.rec) == 0 {
			return true
		}
		prev = EdgeIterator[N, E]{set: s, rec: r}
		return false
	})

	return prev
}

// Equal reports whether both cursors denote the same position of the same
// edge storage.
func (it EdgeIterator[N, E]) Equal(other EdgeIterator[N, E]) bool {
	if it.set == nil || other.set == nil {
		return it.set == nil && other.set == nil
	}
	if it.set != other.set || it.end != other.end {
		return false
	}
	if it.end {
		return true
	}

	return it.set.sameEdge(it.rec, other.rec)
}

// Begin returns a cursor at the first edge, or End if there are none.
func (g *Graph[N, E]) Begin() EdgeIterator[N, E] { return g.edges.begin() }

// End returns the past-the-last cursor.
func (g *Graph[N, E]) End() EdgeIterator[N, E] { return g.edges.end() }

// All yields every edge in ascending (src, dst, weight) order.
// The graph must not be mutated while ranging.
func (g *Graph[N, E]) All() iter.Seq[Edge[N, E]] {
	s := g.edges
	return func(yield func(Edge[N, E]) bool) {
		s.tree.Ascend(func(r edgeRecord[E]) bool { return yield(s.key(r)) })
	}
}

// Backward yields every edge in descending order, the exact reverse of All.
// The graph must not be mutated while ranging.
func (g *Graph[N, E]) Backward() iter.Seq[Edge[N, E]] {
	s := g.edges
	return func(yield func(Edge[N, E]) bool) {
		s.tree.Descend(func(r edgeRecord[E]) bool { return yield(s.key(r)) })
	}
}
