// SPDX-License-Identifier: MIT
//
// File: node_set.go
// Role: Canonical, uniquely-keyed node storage ordered by the node comparator.
// Determinism:
//   - values() and ascend() walk nodes in ascending comparator order.
// Notes:
//   - Node values are never mutated in place. Renaming a node is
//     insert-new + redirect-edges + erase-old (see methods_replace.go).

package core

import "github.com/google/btree"

// nodeEntry is the btree item: the node value plus its arena handle.
// Lookups probe with nodeEntry{value: v}; h is ignored by the ordering.
type nodeEntry[N any] struct {
	value N
	h     handle
}

// nodeSet indexes arena slots by value.
type nodeSet[N any] struct {
	cmp   func(a, b N) int
	arena arena[N]
	index *btree.BTreeG[nodeEntry[N]]
}

func newNodeSet[N any](cmp func(a, b N) int, degree int) *nodeSet[N] {
	s := &nodeSet[N]{cmp: cmp}
	s.index = btree.NewG(degree, func(a, b nodeEntry[N]) bool {
		return cmp(a.value, b.value) < 0
	})

	return s
}

// insert adds v unless an equal value is present and returns the handle of
// the resident entry either way. Existing handles are never invalidated.
// Complexity: O(log V).
func (s *nodeSet[N]) insert(v N) (handle, bool) {
	if e, ok := s.index.Get(nodeEntry[N]{value: v}); ok {
		return e.h, false
	}
	h := s.arena.alloc(v)
	s.index.ReplaceOrInsert(nodeEntry[N]{value: v, h: h})

	return h, true
}

// lookup returns the handle of the node equal to v.
// Complexity: O(log V).
func (s *nodeSet[N]) lookup(v N) (handle, bool) {
	e, ok := s.index.Get(nodeEntry[N]{value: v})
	return e.h, ok
}

// lookupPair resolves both endpoints; ok is false if either is missing.
func (s *nodeSet[N]) lookupPair(src, dst N) (sh, dh handle, ok bool) {
	if sh, ok = s.lookup(src); !ok {
		return handle{}, handle{}, false
	}
	if dh, ok = s.lookup(dst); !ok {
		return handle{}, handle{}, false
	}

	return sh, dh, true
}

func (s *nodeSet[N]) contains(v N) bool {
	return s.index.Has(nodeEntry[N]{value: v})
}

// erase removes v and releases its slot. The caller must already have
// removed every edge referencing v.
// Complexity: O(log V).
func (s *nodeSet[N]) erase(v N) bool {
	e, ok := s.index.Delete(nodeEntry[N]{value: v})
	if !ok {
		return false
	}
	s.arena.release(e.h)

	return true
}

// value returns the node value behind h (no liveness check).
func (s *nodeSet[N]) value(h handle) N { return s.arena.value(h) }

// ascend calls fn for each node in ascending order until fn returns false.
func (s *nodeSet[N]) ascend(fn func(v N, h handle) bool) {
	s.index.Ascend(func(e nodeEntry[N]) bool { return fn(e.value, e.h) })
}

// values returns every node value in ascending order.
// Complexity: O(V).
func (s *nodeSet[N]) values() []N {
	out := make([]N, 0, s.index.Len())
	s.index.Ascend(func(e nodeEntry[N]) bool {
		out = append(out, e.value)
		return true
	})

	return out
}

func (s *nodeSet[N]) len() int { return s.arena.len() }
