// SPDX-License-Identifier: MIT
//
// File: edge_set.go
// Role: Canonical, uniquely-keyed edge storage ordered by (src value, dst value, weight).
// Determinism:
//   - The tree order is the externally observed iteration order.
// Invariants:
//   - Every stored record holds live handles of the sibling nodeSet.
//   - Ordering projects records to their canonical key through the arena;
//     handles themselves never take part in placement.
//   - Range probes (probeSrc, probePair) are lookup-only and never stored.

package core

import "github.com/google/btree"

// probeKind marks a record used only as a range lower bound.
type probeKind uint8

const (
	probeExact probeKind = iota // a real edge record
	probeSrc                    // sorts before every edge with this src
	probePair                   // sorts before every edge with this (src, dst)
)

// edgeRecord is the stored form of an edge: non-owning endpoint handles + weight.
type edgeRecord[E any] struct {
	src    handle
	dst    handle
	weight E
	probe  probeKind
}

// edgeSet owns the edge records of one graph and reads node values through nodes.
type edgeSet[N, E any] struct {
	nodes *nodeSet[N]
	cmpW  func(a, b E) int
	tree  *btree.BTreeG[edgeRecord[E]]
}

func newEdgeSet[N, E any](nodes *nodeSet[N], cmpW func(a, b E) int, degree int) *edgeSet[N, E] {
	s := &edgeSet[N, E]{nodes: nodes, cmpW: cmpW}
	s.tree = btree.NewG(degree, func(a, b edgeRecord[E]) bool {
		return s.compare(a, b) < 0
	})

	return s
}

// compare orders records by their canonical key (value(src), value(dst), weight).
// A probe sorts before every exact record sharing its prefix.
func (s *edgeSet[N, E]) compare(a, b edgeRecord[E]) int {
	if c := s.nodes.cmp(s.nodes.value(a.src), s.nodes.value(b.src)); c != 0 {
		return c
	}
	if c := probeOrder(a.probe, b.probe, probeSrc); c != 0 {
		return c
	}
	if a.probe == probeSrc { // both are src probes
		return 0
	}
	if c := s.nodes.cmp(s.nodes.value(a.dst), s.nodes.value(b.dst)); c != 0 {
		return c
	}
	if c := probeOrder(a.probe, b.probe, probePair); c != 0 {
		return c
	}
	if a.probe == probePair {
		return 0
	}

	return s.cmpW(a.weight, b.weight)
}

// probeOrder places a probe of kind k before a record that is not one.
func probeOrder(a, b, k probeKind) int {
	switch {
	case a == k && b != k:
		return -1
	case a != k && b == k:
		return 1
	default:
		return 0
	}
}

// key returns the record's canonical key as a value snapshot.
func (s *edgeSet[N, E]) key(r edgeRecord[E]) Edge[N, E] {
	return Edge[N, E]{From: s.nodes.value(r.src), To: s.nodes.value(r.dst), Weight: r.weight}
}

// sameEdge reports identity of two exact records (handles + weight).
func (s *edgeSet[N, E]) sameEdge(a, b edgeRecord[E]) bool {
	return a.src == b.src && a.dst == b.dst && s.cmpW(a.weight, b.weight) == 0
}

// insert stores (src, dst, w) unless the identical triple is present.
// Complexity: O(log E).
func (s *edgeSet[N, E]) insert(src, dst handle, w E) bool {
	r := edgeRecord[E]{src: src, dst: dst, weight: w}
	if s.tree.Has(r) {
		return false
	}
	s.tree.ReplaceOrInsert(r)

	return true
}

// live reports whether both endpoint handles of r still refer to live node
// slots. Stale records must not probe the tree: a reused slot orders them
// by another node's value.
func (s *edgeSet[N, E]) live(r edgeRecord[E]) bool {
	return s.nodes.arena.valid(r.src) && s.nodes.arena.valid(r.dst)
}

// has reports whether the exact record is stored.
func (s *edgeSet[N, E]) has(r edgeRecord[E]) bool {
	return s.tree.Has(r)
}

// remove deletes one exact record.
func (s *edgeSet[N, E]) remove(r edgeRecord[E]) bool {
	_, ok := s.tree.Delete(r)
	return ok
}

// lookup projects caller values to a probe record.
func (s *edgeSet[N, E]) lookup(src, dst N, w E) (edgeRecord[E], bool) {
	sh, dh, ok := s.nodes.lookupPair(src, dst)
	if !ok {
		return edgeRecord[E]{}, false
	}
	r := edgeRecord[E]{src: sh, dst: dh, weight: w}

	return r, s.tree.Has(r)
}

// eraseMatching removes the edge (src, dst, w) and returns how many were removed (0 or 1).
// Complexity: O(log V + log E).
func (s *edgeSet[N, E]) eraseMatching(src, dst N, w E) int {
	r, ok := s.lookup(src, dst, w)
	if !ok || !s.remove(r) {
		return 0
	}

	return 1
}

// eraseMatchingNode removes every edge whose src or dst equals v.
// Complexity: O(log V + E).
func (s *edgeSet[N, E]) eraseMatchingNode(v N) {
	h, ok := s.nodes.lookup(v)
	if !ok {
		return
	}
	for _, r := range s.touching(h) {
		s.remove(r)
	}
}

// find returns a cursor at (src, dst, w) or the end cursor.
func (s *edgeSet[N, E]) find(src, dst N, w E) EdgeIterator[N, E] {
	r, ok := s.lookup(src, dst, w)
	if !ok {
		return s.end()
	}

	return EdgeIterator[N, E]{set: s, rec: r}
}

// ascendSrc visits the edges sourced at h in ascending (dst, weight) order.
// Complexity: O(log E + k).
func (s *edgeSet[N, E]) ascendSrc(h handle, fn func(r edgeRecord[E]) bool) {
	s.tree.AscendGreaterOrEqual(edgeRecord[E]{src: h, probe: probeSrc}, func(r edgeRecord[E]) bool {
		if r.src != h {
			return false
		}
		return fn(r)
	})
}

// ascendPair visits the edges src→dst in ascending weight order.
// Complexity: O(log E + k).
func (s *edgeSet[N, E]) ascendPair(src, dst handle, fn func(r edgeRecord[E]) bool) {
	s.tree.AscendGreaterOrEqual(edgeRecord[E]{src: src, dst: dst, probe: probePair}, func(r edgeRecord[E]) bool {
		if r.src != src || r.dst != dst {
			return false
		}
		return fn(r)
	})
}

// touching collects every record whose src or dst is h, in ascending order.
// Callers mutate only after collection completes.
// Complexity: O(E).
func (s *edgeSet[N, E]) touching(h handle) []edgeRecord[E] {
	var out []edgeRecord[E]
	s.tree.Ascend(func(r edgeRecord[E]) bool {
		if r.src == h || r.dst == h {
			out = append(out, r)
		}
		return true
	})

	return out
}

// redirect rewrites every edge touching from so that it touches to instead.
// Originals are all removed before any redirected record is inserted;
// redirected duplicates coalesce into one record. It returns the number of
// redirected records dropped as duplicates.
// Complexity: O(E + k log E) for k touching edges.
func (s *edgeSet[N, E]) redirect(from, to handle) int {
	moved := s.touching(from)
	for _, r := range moved {
		s.remove(r)
	}
	dropped := 0
	for _, r := range moved {
		if r.src == from {
			r.src = to
		}
		if r.dst == from {
			r.dst = to
		}
		if !s.insert(r.src, r.dst, r.weight) {
			dropped++
		}
	}

	return dropped
}

// records returns all records in ascending order.
func (s *edgeSet[N, E]) records() []edgeRecord[E] {
	out := make([]edgeRecord[E], 0, s.tree.Len())
	s.tree.Ascend(func(r edgeRecord[E]) bool {
		out = append(out, r)
		return true
	})

	return out
}

func (s *edgeSet[N, E]) len() int { return s.tree.Len() }

// begin returns a cursor at the smallest record, or end if empty.
func (s *edgeSet[N, E]) begin() EdgeIterator[N, E] {
	r, ok := s.tree.Min()
	if !ok {
		return s.end()
	}

	return EdgeIterator[N, E]{set: s, rec: r}
}

func (s *edgeSet[N, E]) end() EdgeIterator[N, E] {
	return EdgeIterator[N, E]{set: s, end: true}
}
