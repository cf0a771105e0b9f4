// Package core defines the Graph container, its Edge view and EdgeIterator
// cursor, and the constructors that wire comparators into the storage.
//
// This file declares Edge, Graph, GraphOption and the New* constructors.
package core

import (
	"cmp"
	"iter"
)

// defaultDegree is the btree degree used unless WithDegree overrides it.
const defaultDegree = 32

// Edge is a by-value snapshot of one stored edge.
//
// From and To are copies of the endpoint node values; Weight is a copy of the
// edge weight. Holding an Edge never pins graph storage.
type Edge[N, E any] struct {
	// From is the source node value.
	From N

	// To is the destination node value.
	To N

	// Weight distinguishes parallel edges between the same endpoints.
	Weight E
}

// graphConfig collects construction-time knobs.
type graphConfig struct {
	degree int
}

// GraphOption configures a Graph before creation.
type GraphOption func(c *graphConfig)

// WithDegree sets the btree degree of both the node and the edge index.
// Panics if degree < 2 (option constructors fail fast on meaningless input).
func WithDegree(degree int) GraphOption {
	if degree < 2 {
		panic("core: WithDegree(degree < 2)")
	}
	return func(c *graphConfig) { c.degree = degree }
}

// Graph is a directed weighted graph with unique nodes and unique
// (src, dst, weight) edges.
//
// cmpNode and cmpWeight are three-way comparators (cmp.Compare convention);
// equality is compare == 0. nodes owns the node values; edges references them
// by handle. Both are pointers so Move can hand storage over in O(1) and so
// cursors follow the storage they were taken from.
type Graph[N, E any] struct {
	cmpNode   func(a, b N) int
	cmpWeight func(a, b E) int
	degree    int

	nodes *nodeSet[N]
	edges *edgeSet[N, E]
}

// New creates a graph over ordered types using cmp.Compare, seeded with
// nodes. Duplicate values collapse to one node.
// Complexity: O(k log k) for k initial nodes.
func New[N, E cmp.Ordered](nodes ...N) *Graph[N, E] {
	g := NewFunc[N, E](cmp.Compare[N], cmp.Compare[E])
	for _, v := range nodes {
		g.nodes.insert(v)
	}

	return g
}

// NewFunc creates an empty graph ordered by the given comparators.
// Panics if either comparator is nil.
// Complexity: O(len(opts)).
func NewFunc[N, E any](cmpNode func(a, b N) int, cmpWeight func(a, b E) int, opts ...GraphOption) *Graph[N, E] {
	if cmpNode == nil || cmpWeight == nil {
		panic("core: NewFunc(nil comparator)")
	}
	cfg := graphConfig{degree: defaultDegree}
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Graph[N, E]{cmpNode: cmpNode, cmpWeight: cmpWeight, degree: cfg.degree}
	g.reset()

	return g
}

// FromSeq creates a graph over ordered types by draining seq into the node set.
// The sequence must be finite.
func FromSeq[N, E cmp.Ordered](seq iter.Seq[N], opts ...GraphOption) *Graph[N, E] {
	return FromSeqFunc(cmp.Compare[N], cmp.Compare[E], seq, opts...)
}

// FromSeqFunc is FromSeq with custom comparators.
func FromSeqFunc[N, E any](cmpNode func(a, b N) int, cmpWeight func(a, b E) int, seq iter.Seq[N], opts ...GraphOption) *Graph[N, E] {
	g := NewFunc(cmpNode, cmpWeight, opts...)
	for v := range seq {
		g.nodes.insert(v)
	}

	return g
}

// reset installs fresh, empty storage.
func (g *Graph[N, E]) reset() {
	g.nodes = newNodeSet(g.cmpNode, g.degree)
	g.edges = newEdgeSet[N, E](g.nodes, g.cmpWeight, g.degree)
}
