// Package core provides a generic, in-memory directed weighted graph container
// with value semantics and a deterministic ordering contract.
//
// The Graph G = (N, E) holds:
//
//   - a set of unique node values of type N, ordered by a user comparator;
//   - a set of weighted directed edges (src, dst, weight), ordered
//     lexicographically by (src value, dst value, weight).
//
// Parallel edges (same endpoints, different weight) and reflexive edges
// (src == dst) are both legal. Identical triples are rejected.
//
// Storage model:
//
//	arena[N]          - node slots {value, gen, live}; a handle is {slot, gen}
//	nodeSet[N]        - btree index value → handle over the arena
//	edgeSet[N, E]     - btree of {src handle, dst handle, weight}
//
// Edges never copy or own their endpoints; they hold arena handles. Every
// stored handle resolves to a live node at all times: erasing, replacing or
// merging a node rewrites every edge that referenced it before the node's slot
// is released.
//
// Construction:
//
//	New[N, E cmp.Ordered](nodes ...N)                      // cmp.Compare ordering
//	NewFunc(cmpNode, cmpWeight, opts ...GraphOption)        // custom ordering
//	FromSeq / FromSeqFunc(seq iter.Seq[N], ...)             // consume a producer
//
// Core methods:
//
//	// Nodes
//	InsertNode(v) bool
//	ReplaceNode(old, new) (bool, error)
//	MergeReplaceNode(old, new) error
//	EraseNode(v) bool
//	IsNode(v) bool, Nodes() []N, NodeCount() int, Empty() bool
//
//	// Edges
//	InsertEdge(src, dst, w) (bool, error)
//	EraseEdge(src, dst, w) (bool, error)
//	EraseEdgeAt(it) EdgeIterator
//	EraseEdgeRange(first, last) EdgeIterator
//	IsConnected(src, dst) (bool, error)
//	Weights(src, dst) ([]E, error)
//	Connections(src) ([]N, error)
//	Find(src, dst, w) EdgeIterator
//
//	// Whole graph
//	Clear(), Equal(other), Clone(), Assign(src), Move(), MoveFrom(src)
//	String(), WriteTo(io.Writer)
//
// Iteration:
//
//	for it := g.Begin(); !it.Equal(g.End()); it = it.Next() {
//		e, _ := it.Value()
//		...
//	}
//
// or, with range-over-func, g.All() and g.Backward().
//
// Errors:
//
//	ErrInvalidArgument – a referenced node does not exist (the only failure kind)
//	ErrNodeNotFound    – wraps ErrInvalidArgument; returned by every precondition check
//
// A missing edge is not an error: EraseEdge reports it through its boolean.
// Every precondition is checked before any mutation, so a returned error
// always leaves the graph unchanged.
//
// Concurrency: a Graph is not safe for concurrent use. Callers that share one
// across goroutines must guard it with their own lock.
package core
