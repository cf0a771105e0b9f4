// Package wdigraph is an in-memory directed weighted multigraph with value
// semantics: ordered nodes, ordered parallel edges and stable cursors.
//
// What is in the box?
//
//	core/     Graph[N, E]: nodes, edges, cursors, replace/merge, clone/move
//	builder/  deterministic topologies (Path, Cycle, Star, Complete) over
//	          core.Graph[string, int64]
//	examples/ runnable programs
//
// Quick example:
//
//	g := core.New[string, int]("A", "B", "C")
//	g.InsertEdge("A", "B", 3)
//	g.InsertEdge("A", "B", 1) // parallel edge, different weight
//	g.InsertEdge("B", "C", 2)
//	fmt.Print(g)
//
//	A (
//	  B | 1
//	  B | 3
//	)
//	B (
//	  C | 2
//	)
//	C (
//	)
//
// Ordering: nodes ascend by the node comparator; edges ascend by
// (source, destination, weight). Every read API and every cursor walk
// observes that order.
//
// Concurrency: a Graph is not safe for concurrent mutation. Guard it
// externally or give each goroutine its own Clone.
package wdigraph
