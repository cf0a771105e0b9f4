// File: methods_clone.go
// Role: Whole-graph lifecycle: Clone, Assign (copy-then-swap), Move, MoveFrom,
//       Clear and structural Equal.
// Notes:
//   - Clone copies node values with Go assignment; reference-typed values
//     (slices, maps, pointers) share their backing data with the source.
//   - Cursors follow the storage they were taken from: after Move they keep
//     reading the moved edges; after Clear they no longer match End().

package core

// Clone returns a deep copy of g: fresh node slots and every edge rebuilt
// against the clone's own handles. Mutating either graph never affects the other.
// Complexity: O(V log V + E log E).
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	c := &Graph[N, E]{cmpNode: g.cmpNode, cmpWeight: g.cmpWeight, degree: g.degree}
	c.reset()

	remap := make(map[handle]handle, g.nodes.len())
	g.nodes.ascend(func(v N, h handle) bool {
		nh, _ := c.nodes.insert(v)
		remap[h] = nh
		return true
	})
	for _, r := range g.edges.records() {
		c.edges.insert(remap[r.src], remap[r.dst], r.weight)
	}

	return c
}

// Assign replaces g's contents with a deep copy of src. The copy is built in
// full before g is touched, then swapped in.
func (g *Graph[N, E]) Assign(src *Graph[N, E]) {
	if g == src {
		return
	}
	c := src.Clone()
	g.swap(c)
}

// Move returns a new graph that takes over g's storage and leaves g empty
// and usable. Cursors taken from g before the move read the moved edges.
// Complexity: O(1).
func (g *Graph[N, E]) Move() *Graph[N, E] {
	out := &Graph[N, E]{
		cmpNode:   g.cmpNode,
		cmpWeight: g.cmpWeight,
		degree:    g.degree,
		nodes:     g.nodes,
		edges:     g.edges,
	}
	g.reset()

	return out
}

// MoveFrom takes over src's storage (move assignment) and leaves src empty.
// Self-move is a no-op.
// Complexity: O(1).
func (g *Graph[N, E]) MoveFrom(src *Graph[N, E]) {
	if g == src {
		return
	}
	g.swap(src)
	src.reset()
}

// Clear removes every node and edge.
// Complexity: O(1).
func (g *Graph[N, E]) Clear() {
	g.reset()
}

// Equal reports whether g and other hold equal node sequences and equal
// (src value, dst value, weight) edge sequences. Handles are irrelevant.
// Values must compare equal under both graphs' comparators, so a.Equal(b)
// and b.Equal(a) always agree.
// Complexity: O(V + E).
func (g *Graph[N, E]) Equal(other *Graph[N, E]) bool {
	if g == other {
		return true
	}
	if other == nil || g.nodes.len() != other.nodes.len() || g.edges.len() != other.edges.len() {
		return false
	}
	sameNode := func(a, b N) bool { return g.cmpNode(a, b) == 0 && other.cmpNode(a, b) == 0 }
	sameWeight := func(a, b E) bool { return g.cmpWeight(a, b) == 0 && other.cmpWeight(a, b) == 0 }

	an, bn := g.nodes.values(), other.nodes.values()
	for i := range an {
		if !sameNode(an[i], bn[i]) {
			return false
		}
	}
	ae, be := g.Edges(), other.Edges()
	for i := range ae {
		if !sameNode(ae[i].From, be[i].From) ||
			!sameNode(ae[i].To, be[i].To) ||
			!sameWeight(ae[i].Weight, be[i].Weight) {
			return false
		}
	}

	return true
}

// swap exchanges the complete state of two graphs.
func (g *Graph[N, E]) swap(o *Graph[N, E]) {
	g.cmpNode, o.cmpNode = o.cmpNode, g.cmpNode
	g.cmpWeight, o.cmpWeight = o.cmpWeight, g.cmpWeight
	g.degree, o.degree = o.degree, g.degree
	g.nodes, o.nodes = o.nodes, g.nodes
	g.edges, o.edges = o.edges, g.edges
}
