package core_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/wdigraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and rendering.
func ExampleGraph() {
	// 1) Create a graph with two nodes:
	g := core.New[string, int]("X", "Y")

	// 2) Add two parallel edges, distinguished by weight:
	_, _ = g.InsertEdge("X", "Y", 2)
	_, _ = g.InsertEdge("X", "Y", 1)

	// 3) Render: nodes ascending, outgoing edges ascending by (dst, weight).
	_, _ = g.WriteTo(os.Stdout)

	// Output:
	// X (
	//   Y | 1
	//   Y | 2
	// )
	// Y (
	// )
}

// ExampleGraph_MergeReplaceNode shows duplicate edges coalescing on merge.
func ExampleGraph_MergeReplaceNode() {
	g := core.New[string, int]("A", "B", "C")
	_, _ = g.InsertEdge("A", "C", 7)
	_, _ = g.InsertEdge("B", "C", 7)

	_ = g.MergeReplaceNode("A", "B")
	fmt.Println(g.Nodes(), g.EdgeCount())

	// Output:
	// [B C] 1
}

// ExampleGraph_EraseEdgeAt walks the edges and erases by cursor.
func ExampleGraph_EraseEdgeAt() {
	g := core.New[string, int]("P", "Q", "R")
	_, _ = g.InsertEdge("P", "Q", 1)
	_, _ = g.InsertEdge("P", "Q", 2)
	_, _ = g.InsertEdge("R", "Q", 3)

	next := g.EraseEdgeAt(g.Find("P", "Q", 1))
	e, _ := next.Value()
	fmt.Printf("%s→%s(%d)\n", e.From, e.To, e.Weight)

	for e := range g.Backward() {
		fmt.Printf("%s→%s(%d)\n", e.From, e.To, e.Weight)
	}

	// Output:
	// P→Q(2)
	// R→Q(3)
	// P→Q(2)
}

// ExampleGraph_ReplaceNode renames a node across its edges.
func ExampleGraph_ReplaceNode() {
	g := core.New[string, int]("api", "db")
	_, _ = g.InsertEdge("api", "db", 1)

	ok, _ := g.ReplaceNode("db", "postgres")
	conns, _ := g.Connections("api")
	fmt.Println(ok, conns)

	_, err := g.ReplaceNode("cache", "redis")
	fmt.Println(err != nil)

	// Output:
	// true [postgres]
	// true
}
