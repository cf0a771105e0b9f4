// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in node/edge lifecycle semantics and precondition errors.
//   - Anchor ordering guarantees of Nodes/Weights/Connections.

package core_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdigraph/core"
)

func TestGraph_Constructors(t *testing.T) {
	// Empty graph.
	g := core.New[string, int]()
	assert.True(t, g.Empty())
	assert.Empty(t, g.Nodes())
	assert.True(t, g.Begin().Equal(g.End()))

	// Initial list collapses duplicates and sorts.
	g = core.New[string, int](NodeC, NodeA, NodeB, NodeA)
	RequireNodes(t, g, []string{NodeA, NodeB, NodeC})

	// Sequence producer.
	gi := core.FromSeq[int, int](slices.Values([]int{5, 3, 5, 1}))
	assert.Equal(t, []int{1, 3, 5}, gi.Nodes())

	// Custom comparators with slice-valued nodes.
	gs := core.NewFunc(slices.Compare[[]int], strings.Compare, core.WithDegree(4))
	assert.True(t, gs.InsertNode([]int{1, 3, 5}))
	assert.True(t, gs.InsertNode([]int{2, 4, 6}))
	ok, err := gs.InsertEdge([]int{1, 3, 5}, []int{2, 4, 6}, "Test")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, gs.IsNode([]int{1, 3, 5}))
	e, ok := gs.Begin().Value()
	require.True(t, ok)
	assert.Equal(t, "Test", e.Weight)

	assert.Panics(t, func() { core.NewFunc[int, int](nil, nil) })
	assert.Panics(t, func() { core.WithDegree(1) })
}

func TestGraph_InsertNode(t *testing.T) {
	g := core.New[string, int]()
	assert.True(t, g.InsertNode(NodeA))
	assert.True(t, g.InsertNode(NodeB))
	assert.False(t, g.InsertNode(NodeA), "re-insert must report not inserted")
	RequireNodes(t, g, []string{NodeA, NodeB})
	assert.Equal(t, 2, g.NodeCount())
	assert.False(t, g.Empty())
}

func TestGraph_InsertEdge(t *testing.T) {
	g := NewABC()

	// Parallel edges with distinct weights.
	MustInsertEdge(t, g, NodeA, NodeB, Weight1)
	MustInsertEdge(t, g, NodeA, NodeB, Weight2)
	// Reflexive edge.
	MustInsertEdge(t, g, NodeC, NodeC, Weight3)

	// Exact duplicate is rejected without error.
	ok, err := g.InsertEdge(NodeA, NodeB, Weight1)
	require.NoError(t, err)
	assert.False(t, ok)

	// Missing endpoint fails with InvalidArgument and leaves the graph alone.
	before := g.String()
	_, err = g.InsertEdge(NodeA, NodeMissing, Weight1)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Contains(t, err.Error(), "InsertEdge")
	_, err = g.InsertEdge(NodeMissing, NodeA, Weight1)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Equal(t, before, g.String())

	RequireEdges(t, g, []Edge{
		{From: NodeA, To: NodeB, Weight: Weight1},
		{From: NodeA, To: NodeB, Weight: Weight2},
		{From: NodeC, To: NodeC, Weight: Weight3},
	})
}

func TestGraph_EraseNode(t *testing.T) {
	g := NewABC()
	assert.False(t, g.EraseNode(NodeMissing))

	MustInsertEdge(t, g, NodeA, NodeB, Weight1)
	MustInsertEdge(t, g, NodeB, NodeA, Weight2)
	MustInsertEdge(t, g, NodeB, NodeB, Weight3)
	MustInsertEdge(t, g, NodeA, NodeC, Weight4)

	assert.True(t, g.EraseNode(NodeB))
	assert.False(t, g.IsNode(NodeB))
	RequireNodes(t, g, []string{NodeA, NodeC})
	RequireEdges(t, g, []Edge{{From: NodeA, To: NodeC, Weight: Weight4}})
	RequireInvariants(t, g)

	// Erasing an isolated node.
	assert.True(t, g.InsertNode(NodeD))
	assert.True(t, g.EraseNode(NodeD))
	assert.False(t, g.IsNode(NodeD))
}

func TestGraph_EraseEdge(t *testing.T) {
	g := NewABC()
	MustInsertEdge(t, g, NodeA, NodeB, Weight1)
	MustInsertEdge(t, g, NodeA, NodeB, Weight2)

	// Absent edge between valid nodes: false, no error.
	ok, err := g.EraseEdge(NodeB, NodeA, Weight1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = g.EraseEdge(NodeA, NodeB, Weight1)
	require.NoError(t, err)
	assert.True(t, ok)
	RequireEdges(t, g, []Edge{{From: NodeA, To: NodeB, Weight: Weight2}})

	// Missing nodes: error, unchanged.
	_, err = g.EraseEdge(NodeMissing, NodeB, Weight2)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = g.EraseEdge(NodeA, NodeMissing, Weight2)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_Queries(t *testing.T) {
	g := core.New[string, int](NodeA, NodeB, NodeC, NodeD)
	MustInsertEdge(t, g, NodeA, NodeC, Weight5)
	MustInsertEdge(t, g, NodeA, NodeB, Weight3)
	MustInsertEdge(t, g, NodeA, NodeB, Weight1)
	MustInsertEdge(t, g, NodeB, NodeA, Weight2)

	// IsConnected is directional.
	conn, err := g.IsConnected(NodeA, NodeB)
	require.NoError(t, err)
	assert.True(t, conn)
	conn, err = g.IsConnected(NodeC, NodeA)
	require.NoError(t, err)
	assert.False(t, conn)
	_, err = g.IsConnected(NodeA, NodeMissing)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	// Weights ascending; empty (non-nil) when unconnected.
	ws, err := g.Weights(NodeA, NodeB)
	require.NoError(t, err)
	assert.Equal(t, []int{Weight1, Weight3}, ws)
	ws, err = g.Weights(NodeD, NodeA)
	require.NoError(t, err)
	assert.Empty(t, ws)
	_, err = g.Weights(NodeMissing, NodeA)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	// Connections ascending by (dst, weight), duplicates per edge.
	cs, err := g.Connections(NodeA)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeB, NodeB, NodeC}, cs)
	cs, err = g.Connections(NodeD)
	require.NoError(t, err)
	assert.Empty(t, cs)
	_, err = g.Connections(NodeMissing)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "Connections")

	// Find.
	it := g.Find(NodeA, NodeB, Weight3)
	e, ok := it.Value()
	require.True(t, ok)
	assert.Equal(t, Edge{From: NodeA, To: NodeB, Weight: Weight3}, e)
	assert.True(t, g.Find(NodeA, NodeB, Weight2).Equal(g.End()))
	assert.True(t, g.Find(NodeMissing, NodeB, Weight1).Equal(g.End()))
}

func TestGraph_Clear(t *testing.T) {
	g := NewABC()
	g.Clear()
	assert.True(t, g.Empty())

	g = NewABC()
	MustInsertEdge(t, g, NodeA, NodeB, Weight1)
	g.Clear()
	assert.True(t, g.Empty())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.Begin().Equal(g.End()))

	// Still usable after Clear.
	assert.True(t, g.InsertNode(NodeA))
	MustInsertEdge(t, g, NodeA, NodeA, Weight1)
	RequireInvariants(t, g)
}

func TestGraph_Equal(t *testing.T) {
	assert.True(t, core.New[string, int]().Equal(core.New[string, int]()))

	a := core.New[string, int](NodeA, NodeB)
	b := core.New[string, int](NodeB, NodeA)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))

	MustInsertEdge(t, a, NodeA, NodeB, Weight1)
	assert.False(t, a.Equal(b))
	MustInsertEdge(t, b, NodeA, NodeB, Weight1)
	assert.True(t, a.Equal(b))

	// Same shape, different weight.
	c := core.New[string, int](NodeA, NodeB)
	MustInsertEdge(t, c, NodeA, NodeB, Weight2)
	assert.False(t, a.Equal(c))

	// Same edge count, different nodes.
	d := core.New[string, int](NodeA, NodeC)
	assert.False(t, core.New[string, int](NodeA, NodeB).Equal(d))

	// Mismatched comparators: equality is symmetric and needs both to agree.
	foldCase := func(x, y string) int { return strings.Compare(strings.ToLower(x), strings.ToLower(y)) }
	lower := core.New[string, int]("a")
	upper := core.NewFunc(foldCase, func(x, y int) int { return x - y })
	upper.InsertNode("A")
	assert.False(t, lower.Equal(upper))
	assert.False(t, upper.Equal(lower))

	folded := core.NewFunc(foldCase, func(x, y int) int { return x - y })
	folded.InsertNode("a")
	assert.True(t, upper.Equal(folded))
	assert.True(t, folded.Equal(upper))
}
