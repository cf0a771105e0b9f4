// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for wdigraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Centralize invariant checks shared by lifecycle and randomized tests.

package core_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdigraph/core"
)

// Common node values used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"

	NodeP = "P"
	NodeQ = "Q"
	NodeR = "R"

	NodeX = "X"
	NodeY = "Y"

	NodeMissing = "missing"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight4 = 4
	Weight5 = 5
)

// Edge is the concrete edge view used by the string/int fixtures.
type Edge = core.Edge[string, int]

// NewABC returns a graph with nodes A, B, C and no edges.
func NewABC() *core.Graph[string, int] {
	return core.New[string, int](NodeA, NodeB, NodeC)
}

// NewPQR returns the cursor fixture: P→Q(1), P→Q(2), R→Q(3).
func NewPQR(t *testing.T) *core.Graph[string, int] {
	t.Helper()
	g := core.New[string, int](NodeP, NodeQ, NodeR)
	MustInsertEdge(t, g, NodeP, NodeQ, Weight1)
	MustInsertEdge(t, g, NodeP, NodeQ, Weight2)
	MustInsertEdge(t, g, NodeR, NodeQ, Weight3)

	return g
}

// MustInsertEdge FAILS the test unless InsertEdge succeeds and reports an insertion.
func MustInsertEdge(t *testing.T, g *core.Graph[string, int], src, dst string, w int) {
	t.Helper()
	ok, err := g.InsertEdge(src, dst, w)
	require.NoError(t, err, "InsertEdge(%s,%s,%d)", src, dst, w)
	require.True(t, ok, "InsertEdge(%s,%s,%d) must insert", src, dst, w)
}

// RequireEdges FAILS the test unless g holds exactly want, in order.
func RequireEdges(t *testing.T, g *core.Graph[string, int], want []Edge) {
	t.Helper()
	got := g.Edges()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("edges mismatch (-want +got):\n%s\ngraph:\n%s", diff, spew.Sdump(got))
	}
}

// RequireNodes FAILS the test unless g holds exactly want, in order.
func RequireNodes(t *testing.T, g *core.Graph[string, int], want []string) {
	t.Helper()
	if diff := cmp.Diff(want, g.Nodes()); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}
}

// RequireInvariants checks the graph-level invariants:
//   - Nodes() strictly ascending (unique);
//   - edges strictly ascending by (src, dst, weight) (unique);
//   - every edge endpoint is a node;
//   - Backward() is the exact reverse of All();
//   - cursor walk agrees with All().
func RequireInvariants(t *testing.T, g *core.Graph[string, int]) {
	t.Helper()
	nodes := g.Nodes()
	for i := 1; i < len(nodes); i++ {
		require.Less(t, nodes[i-1], nodes[i], "nodes must be strictly ascending")
	}

	edges := g.Edges()
	require.Equal(t, g.EdgeCount(), len(edges))
	for i, e := range edges {
		require.True(t, g.IsNode(e.From), "dangling src in %s", spew.Sdump(e))
		require.True(t, g.IsNode(e.To), "dangling dst in %s", spew.Sdump(e))
		if i > 0 {
			require.True(t, edgeLess(edges[i-1], e), "edges out of order at %d:\n%s", i, spew.Sdump(edges[i-1], e))
		}
	}

	var back []Edge
	for e := range g.Backward() {
		back = append(back, e)
	}
	require.Len(t, back, len(edges))
	for i := range back {
		require.Equal(t, edges[len(edges)-1-i], back[i])
	}

	var walked []Edge
	for it := g.Begin(); !it.Equal(g.End()); it = it.Next() {
		e, ok := it.Value()
		require.True(t, ok)
		walked = append(walked, e)
	}
	require.Len(t, walked, len(edges))
	if len(edges) > 0 {
		require.Equal(t, edges, walked)
	}
}

// edgeLess is the strict (src, dst, weight) order for string/int edges.
func edgeLess(a, b Edge) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	if a.To != b.To {
		return a.To < b.To
	}

	return a.Weight < b.Weight
}
