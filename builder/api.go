// SPDX-License-Identifier: MIT
// Package: wdigraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wdigraph/core"
)

// Graph is the concrete graph type produced by the builder.
type Graph = core.Graph[string, int64]

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *Graph, cfg builderConfig) error

const (
	methodBuildGraph = "BuildGraph"
	methodApply      = "Apply"
)

// BuildGraph creates an empty graph, resolves bopts and applies every
// constructor in order. The first constructor error is wrapped with
// "BuildGraph: %w" and returned; no partial graph is returned.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.New[string, int64]()
	if err := apply(methodBuildGraph, g, bopts, cons); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph. Nodes the graph already
// holds are reused; edges that already exist are left as they are.
// Errors are wrapped with "Apply: %w".
func Apply(g *Graph, bopts []BuilderOption, cons ...Constructor) error {
	return apply(methodApply, g, bopts, cons)
}

func apply(method string, g *Graph, bopts []BuilderOption, cons []Constructor) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", method, ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// link inserts src→dst with the next configured weight. Endpoints must
// already be nodes; an existing identical edge is not an error.
func link(g *Graph, cfg builderConfig, method, src, dst string) error {
	w := cfg.weight()
	if _, err := g.InsertEdge(src, dst, w); err != nil {
		return builderErrorf(method, err, "InsertEdge(%s→%s, w=%d)", src, dst, w)
	}

	return nil
}
