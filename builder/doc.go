// SPDX-License-Identifier: MIT
// Package builder provides deterministic topology constructors that populate
// a core.Graph[string, int64].
//
// One orchestrator, BuildGraph, creates the graph, resolves BuilderOption
// values into an immutable builderConfig and runs each Constructor in order:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Cycle(5),
//		builder.Star(4),
//	)
//
// Constructors:
//
//	Path(n)      n ≥ 2   v0→v1→…→v(n-1)
//	Cycle(n)     n ≥ 3   Path(n) + v(n-1)→v0
//	Star(n)      n ≥ 2   "Center"⇄v(i) for i = 1..n-1
//	Complete(n)  n ≥ 1   v(i)→v(j) for every i ≠ j
//
// Node IDs come from the ID scheme (decimal "0","1",… by default). Weights
// come from the weight function (constant 1 by default); WithSeed makes
// stochastic weight functions reproducible.
//
// Errors are sentinels checked with errors.Is: ErrTooFewVertices for
// parameter domain violations, ErrConstructFailed for a nil constructor.
// Graph errors are wrapped with the constructor name.
package builder
