// SPDX-License-Identifier: MIT
// Package: wdigraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on nil input; constructors never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator: index -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithSeed attaches a deterministic *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. The function receives
// the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// UniformWeight returns a weight function drawing uniformly from [lo, hi].
// With a nil RNG it returns lo. Panics if hi < lo.
func UniformWeight(lo, hi int64) func(*rand.Rand) int64 {
	if hi < lo {
		panic("builder: UniformWeight(hi < lo)")
	}
	return func(r *rand.Rand) int64 {
		if r == nil {
			return lo
		}
		return lo + r.Int63n(hi-lo+1)
	}
}
