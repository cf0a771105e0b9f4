// SPDX-License-Identifier: MIT
// Package: wdigraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = decimalID   ("0","1","2",...)
//   • rng      = nil         (pure unless seeded)
//   • weightFn = constant DefaultEdgeWeight

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates the knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn func(*rand.Rand) int64
}

// DefaultEdgeWeight is the weight used when no weight function is configured.
const DefaultEdgeWeight = int64(1)

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		weightFn: func(*rand.Rand) int64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string.
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
