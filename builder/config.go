// SPDX-License-Identifier: MIT
// Package: mstreplay/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = ExcelColumnIDFn      ("A","B",...,"Z","AA",...)
//   • rng      = nil                  (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn      (constant DefaultEdgeWeight)
//   • canvas   = 500 × 400, margin 50

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn

	// Layout canvas for node coordinates.
	width, height, margin float64
}

const (
	defaultWidth  = 500.0
	defaultHeight = 400.0
	defaultMargin = 50.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     ExcelColumnIDFn,
		weightFn: DefaultWeightFn,
		width:    defaultWidth,
		height:   defaultHeight,
		margin:   defaultMargin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
