// SPDX-License-Identifier: MIT
// Package: mstreplay/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Resolves cfg, runs
//     cons in order against one Draft, then validates the Draft into a core.Graph.
//   - All public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstreplay/core"
)

// Draft accumulates nodes and edges before core.NewGraph validates them.
// Constructors append to it; they never remove or reorder.
type Draft struct {
	Nodes []core.Node
	Edges []core.Edge
}

// Constructor appends a deterministic topology to d using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw node IDs from cfg.idFn starting at len(d.Nodes), so several
//     constructors compose into one graph without ID clashes.
//   - Emit nodes and edges in a stable, documented order.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order to an empty Draft and validates the result with
// core.NewGraph(gopts...).
//
// Errors:
//   - Constructor errors are wrapped as "BuildGraph: %w"; branch with
//     errors.Is against builder sentinels (ErrTooFewVertices, ...).
//   - Validation errors from core keep their core.ErrInvalidInput class.
//
// Complexity: Σ cost of each constructor plus O(V + E) validation.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	d := &Draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(d.Nodes, d.Edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures known to be valid. It panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(nil, bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
