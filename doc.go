// Package mstreplay records Prim's minimum-spanning-tree algorithm as a
// step-by-step trace and replays it like a tape.
//
// What is inside:
//
//	core/     - immutable weighted graph with 2D node positions
//	builder/  - deterministic topology constructors (cycle, grid, wheel, ...)
//	dataset/  - named graph catalog: builtins plus YAML/JSON catalog files
//	mst/      - step generator, Kruskal cross-check and trace verifier
//	replay/   - Controller cursor and the clock-driven Player loop
//	render/   - plain-text drawing, heap panel and frame report
//	tui/      - Bubble Tea front end
//	config/   - defaults, YAML file, .env and MSTREPLAY_* environment
//	logging/  - zap logger construction
//	metrics/  - Prometheus collector written as a text exposition file
//	cli/      - cobra commands: list, trace, play, verify and the TUI root
//
// The generator runs once per graph selection and never again during
// replay; every replay view is a pure function of one recorded step.
//
// Quick start, the five-node reference graph (MST weight 10):
//
//	go run ./cmd/mstreplay trace --dataset simple
package mstreplay
