// Package builder provides deterministic, functional-options constructors
// for the small weighted graphs the replay ships with and the tests sample.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): run constructors against one Draft,
//     then validate it with core.NewGraph.
//     – Constructor: func(*Draft, builderConfig) error.
//   - Topologies (impl_*.go):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(rows, cols).
//     – RandomConnected(n, p): random spanning tree plus Erdős–Rényi extras.
//   - Node-ID schemes (IDFn):
//     – ExcelColumnIDFn (default): "A".."Z","AA",...
//     – DefaultIDFn: "0","1",...
//     – SymbolIDFn: "A".."Z" only.
//     – SymbolNumberIDFn(prefix): "v0","v1",...
//   - Edge-weight policies (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, IntegerWeightFn.
//   - Layout:
//     – Every node carries X/Y inside the canvas set by WithCanvas
//     (default 500×400, margin 50): circles for rings, rows for paths, a
//     lattice for grids.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Constructors compose: IDs continue from len(Draft.Nodes), so
//     BuildGraph(nil, nil, Cycle(4), Path(3)) yields two components A..D and E..G.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed).
package builder
