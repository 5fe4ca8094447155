package dataset

import (
	"github.com/katalvlaran/mstreplay/builder"
	"github.com/katalvlaran/mstreplay/core"
)

// Builtin dataset names, in registration order.
const (
	Simple    = "simple"
	Complex   = "complex"
	Ring      = "ring"
	Grid      = "grid"
	Complete  = "complete"
	Wheel     = "wheel"
	Bipartite = "bipartite"
	Sparse    = "sparse"
	Islands   = "islands"
)

// Builtin returns a catalog holding the reference graphs followed by the
// generated ones. Every builtin starts from node A.
func Builtin(opts ...Option) *Catalog {
	c := NewCatalog(opts...)
	for _, b := range builtins() {
		if err := c.Register(b.name, b.description, "A", b.factory); err != nil {
			panic(err)
		}
	}

	return c
}

type builtin struct {
	name, description string
	factory           Factory
}

// builtins lists every builtin dataset. Generated graphs use whole-number
// weights from fixed seeds, so they are identical on every run.
func builtins() []builtin {
	generated := func(seed int64, cons ...builder.Constructor) Factory {
		return func() (*core.Graph, error) {
			return builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntegerWeight(1, 9)},
				cons...)
		}
	}

	return []builtin{
		{Simple, "Simple Graph (5 nodes)", simpleGraph},
		{Complex, "Complex Graph (8 nodes)", complexGraph},
		{Ring, "Ring of 8 nodes", generated(8, builder.Cycle(8))},
		{Grid, "Grid of 3 x 4 nodes", generated(12, builder.Grid(3, 4))},
		{Complete, "Complete graph K6", generated(6, builder.Complete(6))},
		{Wheel, "Wheel of 7 nodes", generated(7, builder.Wheel(7))},
		{Bipartite, "Complete bipartite graph K3,3", generated(9, builder.CompleteBipartite(3, 3))},
		{Sparse, "Random connected graph (10 nodes)", generated(10, builder.RandomConnected(10, 0.2))},
		{Islands, "Two components (ring of 4, path of 3)", generated(43,
			builder.Region(0, 0, 250, 400, builder.Cycle(4)),
			builder.Region(250, 0, 250, 400, builder.Path(3)))},
	}
}

// simpleGraph is the five-node reference graph.
func simpleGraph() (*core.Graph, error) {
	return core.NewGraph(
		[]core.Node{
			{ID: "A", Label: "A", X: 150, Y: 100},
			{ID: "B", Label: "B", X: 300, Y: 100},
			{ID: "C", Label: "C", X: 225, Y: 200},
			{ID: "D", Label: "D", X: 75, Y: 200},
			{ID: "E", Label: "E", X: 375, Y: 200},
		},
		[]core.Edge{
			{Source: "A", Target: "B", Weight: 4},
			{Source: "A", Target: "D", Weight: 2},
			{Source: "B", Target: "C", Weight: 3},
			{Source: "B", Target: "E", Weight: 6},
			{Source: "C", Target: "D", Weight: 5},
			{Source: "C", Target: "E", Weight: 1},
			{Source: "D", Target: "E", Weight: 7},
		},
	)
}

// complexGraph is the eight-node reference graph.
func complexGraph() (*core.Graph, error) {
	return core.NewGraph(
		[]core.Node{
			{ID: "A", Label: "A", X: 100, Y: 80},
			{ID: "B", Label: "B", X: 250, Y: 80},
			{ID: "C", Label: "C", X: 400, Y: 80},
			{ID: "D", Label: "D", X: 100, Y: 200},
			{ID: "E", Label: "E", X: 250, Y: 200},
			{ID: "F", Label: "F", X: 400, Y: 200},
			{ID: "G", Label: "G", X: 175, Y: 320},
			{ID: "H", Label: "H", X: 325, Y: 320},
		},
		[]core.Edge{
			{Source: "A", Target: "B", Weight: 5},
			{Source: "A", Target: "D", Weight: 3},
			{Source: "B", Target: "C", Weight: 4},
			{Source: "B", Target: "E", Weight: 6},
			{Source: "C", Target: "F", Weight: 2},
			{Source: "D", Target: "E", Weight: 7},
			{Source: "D", Target: "G", Weight: 8},
			{Source: "E", Target: "F", Weight: 3},
			{Source: "E", Target: "G", Weight: 2},
			{Source: "E", Target: "H", Weight: 5},
			{Source: "F", Target: "H", Weight: 4},
			{Source: "G", Target: "H", Weight: 1},
		},
	)
}
