// File: graph.go
// Role: Graph construction (NewGraph) and read-only queries.
// Determinism:
//   - Nodes() and Edges() keep declaration order.
//   - IncidentEdges() follows edge declaration order.
// Concurrency:
//   - None needed: the Graph is immutable once built.

package core

import (
	"fmt"
	"math"
)

// NewGraph validates nodes and edges and returns an immutable Graph.
//
// Steps:
//  1. Apply options.
//  2. Index nodes; reject empty or duplicate IDs.
//  3. For each edge: endpoints must exist, weight must be finite and ≥ 0,
//     loops and parallel edges only when enabled.
//  4. Record incident edge positions per node.
//
// Every error satisfies errors.Is(err, ErrInvalidInput) and names the
// offending node or edge position.
//
// Complexity: O(V + E) time and memory.
func NewGraph(nodes []Node, edges []Edge, opts ...GraphOption) (*Graph, error) {
	// 1) Options
	g := &Graph{
		nodes:    make([]Node, 0, len(nodes)),
		edges:    make([]Edge, 0, len(edges)),
		index:    make(map[string]int, len(nodes)),
		incident: make(map[string][]int, len(nodes)),
	}
	for _, opt := range opts {
		opt(g)
	}

	// 2) Nodes
	for i, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node #%d: %w", i, ErrEmptyNodeID)
		}
		if _, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNode)
		}
		g.index[n.ID] = len(g.nodes)
		g.nodes = append(g.nodes, n)
	}

	// 3) Edges
	type pair struct{ a, b string }
	seen := make(map[pair]struct{}, len(edges))
	for i, e := range edges {
		if e.Source == "" || e.Target == "" {
			return nil, fmt.Errorf("edge #%d: %w", i, ErrEmptyNodeID)
		}
		if !g.HasNode(e.Source) {
			return nil, fmt.Errorf("edge #%d source %q: %w", i, e.Source, ErrNodeNotFound)
		}
		if !g.HasNode(e.Target) {
			return nil, fmt.Errorf("edge #%d target %q: %w", i, e.Target, ErrNodeNotFound)
		}
		if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("edge #%d %s-%s weight %v: %w", i, e.Source, e.Target, e.Weight, ErrBadWeight)
		}
		if e.Source == e.Target && !g.allowLoops {
			return nil, fmt.Errorf("edge #%d on %q: %w", i, e.Source, ErrLoopNotAllowed)
		}
		// undirected: key the pair in canonical order
		key := pair{e.Source, e.Target}
		if key.b < key.a {
			key = pair{e.Target, e.Source}
		}
		if _, dup := seen[key]; dup && !g.allowMulti {
			return nil, fmt.Errorf("edge #%d %s-%s: %w", i, e.Source, e.Target, ErrMultiEdgeNotAllowed)
		}
		seen[key] = struct{}{}

		// 4) Incidence
		pos := len(g.edges)
		g.edges = append(g.edges, e)
		g.incident[e.Source] = append(g.incident[e.Source], pos)
		if e.Target != e.Source {
			g.incident[e.Target] = append(g.incident[e.Target], pos)
		}
	}

	return g, nil
}

// MustGraph is NewGraph for fixtures known to be valid. It panics on error.
func MustGraph(nodes []Node, edges []Edge, opts ...GraphOption) *Graph {
	g, err := NewGraph(nodes, edges, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// Looped reports whether self-loops were allowed at construction.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges were allowed at construction.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// NodeCount returns |V|. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns a copy of the nodes in declaration order. Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeIDs returns node IDs in declaration order. Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.ID
	}

	return out
}

// Edges returns a copy of the edges in declaration order. Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasNode reports whether id names a node. Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Node returns the node with the given ID. Complexity: O(1).
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Label returns the display label of id, falling back to id itself when the
// node has no label or does not exist.
func (g *Graph) Label(id string) string {
	if n, ok := g.Node(id); ok && n.Label != "" {
		return n.Label
	}

	return id
}

// EdgeLabel renders e with node labels, e.g. "A-D".
func (g *Graph) EdgeLabel(e Edge) string {
	return g.Label(e.Source) + "-" + g.Label(e.Target)
}

// IncidentEdges returns every edge touching id, normalized so that Source == id,
// in edge declaration order. A self-loop is returned once.
//
// Complexity: O(deg(id)).
func (g *Graph) IncidentEdges(id string) ([]Edge, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("IncidentEdges(%q): %w", id, ErrNodeNotFound)
	}
	positions := g.incident[id]
	out := make([]Edge, 0, len(positions))
	for _, pos := range positions {
		e := g.edges[pos]
		if e.Source != id {
			e = e.Reversed()
		}
		out = append(out, e)
	}

	return out, nil
}

// NeighborIDs returns the distinct neighbors of id in first-seen edge order.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	incident, err := g.IncidentEdges(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(incident))
	out := make([]string, 0, len(incident))
	for _, e := range incident {
		if _, ok := seen[e.Target]; ok {
			continue
		}
		seen[e.Target] = struct{}{}
		out = append(out, e.Target)
	}

	return out, nil
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum
}
