// Package core provides the immutable weighted Graph consumed by the step
// generator, the replay controller and the renderers.
//
// A Graph G = (V, E) is:
//
//   - a fixed list of nodes, each with an ID, a display Label and an (X, Y)
//     canvas position;
//   - a fixed list of undirected edges with a non-negative Weight.
//
// Graphs are built once through NewGraph, which validates everything up front
// and reports malformed input through the ErrInvalidInput error class:
//
//	g, err := core.NewGraph(nodes, edges)
//	if errors.Is(err, core.ErrInvalidInput) {
//		// refuse to generate a trace
//	}
//
// Configuration Options (GraphOption):
//
//	– WithLoops()       allow Source == Target; otherwise ErrLoopNotAllowed.
//	– WithMultiEdges()  allow parallel edges; otherwise ErrMultiEdgeNotAllowed.
//
// Queries:
//
//	Nodes() / NodeIDs() / Edges()   // O(V) / O(V) / O(E), declaration order, copies
//	Node(id) / HasNode(id) / Label(id)  // O(1)
//	IncidentEdges(id)               // O(deg), normalized to point away from id
//	NeighborIDs(id)                 // O(deg), distinct, first-seen order
//	Reachable(start) / Connected()  // O(V+E) breadth-first
//
// Determinism: every query follows declaration order, never map order, so
// traces derived from a Graph are reproducible byte for byte.
package core
