// Package core defines the immutable Graph, Node, and Edge types that every
// other package of mstreplay consumes, together with the InvalidInput error
// family reported when a graph cannot be built.
//
// This file declares Node, Edge, Graph, GraphOption and the sentinel errors.
//
// Errors (all satisfy errors.Is(err, ErrInvalidInput)):
//
//	ErrEmptyNodeID          - node ID is the empty string.
//	ErrDuplicateNode        - two nodes share one ID.
//	ErrNodeNotFound         - an ID does not name a node of the graph.
//	ErrBadWeight            - weight is negative, NaN or infinite.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"strconv"
)

// ErrInvalidInput is the error class of every malformed-graph or unknown-node
// condition. Callers branch on it with errors.Is and refuse to go on.
var ErrInvalidInput = errors.New("core: invalid input")

// inputError is a sentinel that also reports itself as ErrInvalidInput.
type inputError struct{ msg string }

func (e *inputError) Error() string { return e.msg }

// Is makes every inputError match the ErrInvalidInput class.
func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyNodeID indicates that a Node or an edge endpoint has an empty ID.
	ErrEmptyNodeID error = &inputError{"core: node ID is empty"}

	// ErrDuplicateNode indicates that two nodes were declared with the same ID.
	ErrDuplicateNode error = &inputError{"core: duplicate node ID"}

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound error = &inputError{"core: node not found"}

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight error = &inputError{"core: edge weight must be finite and non-negative"}

	// ErrLoopNotAllowed indicates a self-loop was declared when loops are disabled.
	ErrLoopNotAllowed error = &inputError{"core: self-loop not allowed"}

	// ErrMultiEdgeNotAllowed indicates a parallel edge was declared when multi-edges are disabled.
	ErrMultiEdgeNotAllowed error = &inputError{"core: multi-edges not allowed"}
)

// Node is a vertex with a display label and a 2D canvas position.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID string `json:"id" yaml:"id"`

	// Label is the text shown for the node. Empty means "use ID".
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// X, Y place the node on the drawing canvas.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Edge is an undirected weighted connection between two nodes.
//
// Source and Target carry an orientation only for presentation: the
// generator normalizes an edge so that Source is the side already visited.
type Edge struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Reversed returns the same edge pointing the other way.
func (e Edge) Reversed() Edge {
	return Edge{Source: e.Target, Target: e.Source, Weight: e.Weight}
}

// Touches reports whether id is one of the endpoints.
func (e Edge) Touches(id string) bool {
	return e.Source == id || e.Target == id
}

// SameEndpoints reports whether e and o join the same pair of nodes,
// ignoring orientation and weight.
func (e Edge) SameEndpoints(o Edge) bool {
	return (e.Source == o.Source && e.Target == o.Target) ||
		(e.Source == o.Target && e.Target == o.Source)
}

// String renders the edge as "S-T(w)".
func (e Edge) String() string {
	return e.Source + "-" + e.Target + "(" + FormatWeight(e.Weight) + ")"
}

// FormatWeight prints a weight without trailing zeros: 4 → "4", 2.5 → "2.5".
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// GraphOption configures construction rules of a Graph.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (Source == Target).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same pair of nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a fixed set of nodes and a fixed set of undirected weighted edges.
//
// A Graph never changes after NewGraph returns, so it is safe to share across
// goroutines without locking. All accessors return copies.
type Graph struct {
	// Construction rules
	allowLoops bool
	allowMulti bool

	// Storage, in declaration order
	nodes []Node
	edges []Edge

	// index[nodeID] = position in nodes
	index map[string]int

	// incident[nodeID] = positions in edges touching the node, ascending
	incident map[string][]int
}
