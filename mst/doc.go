// Package mst turns Prim's Minimum Spanning Tree algorithm into a replayable
// trace: an ordered list of full-state snapshots, one per semantic action.
//
// What & Why
//
//   - A Step holds the tree nodes and edges so far, the whole candidate heap,
//     the edge just extracted and a human-readable description. Each Step is
//     self-contained, so a viewer can jump to any index without replaying.
//
//   - The heap is a sorted slice rather than a binary heap: the sorted order
//     is exactly what a viewer shows, and equal weights keep insertion order.
//
// API
//
//   - Steps(g, start) ([]Step, error)   generate the raw snapshots.
//   - NewTrace(g, start) (*Trace, error) the same plus an ID and summaries.
//   - Kruskal(g) ([]core.Edge, float64, error) reference spanning forest.
//   - Verify(trace) error               structural and optimality checks.
//
// Operations
//
//	none     start and completion bookkeeping
//	insert   first batch of edges from the start node
//	extract  minimum edge removed (accepted or skipped as a cycle)
//	update   edges from a newly added node pushed
//
// Disconnected graphs
//
//	Prim only grows the start component. The final Step reports the nodes
//	left outside, and Trace.Unreached lists them.
//
// Errors
//
//	ErrInvalidGraph, ErrEmptyStart and core.ErrNodeNotFound all satisfy
//	errors.Is(err, core.ErrInvalidInput). ErrTraceInvariant is returned by
//	Verify only.
package mst
