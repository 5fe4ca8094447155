package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstreplay/core"
)

// ErrInvalidGraph indicates a nil graph. It belongs to the InvalidInput class.
var ErrInvalidGraph = fmt.Errorf("mst: graph is nil: %w", core.ErrInvalidInput)

// ErrEmptyStart indicates that no start node was specified.
// It belongs to the InvalidInput class.
var ErrEmptyStart = fmt.Errorf("mst: empty start node: %w", core.ErrInvalidInput)

// ErrTraceInvariant indicates that Verify found a trace violating one of its
// structural or optimality guarantees.
var ErrTraceInvariant = errors.New("mst: trace invariant violated")

// HeapOperation classifies what happened to the heap during a step.
type HeapOperation string

const (
	// OpNone marks bookkeeping steps (start, completion).
	OpNone HeapOperation = "none"
	// OpInsert marks the initial batch insertion from the start node.
	OpInsert HeapOperation = "insert"
	// OpExtract marks removal of the minimum entry, whether added or skipped.
	OpExtract HeapOperation = "extract"
	// OpUpdate marks a batch insertion after a node joined the tree.
	OpUpdate HeapOperation = "update"
)

// HeapEntry is one candidate edge in the priority structure.
type HeapEntry struct {
	Edge     core.Edge `json:"edge"`
	Priority float64   `json:"priority"`
}

// Step is a full snapshot of the algorithm state after one semantic action.
//
// Invariants across a trace:
//   - MSTNodes has no duplicates and is append-only from step to step.
//   - len(MSTEdges) == len(MSTNodes) - 1.
//   - Heap is sorted ascending by Priority.
type Step struct {
	// MSTNodes lists node IDs in the order they joined the tree.
	MSTNodes []string `json:"mstNodes"`

	// MSTEdges lists tree edges in the order they were accepted.
	MSTEdges []core.Edge `json:"mstEdges"`

	// Heap is the full priority structure at this instant.
	Heap []HeapEntry `json:"currentHeap"`

	// CurrentEdge is the edge just extracted; nil for bookkeeping steps.
	CurrentEdge *core.Edge `json:"currentEdge"`

	// Description is a one-line summary, Explanation a longer note.
	Description string `json:"description"`
	Explanation string `json:"detailedExplanation"`

	// Operation drives the heap panel color coding.
	Operation HeapOperation `json:"heapOperation"`

	// Highlight lists node IDs to emphasize.
	Highlight []string `json:"highlightNodes"`
}

// Weight returns the total weight of MSTEdges at this step.
func (s Step) Weight() float64 {
	return core.TotalWeight(s.MSTEdges)
}

// InMST reports whether id is part of the tree at this step.
func (s Step) InMST(id string) bool {
	for _, n := range s.MSTNodes {
		if n == id {
			return true
		}
	}

	return false
}

// Highlighted reports whether id is emphasized at this step.
func (s Step) Highlighted(id string) bool {
	for _, n := range s.Highlight {
		if n == id {
			return true
		}
	}

	return false
}

// Clone deep-copies the slices of s so callers can never alias trace storage.
func (s Step) Clone() Step {
	out := s
	out.MSTNodes = cloneOf(s.MSTNodes)
	out.MSTEdges = cloneOf(s.MSTEdges)
	out.Heap = cloneOf(s.Heap)
	out.Highlight = cloneOf(s.Highlight)
	if s.CurrentEdge != nil {
		e := *s.CurrentEdge
		out.CurrentEdge = &e
	}

	return out
}

// cloneOf returns a non-nil copy of s, so empty slices encode as [] not null.
func cloneOf[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)

	return out
}
