// Package graph defines the directed graph over which the RCSPP label-setting
// engine runs: Node, Arc, source/sink sets, soft arc deletion/restoration,
// and a stable node ordering used by the node-ordered schedulers.
//
// Concurrency: a separate sync.RWMutex protects node state (muNode) and arc/
// adjacency state (muArc), so node registration and arc mutation never
// contend on the same lock. A Graph is safe to build and query from multiple
// goroutines; the label-setting sweep itself treats the graph as read-only
// for the duration of a single Solve call (package rcspp owns the single-
// threaded cooperative loop).
package graph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/rcspp/resource"
)

// Sentinel errors for graph construction and mutation.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrArcNotFound indicates an operation referenced a non-existent arc.
	ErrArcNotFound = errors.New("graph: arc not found")

	// ErrDuplicateNodeID indicates AddNode was called twice with the same ID.
	ErrDuplicateNodeID = errors.New("graph: duplicate node ID")

	// ErrDuplicateArcID indicates AddArc was given an ID already in use.
	ErrDuplicateArcID = errors.New("graph: duplicate arc ID")
)

// Node is a vertex of the RCSPP graph.
//
// Pos is the rank assigned by SortNodes (0..N-1); it is the only rank the
// node-ordered schedulers (schedule.Pushing, schedule.Pulling) rely on. ID is
// an external-facing identifier and is never assumed dense.
type Node struct {
	ID     uint64
	Pos    uint32
	Source bool
	Sink   bool

	// Template is the per-node resource snapshot a fresh label acquires when
	// created at this node (label.Pool.Acquire resets into it).
	Template resource.Composition

	OutArcs []*Arc
	InArcs  []*Arc
}

// Arc is a directed edge of the RCSPP graph, carrying the per-kind extension
// operator bundle applied to a label's resource tuple when it crosses the
// arc, plus the dual-row table letting UpdateReducedCosts recompute its cost
// payload without rebuilding topology.
type Arc struct {
	ID     uint64
	Origin *Node
	Dest   *Node
	Cost   float64

	Extender *resource.Extender
	DualRows []resource.DualRow

	deleted bool
}

// Graph is the RCSPP instance's topology: nodes, arcs, source/sink sets, and
// the soft-delete side table external preprocessors rely on.
type Graph struct {
	muNode sync.RWMutex
	muArc  sync.RWMutex

	nodes   map[uint64]*Node
	nodeIDs []uint64 // insertion order, for deterministic default iteration

	arcs      map[uint64]*Arc
	arcIDs    []uint64
	nextArcID uint64

	deletedArcs map[uint64]*Arc

	sourceIDs []uint64
	sinkIDs   []uint64

	sorted bool // true once SortNodes has run at least once
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:       make(map[uint64]*Node),
		arcs:        make(map[uint64]*Arc),
		deletedArcs: make(map[uint64]*Arc),
	}
}
