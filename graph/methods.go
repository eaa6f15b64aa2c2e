// File: methods.go
// Role: Node/Arc lifecycle — AddNode/AddArc, lookups, soft delete/restore,
// bulk predicate removal, with monotonic arc IDs and a delete/restore split
// that keeps removed arcs recoverable without rebuilding adjacency.
package graph

import (
	"sort"

	"github.com/katalvlaran/rcspp/resource"
)

// AddNode creates a node with the given ID, appending it to the source/sink
// ID lists as requested. template is the resource.Composition a fresh label
// acquires when created at this node (label.Pool.Acquire resets into it).
// Returns ErrDuplicateNodeID if id is already present.
//
// Complexity: O(1) amortized. Concurrency: write lock on muNode.
func (g *Graph) AddNode(id uint64, source, sink bool, template resource.Composition) (*Node, error) {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil, ErrDuplicateNodeID
	}

	n := &Node{ID: id, Source: source, Sink: sink, Template: template}
	g.nodes[id] = n
	g.nodeIDs = append(g.nodeIDs, id)
	if source {
		g.sourceIDs = append(g.sourceIDs, id)
	}
	if sink {
		g.sinkIDs = append(g.sinkIDs, id)
	}
	g.sorted = false // Pos values are stale until SortNodes runs again

	return n, nil
}

// GetNode returns the node with the given ID, or ErrNodeNotFound.
//
// Complexity: O(1). Concurrency: read lock on muNode.
func (g *Graph) GetNode(id uint64) (*Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// Nodes returns every node in insertion order. The returned slice is a copy;
// mutating it does not affect the graph.
//
// Complexity: O(V). Concurrency: read lock on muNode.
func (g *Graph) Nodes() []*Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]*Node, len(g.nodeIDs))
	for i, id := range g.nodeIDs {
		out[i] = g.nodes[id]
	}

	return out
}

// SourceIDs returns the IDs registered as sources, in registration order.
func (g *Graph) SourceIDs() []uint64 {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]uint64, len(g.sourceIDs))
	copy(out, g.sourceIDs)

	return out
}

// SinkIDs returns the IDs registered as sinks, in registration order.
func (g *Graph) SinkIDs() []uint64 {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]uint64, len(g.sinkIDs))
	copy(out, g.sinkIDs)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodeIDs)
}

// AddArc appends a directed arc origin->dest. If id is nil, the next
// monotonic arc ID is assigned (mirrors core/methods_edges.go's
// nextEdgeID). Returns ErrNodeNotFound if either endpoint is missing,
// ErrDuplicateArcID if id is already in use.
//
// Complexity: O(1) amortized. Concurrency: read lock on muNode to resolve
// endpoints, write lock on muArc to insert.
func (g *Graph) AddArc(originID, destID uint64, id *uint64, cost float64, extender *resource.Extender, dualRows []resource.DualRow) (*Arc, error) {
	g.muNode.RLock()
	origin, ok := g.nodes[originID]
	if !ok {
		g.muNode.RUnlock()
		return nil, ErrNodeNotFound
	}
	dest, ok := g.nodes[destID]
	g.muNode.RUnlock()
	if !ok {
		return nil, ErrNodeNotFound
	}

	g.muArc.Lock()
	defer g.muArc.Unlock()

	var arcID uint64
	if id != nil {
		arcID = *id
		if _, exists := g.arcs[arcID]; exists {
			return nil, ErrDuplicateArcID
		}
		if arcID >= g.nextArcID {
			g.nextArcID = arcID + 1
		}
	} else {
		arcID = g.nextArcID
		g.nextArcID++
	}

	a := &Arc{ID: arcID, Origin: origin, Dest: dest, Cost: cost, Extender: extender, DualRows: dualRows}
	g.arcs[arcID] = a
	g.arcIDs = append(g.arcIDs, arcID)
	origin.OutArcs = append(origin.OutArcs, a)
	dest.InArcs = append(dest.InArcs, a)

	return a, nil
}

// GetArc returns the arc with the given ID (live or soft-deleted is not
// distinguished here — deleted arcs are removed from g.arcs entirely, see
// DeleteArc), or ErrArcNotFound.
func (g *Graph) GetArc(id uint64) (*Arc, error) {
	g.muArc.RLock()
	defer g.muArc.RUnlock()
	a, ok := g.arcs[id]
	if !ok {
		return nil, ErrArcNotFound
	}

	return a, nil
}

// Arcs returns every live arc, sorted by ID ascending (deterministic, stable
// for golden tests — mirrors core/methods_edges.go's Edges()).
//
// Complexity: O(E log E). Concurrency: read lock on muArc.
func (g *Graph) Arcs() []*Arc {
	g.muArc.RLock()
	defer g.muArc.RUnlock()
	out := make([]*Arc, 0, len(g.arcs))
	for _, a := range g.arcs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// ArcCount returns the number of live arcs.
func (g *Graph) ArcCount() int {
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	return len(g.arcs)
}

// DeleteArc soft-deletes arc id: it is detached from its endpoints'
// adjacency lists and moved into a side table so RestoreArc can reattach it
// later without re-deriving topology. Idempotent: returns false
// if id is not currently live (already absent or already deleted).
//
// Complexity: O(deg(origin) + deg(dest)) to splice adjacency.
// Concurrency: write lock on muArc.
func (g *Graph) DeleteArc(id uint64) bool {
	g.muArc.Lock()
	defer g.muArc.Unlock()

	a, ok := g.arcs[id]
	if !ok {
		return false
	}
	delete(g.arcs, id)
	g.arcIDs = removeID(g.arcIDs, id)
	a.Origin.OutArcs = removeArc(a.Origin.OutArcs, a)
	a.Dest.InArcs = removeArc(a.Dest.InArcs, a)
	a.deleted = true
	g.deletedArcs[id] = a

	return true
}

// RestoreArc reverses a prior DeleteArc(id): the arc is reattached to its
// endpoints' adjacency lists and its ID reappears in g.arcs. Idempotent:
// returns false if id is not currently in the deleted side table.
//
// Complexity: O(1) amortized (append). Concurrency: write lock on muArc.
func (g *Graph) RestoreArc(id uint64) bool {
	g.muArc.Lock()
	defer g.muArc.Unlock()

	a, ok := g.deletedArcs[id]
	if !ok {
		return false
	}
	delete(g.deletedArcs, id)
	a.deleted = false
	g.arcs[id] = a
	g.arcIDs = append(g.arcIDs, id)
	a.Origin.OutArcs = append(a.Origin.OutArcs, a)
	a.Dest.InArcs = append(a.Dest.InArcs, a)

	return true
}

// RemoveArcsIf deletes every live arc for which pred returns true — a bulk-deletion hook
// used by external preprocessors, e.g. preprocess.BellmanFord-driven arc
// elimination. Returns the removed arc IDs, sorted ascending.
//
// Complexity: O(E) scan + O(E) adjacency cleanup.
// Concurrency: delegates to DeleteArc per matching arc (each call taking its
// own write lock); pred is evaluated against a snapshot of Arcs().
func (g *Graph) RemoveArcsIf(pred func(*Arc) bool) []uint64 {
	var removed []uint64
	for _, a := range g.Arcs() {
		if pred(a) {
			if g.DeleteArc(a.ID) {
				removed = append(removed, a.ID)
			}
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })

	return removed
}

func removeID(ids []uint64, target uint64) []uint64 {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}

func removeArc(arcs []*Arc, target *Arc) []*Arc {
	for i, a := range arcs {
		if a == target {
			return append(arcs[:i], arcs[i+1:]...)
		}
	}

	return arcs
}
