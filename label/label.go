// Package label defines the Label a label-setting sweep extends along
// arcs — an end node, the arc it arrived on, and a resource.Composition —
// plus Pool, a bounded-growth arena for acquiring and releasing them.
//
// A Label carries no previous/next pointer: paths are recovered after the
// fact by solution.Reconstruct's re-probing walk, not by following
// back-pointers.
package label

import "github.com/katalvlaran/rcspp/resource"

// NoArc marks a label that was never reached by crossing an arc — a root
// label acquired directly at a source node. Arc IDs are assigned starting
// at 0 (package graph), so 0 cannot serve as this sentinel.
const NoArc = ^uint64(0)

// Label is one path prefix reaching EndNode, described entirely by its
// resource state. Dominated is set by package dominance once a newly
// accepted label is found to dominate it (a candidate rejected by dominance
// is not marked); a dominated label is never re-extended but stays in its
// Pool slot until the slot is reused.
type Label struct {
	ID      uint64
	EndNode uint64 // graph.Node.ID, avoids an import cycle with package graph
	InArc   uint64 // graph.Arc.ID that produced this label, NoArc at a source root

	Resource resource.Composition

	Dominated bool
}

// Extend returns the label reached by crossing arc (identified by arcID,
// applying ext), ending at destNode. The receiver is left unmodified.
func (l *Label) Extend(arcID, destNode uint64, ext *resource.Extender) (Label, error) {
	next, err := ext.Apply(l.Resource)
	if err != nil {
		return Label{}, err
	}

	return Label{EndNode: destNode, InArc: arcID, Resource: next}, nil
}

// Feasible reports whether every resource kind's bound is satisfied.
func (l *Label) Feasible() bool { return l.Resource.Feasible() }

// Cost returns the label's path cost so far.
func (l *Label) Cost() float64 { return l.Resource.Cost() }

// Dominates reports whether l dominates other: same end node, l.Resource
// dominates other.Resource component-wise.
func (l *Label) Dominates(other *Label) bool {
	if l.EndNode != other.EndNode {
		return false
	}

	return l.Resource.Dominates(other.Resource)
}
