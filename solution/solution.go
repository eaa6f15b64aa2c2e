// Package solution reconstructs paths from a surviving sink label without
// following predecessor pointers: a label carries no previous/next link, so
// a path is instead recovered by re-probing. At each arc crossing, every
// non-dominated label still tracked at the arc's origin is re-extended
// across that arc and checked for a match against the label one step
// downstream.
//
// Reconstruct returns the first matching candidate at each crossing;
// ReconstructAll generalizes the same walk to branch over every matching
// candidate instead of only the first, so that cost-tying alternate paths
// are all returned.
package solution

import (
	"errors"

	"github.com/katalvlaran/rcspp/dominance"
	"github.com/katalvlaran/rcspp/graph"
	"github.com/katalvlaran/rcspp/label"
)

// ErrNoMatchingPredecessor indicates the re-probing walk found no tracked
// label at an arc's origin whose extension matches the label one step
// downstream — a sign the supplied Tracker does not hold the bucket history
// that produced the label being reconstructed (e.g. it was Reset between
// producing and reconstructing the label).
var ErrNoMatchingPredecessor = errors.New("solution: no matching predecessor label found during reconstruction")

// Solution is one recovered source-to-sink path: node and arc IDs in
// traversal order (source first, sink last), and the cost of the label it
// was reconstructed from.
type Solution struct {
	Cost     float64
	NodePath []uint64
	ArcPath  []uint64
}

// Reconstruct recovers the single path ending in final by walking backward
// one arc at a time, re-extending every label tracker still holds at each
// arc's origin and taking the first one whose extension dominates the
// label one step downstream. Several candidates may match (ReconstructAll
// follows all of them); if none does, Reconstruct returns
// ErrNoMatchingPredecessor.
func Reconstruct(g *graph.Graph, tracker *dominance.Tracker, final *label.Label) (Solution, error) {
	sol := Solution{Cost: final.Cost(), NodePath: []uint64{final.EndNode}}

	current := final
	for current.InArc != label.NoArc {
		arc, err := g.GetArc(current.InArc)
		if err != nil {
			return Solution{}, err
		}
		sol.ArcPath = append(sol.ArcPath, arc.ID)
		sol.NodePath = append(sol.NodePath, arc.Origin.ID)

		if arc.Origin.Source {
			break
		}

		matched, err := reprobe(tracker, arc, current)
		if err != nil {
			return Solution{}, err
		}
		current = matched
	}

	reverse(sol.NodePath)
	reverse(sol.ArcPath)

	return sol, nil
}

// ReconstructAll recovers every source-to-sink path tying the cost of
// final: at each arc crossing it branches over every tracked label at the
// origin whose extension matches, rather than stopping at the first.
func ReconstructAll(g *graph.Graph, tracker *dominance.Tracker, final *label.Label) ([]Solution, error) {
	type frame struct {
		label    *label.Label
		nodePath []uint64
		arcPath  []uint64
	}

	var results []Solution
	queue := []frame{{label: final, nodePath: []uint64{final.EndNode}}}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		if f.label.InArc == label.NoArc {
			results = append(results, finish(final.Cost(), f.nodePath, f.arcPath))
			continue
		}

		arc, err := g.GetArc(f.label.InArc)
		if err != nil {
			return nil, err
		}
		nodePath := appendCopy(f.nodePath, arc.Origin.ID)
		arcPath := appendCopy(f.arcPath, arc.ID)

		if arc.Origin.Source {
			results = append(results, finish(final.Cost(), nodePath, arcPath))
			continue
		}

		matchedAny := false
		for _, candidate := range tracker.Bucket(arc.Origin.ID) {
			next, err := candidate.Extend(arc.ID, f.label.EndNode, arc.Extender)
			if err != nil {
				continue
			}
			if next.Dominates(f.label) {
				matchedAny = true
				queue = append(queue, frame{label: candidate, nodePath: nodePath, arcPath: arcPath})
			}
		}
		if !matchedAny {
			return nil, ErrNoMatchingPredecessor
		}
	}

	return results, nil
}

func reprobe(tracker *dominance.Tracker, arc *graph.Arc, target *label.Label) (*label.Label, error) {
	for _, candidate := range tracker.Bucket(arc.Origin.ID) {
		next, err := candidate.Extend(arc.ID, target.EndNode, arc.Extender)
		if err != nil {
			continue
		}
		if next.Dominates(target) {
			return candidate, nil
		}
	}

	return nil, ErrNoMatchingPredecessor
}

func finish(cost float64, nodePath, arcPath []uint64) Solution {
	nodePath = appendCopy(nil, nodePath...)
	arcPath = appendCopy(nil, arcPath...)
	reverse(nodePath)
	reverse(arcPath)

	return Solution{Cost: cost, NodePath: nodePath, ArcPath: arcPath}
}

func appendCopy(base []uint64, extra ...uint64) []uint64 {
	out := make([]uint64, len(base), len(base)+len(extra))
	copy(out, base)

	return append(out, extra...)
}

func reverse(s []uint64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
