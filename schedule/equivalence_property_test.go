package schedule_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/rcspp/dominance"
	"github.com/katalvlaran/rcspp/graph"
	"github.com/katalvlaran/rcspp/label"
	"github.com/katalvlaran/rcspp/resource"
	"github.com/katalvlaran/rcspp/schedule"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// drain pushes every label in labels, then calls Next until exhausted,
// looping PreparePhase as needed (truncation never starves a scheduler with
// an unbounded budget, but the helper loops defensively regardless), and
// returns the IDs of every non-dominated label it saw, in the order the
// scheduler produced them. Dominated labels are still returned by Next (the
// caller releases them) but, mirroring the driver's own loop, are not
// "extended" and so are excluded from the comparison this test makes.
func drain(t *rapid.T, s schedule.Scheduler, labels []*label.Label) []uint64 {
	for _, l := range labels {
		s.Push(l)
	}

	var seen []uint64
	for rounds := 0; rounds < len(labels)+1; rounds++ {
		progressedThisRound := false
		for {
			l, ok := s.Next()
			if !ok {
				break
			}
			if !l.Dominated {
				seen = append(seen, l.ID)
			}
			progressedThisRound = true
		}
		if s.Len() == 0 {
			break
		}
		if !progressedThisRound {
			t.Fatalf("scheduler made no progress with %d labels still queued", s.Len())
		}
		s.PreparePhase()
	}

	return seen
}

// noArcGraph builds a graph with n disconnected nodes, sorted so Node.Pos
// matches identityPos. Sufficient for Pulling in this test: labels are
// pushed directly (not produced by extension), and with no arcs Pulling's
// pull step has nothing to walk, so it behaves as a pure node-ordered queue
// exactly like Pushing — which is what this test compares against.
func noArcGraph(n int) *graph.Graph {
	g := graph.NewGraph()
	for i := 0; i < n; i++ {
		_, _ = g.AddNode(uint64(i), i == 0, i == n-1, resource.Composition{})
	}
	g.SortNodes(nil)

	return g
}

// TestSchedulerEquivalence_SameLabelSetRegardlessOfOrder verifies the
// scheduler-equivalence property: with an unbounded per-node budget, every
// scheduler variant (Simple, Pushing, Pulling) extends exactly the same set
// of non-dominated labels — scheduling order affects only sequence, never
// completeness.
func TestSchedulerEquivalence_SameLabelSetRegardlessOfOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numNodes := rapid.IntRange(1, 8).Draw(t, "numNodes")
		count := rapid.IntRange(0, 30).Draw(t, "count")

		makeLabels := func() []*label.Label {
			out := make([]*label.Label, count)
			for i := range out {
				endNode := uint64(rapid.IntRange(0, numNodes-1).Draw(t, "endNode"))
				dominated := rapid.Bool().Draw(t, "dominated")
				out[i] = &label.Label{ID: uint64(i), EndNode: endNode, Dominated: dominated}
			}

			return out
		}

		labels := makeLabels()
		posOf := func(id uint64) int { return int(id) }

		g := noArcGraph(numNodes)
		simple := schedule.NewSimple(0)
		pushing := schedule.NewPushing(numNodes, 0, posOf)
		pulling := schedule.NewPulling(g, label.NewPool(numNodes), dominance.NewTracker(), 0, posOf)

		simpleSeen := drain(t, simple, cloneLabels(labels))
		pushingSeen := drain(t, pushing, cloneLabels(labels))
		pullingSeen := drain(t, pulling, cloneLabels(labels))

		assert.ElementsMatch(t, sortedIDs(labels), sortedIDs2(simpleSeen))
		assert.ElementsMatch(t, sortedIDs2(simpleSeen), sortedIDs2(pushingSeen))
		assert.ElementsMatch(t, sortedIDs2(simpleSeen), sortedIDs2(pullingSeen))
	})
}

func cloneLabels(labels []*label.Label) []*label.Label {
	out := make([]*label.Label, len(labels))
	for i, l := range labels {
		cp := *l
		out[i] = &cp
	}

	return out
}

func sortedIDs(labels []*label.Label) []uint64 {
	var ids []uint64
	for _, l := range labels {
		if !l.Dominated {
			ids = append(ids, l.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

func sortedIDs2(ids []uint64) []uint64 {
	out := append([]uint64(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
