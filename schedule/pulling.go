package schedule

import (
	"github.com/katalvlaran/rcspp/dominance"
	"github.com/katalvlaran/rcspp/graph"
	"github.com/katalvlaran/rcspp/label"
)

// Pulling is the destination-triggered node-ordered scheduler: instead of a
// label pushing its own successors across its out-arcs, Pulling performs
// that extension itself the first time its cursor lands on a node — it
// walks every in-arc, pulls every currently non-dominated label tracked at
// the arc's origin, extends it across the arc, and inserts every accepted
// successor into the node's own bucket. It sweeps the same ascending
// Node.Pos order as Pushing: an origin must already hold its final
// non-dominated set before the cursor reaches any of its successors.
type Pulling struct {
	g       *graph.Graph
	pool    *label.Pool
	tracker *dominance.Tracker

	nodeAt []*graph.Node // indexed by Node.Pos
	o      *ordered
	posOf  func(nodeID uint64) int
}

// NewPulling returns a Pulling scheduler over g, with budget as the
// per-bucket, per-phase extension limit (<= 0 means unbounded). pool and
// tracker must be the same instances driving the enclosing solve call:
// Pulling acquires and tracks labels on the driver's behalf during its pull
// step, the same way the driver's own extension loop does for Simple and
// Pushing. posOf has the same contract as NewPushing's.
func NewPulling(g *graph.Graph, pool *label.Pool, tracker *dominance.Tracker, budget int, posOf func(nodeID uint64) int) *Pulling {
	nodeAt := make([]*graph.Node, g.NodeCount())
	for _, n := range g.Nodes() {
		nodeAt[n.Pos] = n
	}

	s := &Pulling{g: g, pool: pool, tracker: tracker, nodeAt: nodeAt, posOf: posOf}
	s.o = newOrdered(g.NodeCount(), budget, false)
	s.o.onEnter = s.pull

	return s
}

func (s *Pulling) Push(l *label.Label) { s.o.pushAt(s.posOf(l.EndNode), l) }

func (s *Pulling) Next() (*label.Label, bool) { return s.o.next() }

func (s *Pulling) Len() int { return s.o.length() }

func (s *Pulling) PreparePhase() { s.o.preparePhase() }

// SelfExtends reports true: a label Next returns from Pulling was already
// produced by pull, so the driver must not extend it again across its own
// out-arcs.
func (s *Pulling) SelfExtends() bool { return true }

// pull is the ordered.onEnter hook for the node at pos: for every in-arc it
// extends each non-dominated label currently tracked at the arc's origin
// across that arc, and pushes every surviving successor into pos's bucket.
func (s *Pulling) pull(pos int) {
	node := s.nodeAt[pos]
	if node == nil {
		return
	}
	for _, arc := range node.InArcs {
		for _, cand := range s.tracker.Bucket(arc.Origin.ID) {
			next, xerr := cand.Extend(arc.ID, node.ID, arc.Extender)
			if xerr != nil {
				continue
			}
			m := s.pool.AcquireExtension(node.ID, arc.ID, next.Resource)
			if !m.Feasible() {
				s.pool.Release(m)
				continue
			}
			accepted, _ := s.tracker.Update(m)
			if accepted {
				s.o.pushAt(pos, m)
			} else {
				s.pool.Release(m)
			}
		}
	}
}
