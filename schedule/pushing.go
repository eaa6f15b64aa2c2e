package schedule

import "github.com/katalvlaran/rcspp/label"

// Pushing is the forward node-ordered scheduler: it cycles through buckets
// in ascending Node.Pos order, starting from the sources and sweeping
// toward the sinks.
type Pushing struct {
	o     *ordered
	posOf func(nodeID uint64) int
}

// NewPushing returns a Pushing scheduler over numNodes buckets, with budget
// as the per-bucket, per-phase extension limit (<= 0 means unbounded).
// posOf must resolve a graph.Node.ID (as stored in label.Label.EndNode) to
// its graph.Node.Pos (0..numNodes-1); callers typically pass a closure over
// a live *graph.Graph, e.g. `func(id uint64) int { n, _ := g.GetNode(id); return int(n.Pos) }`.
func NewPushing(numNodes, budget int, posOf func(nodeID uint64) int) *Pushing {
	return &Pushing{o: newOrdered(numNodes, budget, false), posOf: posOf}
}

func (s *Pushing) Push(l *label.Label) { s.o.pushAt(s.posOf(l.EndNode), l) }

func (s *Pushing) Next() (*label.Label, bool) { return s.o.next() }

func (s *Pushing) Len() int { return s.o.length() }

func (s *Pushing) PreparePhase() { s.o.preparePhase() }

// SelfExtends always reports false: Pushing hands every label back to the
// driver for out-arc extension.
func (s *Pushing) SelfExtends() bool { return false }
