package schedule

import "github.com/katalvlaran/rcspp/label"

// Simple is the unordered FIFO scheduler: labels are extended in push
// order regardless of end node, subject to a per-node extension budget reset
// every phase.
type Simple struct {
	queue     []*label.Label
	truncated []*label.Label

	extendedPerNode map[uint64]int
	budget          int // MaxInt64-equivalent sentinel: <= 0 means unbounded
}

// NewSimple returns a Simple scheduler with budget as the maximum number of
// labels extended per node per phase. budget <= 0 means unbounded (the
// default: no per-node extension limit).
func NewSimple(budget int) *Simple {
	return &Simple{extendedPerNode: make(map[uint64]int), budget: budget}
}

func (s *Simple) Push(l *label.Label) { s.queue = append(s.queue, l) }

func (s *Simple) Next() (*label.Label, bool) {
	for len(s.queue) > 0 {
		l := s.queue[0]
		s.queue = s.queue[1:]

		if l.Dominated {
			return l, true // returned for release; doesn't count against any node's budget
		}
		if s.budget > 0 && s.extendedPerNode[l.EndNode] >= s.budget {
			s.truncated = append(s.truncated, l)
			continue
		}
		s.extendedPerNode[l.EndNode]++

		return l, true
	}

	return nil, false
}

func (s *Simple) Len() int { return len(s.queue) + len(s.truncated) }

// SelfExtends always reports false: Simple hands every label back to the
// driver for out-arc extension.
func (s *Simple) SelfExtends() bool { return false }

func (s *Simple) PreparePhase() {
	for k := range s.extendedPerNode {
		delete(s.extendedPerNode, k)
	}
	s.queue = append(s.queue, s.truncated...)
	s.truncated = s.truncated[:0]
}
