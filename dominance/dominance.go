// Package dominance tracks, per end node, the current set of non-dominated
// labels and decides whether a newly extended label survives against it.
//
// A candidate is rejected outright if any label already in the node's
// bucket dominates it; otherwise it is accepted, every bucket member it
// dominates is evicted, and it is appended. Update fuses both steps into a
// single accept/reject call, since nothing ever tests a candidate without
// immediately following through on acceptance.
package dominance

import "github.com/katalvlaran/rcspp/label"

// Tracker holds one non-dominated bucket per end node. Not safe for
// concurrent use — package rcspp's solve loop owns one Tracker per Solve
// call, consulted only from its single-threaded sweep.
type Tracker struct {
	buckets map[uint64][]*label.Label
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{buckets: make(map[uint64][]*label.Label)}
}

// Update tests candidate against the bucket for candidate.EndNode. If any
// bucket member dominates candidate, candidate is rejected (accepted=false,
// dropped=nil) and the bucket is left untouched. Otherwise candidate is
// accepted: every bucket member candidate dominates is evicted (returned in
// dropped, with Dominated set true) and candidate is appended.
//
// Complexity: O(|bucket|) dominance comparisons, each O(K) in the resource
// arity.
func (t *Tracker) Update(candidate *label.Label) (accepted bool, dropped []*label.Label) {
	bucket := t.buckets[candidate.EndNode]

	for _, existing := range bucket {
		if existing.Dominates(candidate) {
			return false, nil
		}
	}

	survivors := bucket[:0:0]
	for _, existing := range bucket {
		if candidate.Dominates(existing) {
			existing.Dominated = true
			dropped = append(dropped, existing)
		} else {
			survivors = append(survivors, existing)
		}
	}
	survivors = append(survivors, candidate)
	t.buckets[candidate.EndNode] = survivors

	return true, dropped
}

// Bucket returns the current non-dominated labels at node, in no particular
// order. The returned slice is the Tracker's own backing slice; callers must
// not mutate it.
func (t *Tracker) Bucket(node uint64) []*label.Label {
	return t.buckets[node]
}

// Len returns the number of non-dominated labels currently tracked, summed
// across every node.
func (t *Tracker) Len() int {
	n := 0
	for _, b := range t.buckets {
		n += len(b)
	}

	return n
}

// Reset clears every bucket, for reuse across successive phases of a single
// Solve call.
func (t *Tracker) Reset() {
	for k := range t.buckets {
		delete(t.buckets, k)
	}
}
