package schedule

import "github.com/katalvlaran/rcspp/label"

// ordered is the node-ordered scheduler shared by Pushing and Pulling: one
// bucket per Node.Pos, a cursor that cycles through buckets (forward for
// both variants), and a per-bucket budget applied once when the cursor
// first lands on a bucket for a phase. onEnter, when set, runs before that
// budget pass — Pulling uses it to perform its own in-arc extension into
// the bucket the moment the cursor reaches it; Pushing leaves it nil.
type ordered struct {
	buckets   [][]*label.Label
	truncated [][]*label.Label
	entered   []bool // has enterBucket run for this bucket this phase

	cursor      int
	emptyStreak int
	reverse     bool
	budget      int

	onEnter func(pos int)
}

func newOrdered(numNodes, budget int, reverse bool) *ordered {
	return &ordered{
		buckets:   make([][]*label.Label, numNodes),
		truncated: make([][]*label.Label, numNodes),
		entered:   make([]bool, numNodes),
		cursor:    startCursor(numNodes, reverse),
		reverse:   reverse,
		budget:    budget,
	}
}

func startCursor(numNodes int, reverse bool) int {
	if reverse && numNodes > 0 {
		return numNodes - 1
	}

	return 0
}

// pushAt enqueues l into the bucket for pos (the label's end node's
// Node.Pos, as assigned by graph.Graph.SortNodes). The scheduler itself
// never reads Node.Pos from the label — label.Label.EndNode is a
// graph.Node.ID, not a Pos — so the caller (Pushing.Push / Pulling.Push)
// resolves pos via its own id->pos lookup, keeping this package free of an
// import on package graph.
func (o *ordered) pushAt(pos int, l *label.Label) {
	o.buckets[pos] = append(o.buckets[pos], l)
}

func (o *ordered) next() (*label.Label, bool) {
	n := len(o.buckets)
	if n == 0 {
		return nil, false
	}

	for {
		if !o.entered[o.cursor] {
			o.enterBucket(o.cursor)
		}
		if len(o.buckets[o.cursor]) == 0 {
			if !o.advance() {
				return nil, false
			}
			continue
		}

		bucket := o.buckets[o.cursor]
		l := bucket[0]
		o.buckets[o.cursor] = bucket[1:]
		o.emptyStreak = 0

		return l, true
	}
}

// enterBucket runs onEnter (if set) and then applies the per-node extension
// budget exactly once per bucket per phase: a label already marked Dominated
// stays in the bucket at its original position so it still reaches Next for
// release, and doesn't count against budget; any non-dominated label beyond
// budget is deferred to truncated (restored by preparePhase).
func (o *ordered) enterBucket(pos int) {
	o.entered[pos] = true
	if o.onEnter != nil {
		o.onEnter(pos)
	}
	if o.budget <= 0 {
		return
	}

	bucket := o.buckets[pos]
	kept := bucket[:0:0]
	var overflow []*label.Label
	extended := 0
	for _, l := range bucket {
		if l.Dominated {
			kept = append(kept, l)
			continue
		}
		if extended < o.budget {
			kept = append(kept, l)
			extended++
		} else {
			overflow = append(overflow, l)
		}
	}
	o.buckets[pos] = kept
	if len(overflow) > 0 {
		o.truncated[pos] = append(o.truncated[pos], overflow...)
	}
}

// advance moves the cursor to the next bucket in sweep direction, wrapping
// around. Returns false once a full cycle has passed with every bucket
// found empty (the scheduler is exhausted for this phase).
func (o *ordered) advance() bool {
	n := len(o.buckets)
	o.emptyStreak++
	if o.emptyStreak > n {
		return false
	}

	if o.reverse {
		o.cursor--
		if o.cursor < 0 {
			o.cursor = n - 1
		}
	} else {
		o.cursor++
		if o.cursor >= n {
			o.cursor = 0
		}
	}

	return true
}

func (o *ordered) length() int {
	total := 0
	for i := range o.buckets {
		total += len(o.buckets[i]) + len(o.truncated[i])
	}

	return total
}

func (o *ordered) preparePhase() {
	for i := range o.buckets {
		if len(o.truncated[i]) > 0 {
			o.buckets[i] = append(o.buckets[i], o.truncated[i]...)
			o.truncated[i] = o.truncated[i][:0]
		}
		o.entered[i] = false
	}
	o.cursor = startCursor(len(o.buckets), o.reverse)
	o.emptyStreak = 0
}
