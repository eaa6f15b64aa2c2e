package label

import "github.com/katalvlaran/rcspp/resource"

// Pool is a bounded-growth label arena: Acquire reuses a released slot when
// one is available and otherwise grows the arena geometrically (a fresh
// label every call, with no reuse, is Pool constructed with WithoutReuse).
//
// Slots are stored as *Label so that growing the index slice never moves a
// previously acquired Label in memory — only the slice of pointers is
// reallocated, never the labels themselves.
//
// A Pool is not safe for concurrent use; package rcspp's solve loop owns a
// single Pool per Solve call, run on a single goroutine.
type Pool struct {
	slots   []*Label
	free    []*Label
	nextID  uint64
	growth  float64
	created int
	reused  int
	noReuse bool
}

// PoolOption configures a Pool at construction.
type PoolOption func(*Pool)

// WithGrowthFactor overrides the geometric growth factor applied when the
// arena's backing slice is full. Default 1.5. Factors <= 1.0 are clamped to
// 2.0 (geometric growth requires factor > 1).
func WithGrowthFactor(factor float64) PoolOption {
	return func(p *Pool) {
		if factor <= 1.0 {
			factor = 2.0
		}
		p.growth = factor
	}
}

// WithoutReuse disables slot reuse: every Acquire allocates a fresh Label
// and Release/ReleaseAll are no-ops. Mirrors the original's unpooled
// get_next_label path.
func WithoutReuse() PoolOption {
	return func(p *Pool) { p.noReuse = true }
}

// NewPool returns an empty Pool with initial capacity reserved for size
// labels (size may be 0).
func NewPool(size int, opts ...PoolOption) *Pool {
	p := &Pool{slots: make([]*Label, 0, size), growth: 1.5}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Acquire returns a fresh Label at endNode, seeded from template (typically
// a graph.Node.Template clone), with a monotonically increasing ID unique
// within this Pool's lifetime. It reuses a released slot when available
// (Reused telemetry increments), otherwise grows the arena (Created
// telemetry increments).
func (p *Pool) Acquire(endNode uint64, template resource.Composition) *Label {
	return p.acquire(endNode, NoArc, template.Clone())
}

// AcquireExtension returns a pooled Label slot holding the result of
// extending some predecessor across arc inArc (the (endNode, inArc,
// resource) triple Label.Extend computed), reusing a released slot exactly
// as Acquire does. Package rcspp's solve loop calls this instead of storing
// the Label value Extend returns directly, so every live label - root or
// extended - lives in one arena.
func (p *Pool) AcquireExtension(endNode, inArc uint64, resource resource.Composition) *Label {
	return p.acquire(endNode, inArc, resource)
}

func (p *Pool) acquire(endNode, inArc uint64, resource resource.Composition) *Label {
	id := p.nextID
	p.nextID++

	if !p.noReuse && len(p.free) > 0 {
		l := p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
		*l = Label{ID: id, EndNode: endNode, InArc: inArc, Resource: resource}
		p.reused++

		return l
	}

	if len(p.slots) == cap(p.slots) {
		p.growArena()
	}
	l := &Label{ID: id, EndNode: endNode, InArc: inArc, Resource: resource}
	p.slots = append(p.slots, l)
	p.created++

	return l
}

// Release returns a label's slot to the free list for reuse by a future
// Acquire. A no-op when the Pool was built with WithoutReuse.
func (p *Pool) Release(l *Label) {
	if p.noReuse {
		return
	}
	p.free = append(p.free, l)
}

// ReleaseAll returns every slot to the free list, for reuse across
// successive phases of a single Solve call without reallocating the arena.
func (p *Pool) ReleaseAll() {
	if p.noReuse {
		return
	}
	p.free = p.free[:0]
	p.free = append(p.free, p.slots...)
}

// Created returns the number of labels allocated fresh (never reused).
func (p *Pool) Created() int { return p.created }

// Reused returns the number of Acquire calls satisfied from the free list.
func (p *Pool) Reused() int { return p.reused }

// Len returns the number of slots currently allocated (live + free).
func (p *Pool) Len() int { return len(p.slots) }

func (p *Pool) growArena() {
	newCap := int(float64(cap(p.slots))*p.growth) + 1
	grown := make([]*Label, len(p.slots), newCap)
	copy(grown, p.slots)
	p.slots = grown
}
