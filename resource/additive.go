package resource

// additiveComponent is the numeric-additive resource kind: a plain
// accumulator used for cost, demand, or any other scalar quantity that only
// ever grows forward along a path.
//
// Feasibility is trivial unless bounds are configured (hasBounds), in which
// case it is the closed interval [min, max]. Dominance is "smaller is at
// least as good" (<=), optionally with an epsilon tolerance fixed per kind
// at construction time — never mixed with exact comparison within the same
// kind.
type additiveComponent struct {
	value float64

	isCost    bool // if true, Cost() returns value; else 0 — often 0 for non-cost resources
	hasBounds bool
	min, max  float64
	epsilon   float64
}

// additiveAdd is the Operator a per-arc extender applies to an additive
// component: the arc's contribution to the accumulator (travel time, demand
// consumed, literal cost, ...).
type additiveAdd float64

// NewAdditive returns a fresh additive-numeric component with the given
// initial value. isCost selects whether this kind contributes to the
// objective; bounds (min <= max) gate feasibility when enabled via
// WithAdditiveBounds; epsilon (>= 0) sets a tolerance for Dominates, used
// only for floating-point-sensitive kinds (default 0: exact comparison).
func NewAdditive(initial float64, isCost bool, opts ...AdditiveOption) Component {
	c := additiveComponent{value: initial, isCost: isCost}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// AdditiveOption configures an additive component at construction time.
type AdditiveOption func(*additiveComponent)

// WithAdditiveBounds enables closed-interval feasibility [min, max].
func WithAdditiveBounds(min, max float64) AdditiveOption {
	return func(c *additiveComponent) {
		c.hasBounds = true
		c.min = min
		c.max = max
	}
}

// WithAdditiveEpsilon sets a tolerance used by Dominates for floating-point
// accumulators prone to rounding noise (e.g. summed travel times). Pass 0
// (the default) for exact comparison.
func WithAdditiveEpsilon(epsilon float64) AdditiveOption {
	return func(c *additiveComponent) { c.epsilon = epsilon }
}

func (c additiveComponent) Extend(op Operator) Component {
	add, _ := op.(additiveAdd)
	c.value += float64(add)

	return c
}

func (c additiveComponent) Feasible() bool {
	if !c.hasBounds {
		return true
	}

	return c.value >= c.min && c.value <= c.max
}

func (c additiveComponent) Cost() float64 {
	if c.isCost {
		return c.value
	}

	return 0
}

func (c additiveComponent) Dominates(other Component) bool {
	o, ok := other.(additiveComponent)
	if !ok {
		return false
	}

	return c.value <= o.value+c.epsilon
}

func (c additiveComponent) Clone() Component { return c }

// Value returns the component's current accumulated value.
func (c additiveComponent) Value() float64 { return c.value }

// AdditiveValue extracts the current value of an additive component, for
// callers that need to read a label's cost coordinate directly. Returns
// (0, false) if v is not an additive component.
func AdditiveValue(v Component) (float64, bool) {
	a, ok := v.(additiveComponent)
	if !ok {
		return 0, false
	}

	return a.value, true
}

// AdditiveOperator builds the Operator an Extender applies for an additive
// kind at a given arc: the scalar amount this arc adds to the accumulator.
func AdditiveOperator(amount float64) Operator { return additiveAdd(amount) }
