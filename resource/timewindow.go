package resource

// timeWindowComponent is the time-window additive kind: like the
// additive kind, but extension clamps to a per-arc lower bound and
// feasibility checks against the upper bound of the node currently ending
// the path. Cost is always 0 — time windows gate feasibility, they do not by
// themselves contribute to the objective (pair with an additive cost kind
// for travel-time-as-cost).
type timeWindowComponent struct {
	value float64 // e.g. arrival time at the current node
	upper float64 // this node's own time-window upper bound
}

// timeWindowStep is the Operator a per-arc extender applies: the arc's
// travel contribution plus the destination node's [lower, upper] window,
// both captured once when the Extender was built for this arc.
type timeWindowStep struct {
	travel float64
	lower  float64
	upper  float64
}

// NewTimeWindow returns a fresh time-window component with the given initial
// value (typically 0 at a source) and the source node's own upper bound.
func NewTimeWindow(initial, upper float64) Component {
	return timeWindowComponent{value: initial, upper: upper}
}

// TimeWindowOperator builds the Operator an Extender applies for a
// time-window kind crossing an arc: travel is the arc's travel time; lower
// and upper are the destination node's time-window bounds.
func TimeWindowOperator(travel, lower, upper float64) Operator {
	return timeWindowStep{travel: travel, lower: lower, upper: upper}
}

func (c timeWindowComponent) Extend(op Operator) Component {
	step, ok := op.(timeWindowStep)
	if !ok {
		return c
	}
	value := c.value + step.travel
	if value < step.lower {
		value = step.lower
	}

	return timeWindowComponent{value: value, upper: step.upper}
}

func (c timeWindowComponent) Feasible() bool { return c.value <= c.upper }

func (c timeWindowComponent) Cost() float64 { return 0 }

func (c timeWindowComponent) Dominates(other Component) bool {
	o, ok := other.(timeWindowComponent)
	if !ok {
		return false
	}

	return c.value <= o.value
}

func (c timeWindowComponent) Clone() Component { return c }

// TimeWindowValue extracts the current accumulated value (e.g. arrival time)
// of a time-window component.
func TimeWindowValue(v Component) (float64, bool) {
	t, ok := v.(timeWindowComponent)
	if !ok {
		return 0, false
	}

	return t.value, true
}
