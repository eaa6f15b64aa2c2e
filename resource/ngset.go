package resource

// ngSetComponent is the set/bitset resource kind, used for visited-node
// tracking and ng-path memory: a set of node IDs, with union extension,
// subset dominance, and intersection-with-forbidden feasibility.
//
// Represented as a map[uint64]struct{} rather than a dense bit-vector indexed
// by Node.Pos, since ng-sets are commonly built and extended before
// Graph.SortNodes has assigned a stable Pos to every node — the Pos ordering
// only holds once sorting has actually been applied; a map keeps membership
// correct independent of node ID range or sort state.
type ngSetComponent struct {
	members   map[uint64]struct{}
	forbidden map[uint64]struct{} // the current (destination) node's forbidden set
}

// ngSetStep is the Operator applied when crossing an arc: intersect the
// current set with the origin node's ng-neighborhood, then union in add
// (typically the origin node's own ID — spec's "ng-path policy"). forbidden
// is the destination node's forbidden set, captured once at extender
// construction.
type ngSetStep struct {
	neighborhood map[uint64]struct{}
	add          uint64
	forbidden    map[uint64]struct{}
}

// NewNGSet returns a fresh, empty ng-set component scoped to the given
// node's forbidden set (nil means "nothing forbidden here").
func NewNGSet(forbidden map[uint64]struct{}) Component {
	return ngSetComponent{members: map[uint64]struct{}{}, forbidden: forbidden}
}

// NGSetOperator builds the Operator an Extender applies for an ng-set kind
// crossing an arc: neighborhood is the origin node's ng-neighborhood (nodes
// whose membership survives the move), add is the node ID unioned in
// (typically the origin node's own ID), and forbidden is the destination
// node's forbidden set.
func NGSetOperator(neighborhood map[uint64]struct{}, add uint64, forbidden map[uint64]struct{}) Operator {
	return ngSetStep{neighborhood: neighborhood, add: add, forbidden: forbidden}
}

func (c ngSetComponent) Extend(op Operator) Component {
	step, ok := op.(ngSetStep)
	if !ok {
		return c
	}
	next := make(map[uint64]struct{}, len(c.members)+1)
	for id := range c.members {
		if _, keep := step.neighborhood[id]; keep {
			next[id] = struct{}{}
		}
	}
	next[step.add] = struct{}{}

	return ngSetComponent{members: next, forbidden: step.forbidden}
}

func (c ngSetComponent) Feasible() bool {
	for id := range c.members {
		if _, hit := c.forbidden[id]; hit {
			return false
		}
	}

	return true
}

func (c ngSetComponent) Cost() float64 { return 0 }

// Dominates implements A ⊆ B: c dominates other iff every member of c is
// also a member of other (a smaller visited-set leaves strictly more future
// freedom, so it is "at least as good").
func (c ngSetComponent) Dominates(other Component) bool {
	o, ok := other.(ngSetComponent)
	if !ok {
		return false
	}
	for id := range c.members {
		if _, present := o.members[id]; !present {
			return false
		}
	}

	return true
}

func (c ngSetComponent) Clone() Component {
	members := make(map[uint64]struct{}, len(c.members))
	for id := range c.members {
		members[id] = struct{}{}
	}

	return ngSetComponent{members: members, forbidden: c.forbidden}
}

// NGSetMembers returns a snapshot slice of the node IDs currently in v's
// ng-set. Returns nil if v is not an ng-set component.
func NGSetMembers(v Component) []uint64 {
	c, ok := v.(ngSetComponent)
	if !ok {
		return nil
	}
	out := make([]uint64, 0, len(c.members))
	for id := range c.members {
		out = append(out, id)
	}

	return out
}
