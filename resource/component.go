package resource

import "errors"

// Sentinel errors for resource configuration and composition.
var (
	// ErrArityMismatch indicates a per-arc or per-node payload tuple did not
	// match the composition's arity.
	ErrArityMismatch = errors.New("resource: payload arity does not match composition arity")

	// ErrUnknownKindIndex indicates a cost-kind index outside [0, arity).
	ErrUnknownKindIndex = errors.New("resource: kind index out of range")

	// ErrNoKinds indicates a Factory was asked to build a Composition with
	// zero registered kinds.
	ErrNoKinds = errors.New("resource: no resource kinds registered")
)

// Operator is the per-arc, per-kind payload an Extender applies when moving a
// Composition across an arc: a travel time, a demand unit, the origin node ID
// for ng-set union, a precomputed time-window lower clamp, etc. Each kind
// defines and interprets its own Operator values; it is opaque to Composition.
type Operator interface{}

// Component is a single resource-kind's boxed value inside a Composition. It
// implements the four operations every resource kind needs: extend,
// feasible, cost, dominates. Implementations must be pure with respect to
// their receiver and argument, except for reading config captured at
// construction time (e.g. a node's time-window bounds, an arc's ng
// neighborhood).
type Component interface {
	// Extend returns the component obtained by applying op to this value
	// along an arc. It does not mutate the receiver.
	Extend(op Operator) Component

	// Feasible reports local feasibility at the node currently ending the
	// path.
	Feasible() bool

	// Cost returns this component's scalar contribution to the objective.
	// Non-cost components return 0.
	Cost() float64

	// Dominates reports whether this component is at least as good as other
	// in this coordinate: true iff a label with this value is at least as
	// good as one with other's.
	Dominates(other Component) bool

	// Clone returns an independent copy of this component, used when a Pool
	// resets a label's resource to a node's template.
	Clone() Component
}

// Kind names a resource-kind slot in a Composition for diagnostics (e.g.
// error messages naming "cost", "time", "capacity", "ng-set").
type Kind struct {
	Name string
}
