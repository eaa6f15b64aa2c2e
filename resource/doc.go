// Package resource implements the resource algebra of the RCSPP label-setting
// engine: per-resource-kind extension/feasibility/cost/dominance, composed
// into a heterogeneous Composition that a Label carries as its accumulated
// state, plus the per-arc Extender bundle that advances a Composition across
// an arc.
//
// Dynamic dispatch: each resource kind's boxed value implements Component,
// called from the inner loop (Composition.Extend/Feasible/Cost/Dominates).
// The composition shape (arity, kind order) is fixed once per Factory and
// never varies at runtime, so call sites are effectively monomorphic even
// though dispatch goes through an interface — spec's "fall back to tagged
// dispatch where [the composition shape] is not [known at compile time]"
// is satisfied by construction rather than by a type switch, since every
// label sharing one Factory has components in the same fixed order.
//
// Standard kinds: NewAdditive (numeric accumulator, e.g. cost/demand),
// NewTimeWindow (additive with per-arc lower clamp, per-node upper bound),
// NewNGSet (bitset union/inclusion, ng-path memory).
package resource
