// Package schedule provides the label-extension order a solve loop pulls
// from: which unprocessed label to extend next, and how many labels may be
// extended per node before the scheduler truncates and defers the rest to
// a later phase.
//
// Three variants are provided: Simple is unordered FIFO with a per-node
// extension budget; Pushing and Pulling are both node-ordered, cycling
// through Node.Pos buckets in ascending order and truncating/restoring per
// phase, built on the same ordered implementation (package ordered.go).
// They differ in who performs extension: Simple and Pushing hand a label
// back to the driver, which extends it outward across its own out-arcs;
// Pulling instead extends inbound, pulling every non-dominated label
// tracked at a node's predecessors across the connecting arc the first
// time its cursor reaches that node, so the driver must skip its own
// extension step for labels Pulling returns (see SelfExtends).
package schedule

import "github.com/katalvlaran/rcspp/label"

// Scheduler orders the unprocessed labels a solve loop extends.
//
// Dominated labels must still be pushed (so the scheduler can discard them
// without counting against a node's budget), and Next still returns them —
// the caller (package rcspp's solve loop) is responsible for releasing a
// dominated label back to its pool.
type Scheduler interface {
	// Push enqueues a freshly accepted label for future extension.
	Push(l *label.Label)

	// Next returns the next label. ok is false once the scheduler is
	// exhausted for the current phase; labels truncated during this phase
	// stay held (and counted by Len) until PreparePhase restores them. The returned label
	// may be Dominated; the caller must check and release it rather than
	// extend it.
	Next() (l *label.Label, ok bool)

	// Len reports the number of labels currently queued (including
	// truncated labels held for the next phase).
	Len() int

	// PreparePhase resets any per-phase budget bookkeeping and folds
	// truncated labels back into the queue, restarting the sweep with the
	// work left unfinished from the previous phase.
	PreparePhase()

	// SelfExtends reports whether this scheduler performs a label's
	// extension itself (Pulling) rather than relying on the driver's
	// generic out-arc extension step (Simple, Pushing).
	SelfExtends() bool
}
