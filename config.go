package rcspp

import "math"

// SchedulerVariant selects which schedule.Scheduler implementation Solve
// extends labels with.
type SchedulerVariant int

const (
	// Simple is the unordered FIFO scheduler (schedule.Simple). Default.
	Simple SchedulerVariant = iota

	// Pushing is the forward node-ordered scheduler (schedule.Pushing).
	// Requires the graph to have been sorted (graph.Graph.SortNodes).
	Pushing

	// Pulling is the destination-triggered node-ordered scheduler
	// (schedule.Pulling): it sweeps the same ascending Node.Pos order as
	// Pushing but extends labels inbound from each node's in-arc origins.
	// Requires the graph to have been sorted (graph.Graph.SortNodes).
	Pulling
)

// SolveConfig configures one Solve call. The zero value is not meant to be
// used directly — build one with DefaultConfig and SolveOption overrides,
// the usual functional-option shape.
type SolveConfig struct {
	Variant SchedulerVariant

	// MaxIterations bounds the number of main-loop turns. Default: unbounded
	// (math.MaxUint64).
	MaxIterations uint64

	// StopAfterSolutions halts the loop once this many sink-reaching
	// labels have been recorded. Default: 1.
	StopAfterSolutions uint32

	// NumLabelsPerNode bounds how many labels a scheduler extends per node
	// per phase before truncating the rest to the next phase. 0 means
	// unbounded. Default: 0.
	NumLabelsPerNode uint32

	// ReturnDominatedSolutions, when true, includes sink labels that were
	// later dominated in the returned solution set instead of discarding
	// them. Default: false.
	ReturnDominatedSolutions bool

	// Seed is reserved for scheduler variants or tie-break policies that
	// need deterministic pseudo-randomness; the variants in this package
	// are fully deterministic given topology and therefore ignore it, but
	// it is threaded through so a caller wiring diversification or tabu
	// extensions (out of scope here) has a stable seed to start from.
	// Default: 0.
	Seed uint64

	// MaxPhases bounds how many PreparePhase restarts Solve performs before
	// giving up on fully draining truncated labels. 0
	// means a single phase (no restart) — most callers with
	// NumLabelsPerNode == 0 never truncate and never need more than one.
	MaxPhases int
}

// SolveOption configures a SolveConfig at construction, a functional-option
// pattern applied over DefaultConfig.
type SolveOption func(*SolveConfig)

// DefaultConfig returns the baseline defaults: unbounded iterations,
// stop after the first solution, unbounded per-node extension budget,
// dominated solutions excluded, zero seed, single phase.
func DefaultConfig() SolveConfig {
	return SolveConfig{
		Variant:                  Simple,
		MaxIterations:            math.MaxUint64,
		StopAfterSolutions:       1,
		NumLabelsPerNode:         0,
		ReturnDominatedSolutions: false,
		Seed:                     0,
		MaxPhases:                1,
	}
}

// WithVariant selects the scheduler variant Solve uses.
func WithVariant(v SchedulerVariant) SolveOption {
	return func(c *SolveConfig) { c.Variant = v }
}

// WithMaxIterations bounds the number of main-loop turns.
func WithMaxIterations(n uint64) SolveOption {
	return func(c *SolveConfig) { c.MaxIterations = n }
}

// WithStopAfterSolutions halts Solve once n sink-reaching labels have been
// recorded. n == 0 is treated as 1 (at least one solution must be sought).
func WithStopAfterSolutions(n uint32) SolveOption {
	return func(c *SolveConfig) {
		if n == 0 {
			n = 1
		}
		c.StopAfterSolutions = n
	}
}

// WithNumLabelsPerNode bounds how many labels a scheduler extends per node
// per phase. 0 means unbounded.
func WithNumLabelsPerNode(n uint32) SolveOption {
	return func(c *SolveConfig) { c.NumLabelsPerNode = n }
}

// WithReturnDominatedSolutions includes later-dominated sink labels in the
// returned solution set.
func WithReturnDominatedSolutions() SolveOption {
	return func(c *SolveConfig) { c.ReturnDominatedSolutions = true }
}

// WithSeed sets the seed threaded through to variants that consult it.
func WithSeed(seed uint64) SolveOption {
	return func(c *SolveConfig) { c.Seed = seed }
}

// WithMaxPhases bounds the number of truncation phase-restarts Solve
// performs. n <= 0 is clamped to 1.
func WithMaxPhases(n int) SolveOption {
	return func(c *SolveConfig) {
		if n <= 0 {
			n = 1
		}
		c.MaxPhases = n
	}
}
