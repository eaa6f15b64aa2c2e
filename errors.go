package rcspp

import "errors"

// Sentinel errors the root package returns. Topology contradictions
// (negative-weight cycles) are never observed here: preprocess.BellmanFord
// runs externally to a Solve call and its ErrNegativeCycle is the caller's
// to handle before constructing a Problem, since preprocessing is external
// to the label-setting sweep.
var (
	// ErrNoResourceKinds indicates Solve was called before any AddResource
	// call registered a kind — a misconfiguration, since a zero-arity
	// Composition cannot carry even the mandatory cost kind.
	ErrNoResourceKinds = errors.New("rcspp: no resource kinds registered")

	// ErrUnsortedGraph indicates a Pushing or Pulling scheduler variant was
	// requested but SortNodes has never been run, so every Node.Pos is
	// still its zero value — a misconfiguration, since both variants rely
	// on Pos to bucket labels.
	ErrUnsortedGraph = errors.New("rcspp: graph must be sorted before using a node-ordered scheduler")

	// ErrUnknownSchedulerVariant indicates SolveConfig named a variant this
	// build does not recognize.
	ErrUnknownSchedulerVariant = errors.New("rcspp: unknown scheduler variant")
)
