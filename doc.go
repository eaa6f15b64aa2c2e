// Package rcspp implements a resource-constrained shortest path label-
// setting engine for column-generation pricing subproblems, as used by
// vehicle-routing master problems to price new columns against a dual
// vector.
//
// A Problem wires together a directed graph (package graph), a
// configurable set of resource kinds (package resource — additive cost,
// time windows, ng-route bitsets, or any kind implementing the four-
// operation Component capability), and a label-setting sweep that extends
// labels along arcs while a dominance bookkeeper (package dominance) prunes
// comparable labels at every node. Three interchangeable extension orders
// are available (package schedule): an unordered FIFO, and two node-ordered
// sweeps from sources to sinks ("pushing", where each label is extended
// across its out-arcs, and "pulling", where each node pulls labels in across
// its in-arcs).
//
// Labels are arena-allocated (package label) and carry no predecessor
// pointer; a surviving sink label's path is recovered after the fact by
// re-probing the dominance bookkeeper's history (package solution).
//
// Package preprocess supplies the two external collaborators a pricing
// loop typically runs around a sweep: a multi-target Bellman-Ford distance
// table (for arc-pruning bounds) and a strongly-connected-component-
// compressed reachability matrix (to reject a source/sink pair outright).
//
// Quick start:
//
//	p := rcspp.NewProblem()
//	costIdx := p.AddResource("cost",
//		func(uint64, interface{}) resource.Component { return resource.NewAdditive(0, true) },
//		func(ctx resource.ArcContext) resource.Operator { return resource.AdditiveOperator(ctx.Cost) },
//	)
//	p.AddNode(0, true, false, nil)
//	p.AddNode(1, false, true, nil)
//	p.AddArc(0, 1, nil, 3.0, nil, nil)
//	solutions, err := p.Solve()
//
// Under the hood, everything is organized under focused subpackages:
//
//	graph/       — Node, Arc, Graph: construction, soft delete/restore, stable ordering
//	resource/    — resource kinds, Composition, Extender, dual-cost update
//	label/       — Label, Pool (arena allocation)
//	dominance/   — per-node non-dominated bookkeeping
//	schedule/    — Scheduler interface + simple/pushing/pulling + truncation
//	solution/    — path reconstruction (single + diversified), Solution type
//	preprocess/  — BellmanFord, ConnectivityMatrix
package rcspp
