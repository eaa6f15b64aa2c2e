// Package rcspp ties graph, resource, label, dominance, schedule, and
// solution together into the column-generation pricing sweep itself: the
// label-setting main loop, the Problem facade wiring every sub-package
// through one external API, and the SolveConfig record that parameterizes a
// run.
package rcspp

import (
	"math"
	"sort"

	"github.com/katalvlaran/rcspp/dominance"
	"github.com/katalvlaran/rcspp/graph"
	"github.com/katalvlaran/rcspp/label"
	"github.com/katalvlaran/rcspp/resource"
	"github.com/katalvlaran/rcspp/schedule"
	"github.com/katalvlaran/rcspp/solution"
)

// solve runs the label-setting sweep over g using factory's template/cost
// conventions, per cfg. It is the engine behind Problem.Solve, kept
// free-standing so tests can drive it directly without constructing a full
// Problem.
//
// The sink check and the feasible-extension check are independent ifs, not
// an if/else-if chain, so a label ending at a sink node with outgoing arcs
// (a pass-through sink, e.g. an intermediate depot) is both recorded as a
// solution and extended further — directly here for Simple and Pushing, or
// already under way via the scheduler's own pull step when SelfExtends is
// true (see schedule.Pulling).
func solve(g *graph.Graph, factory *resource.Factory, cfg SolveConfig) ([]solution.Solution, error) {
	if factory.Arity() == 0 {
		return nil, ErrNoResourceKinds
	}

	pool := label.NewPool(g.NodeCount())
	tracker := dominance.NewTracker()

	sched, err := newScheduler(g, cfg, pool, tracker)
	if err != nil {
		return nil, err
	}

	sinkSet := make(map[uint64]bool)
	for _, id := range g.SinkIDs() {
		sinkSet[id] = true
	}

	for _, srcID := range g.SourceIDs() {
		srcNode, gerr := g.GetNode(srcID)
		if gerr != nil {
			return nil, gerr
		}
		root := pool.Acquire(srcID, srcNode.Template)
		tracker.Update(root) // a root label is never dominated by anything yet tracked
		sched.Push(root)
	}

	var recorded []*label.Label
	bestCost := posInf
	var iter uint64
	maxPhases := cfg.MaxPhases
	if maxPhases <= 0 {
		maxPhases = 1 // 0 means a single phase, see SolveConfig.MaxPhases
	}
	for phase := 0; phase < maxPhases; phase++ {
		sched.PreparePhase()

		stop := false
		for !stop && iter < cfg.MaxIterations {
			l, ok := sched.Next()
			if !ok {
				break
			}
			iter++

			if l.Dominated {
				pool.Release(l)
				continue
			}

			// The best-cost slot only decreases over the run: a sink hit is
			// recorded exactly when it strictly improves on it, so recorded
			// never holds a label with a cost a later entry moves backward
			// from.
			if sinkSet[l.EndNode] && l.Cost() < bestCost {
				bestCost = l.Cost()
				recorded = append(recorded, l)
				if uint32(len(recorded)) >= cfg.StopAfterSolutions {
					stop = true
				}
			}

			if !sched.SelfExtends() && l.Cost() < posInf {
				node, gerr := g.GetNode(l.EndNode)
				if gerr != nil {
					return nil, gerr
				}
				for _, arc := range node.OutArcs {
					next, xerr := l.Extend(arc.ID, arc.Dest.ID, arc.Extender)
					if xerr != nil {
						continue
					}
					m := pool.AcquireExtension(arc.Dest.ID, arc.ID, next.Resource)
					if !m.Feasible() {
						pool.Release(m)
						continue
					}
					accepted, _ := tracker.Update(m)
					if accepted {
						sched.Push(m)
					} else {
						pool.Release(m)
					}
				}
			}
		}

		if stop || sched.Len() == 0 {
			break
		}
	}

	return buildSolutions(g, tracker, recorded, cfg)
}

// posInf backs the main loop's "cost < +∞" guard — effectively always true
// for a feasible, non-dominated label, but kept explicit for clarity.
var posInf = math.Inf(1)

func newScheduler(g *graph.Graph, cfg SolveConfig, pool *label.Pool, tracker *dominance.Tracker) (schedule.Scheduler, error) {
	budget := int(cfg.NumLabelsPerNode)
	switch cfg.Variant {
	case Simple:
		return schedule.NewSimple(budget), nil
	case Pushing, Pulling:
		if !g.Sorted() {
			return nil, ErrUnsortedGraph
		}
		posOf := func(id uint64) int {
			n, err := g.GetNode(id)
			if err != nil {
				return 0
			}
			return int(n.Pos)
		}
		if cfg.Variant == Pushing {
			return schedule.NewPushing(g.NodeCount(), budget, posOf), nil
		}
		return schedule.NewPulling(g, pool, tracker, budget, posOf), nil
	default:
		return nil, ErrUnknownSchedulerVariant
	}
}

// buildSolutions reconstructs a Solution per recorded label and returns them
// sorted ascending by Cost — recorded itself is cost-decreasing in append
// order (the best-cost gate in solve only appends on improvement), and the
// dominance/ReturnDominatedSolutions filter and skipped reconstruction
// failures only drop entries, so the final sort is what turns that order
// into ascending cost.
func buildSolutions(g *graph.Graph, tracker *dominance.Tracker, recorded []*label.Label, cfg SolveConfig) ([]solution.Solution, error) {
	var out []solution.Solution
	for _, l := range recorded {
		if l.Dominated && !cfg.ReturnDominatedSolutions {
			continue
		}
		sol, err := solution.Reconstruct(g, tracker, l)
		if err != nil {
			// Reconstruction failure is non-fatal: skip this recorded label
			// rather than failing the whole Solve call.
			continue
		}
		out = append(out, sol)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })

	return out, nil
}
