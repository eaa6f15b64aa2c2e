// Package preprocess supplements the core label-setting engine with the
// graph-level analyses a real column-generation pricing loop runs before
// and alongside a solve: multi-target Bellman-Ford bounds (used to prune
// arcs or seed dominance shortcuts) and a reachability matrix (used to
// reject a source/sink pair outright without running a sweep).
//
// BellmanFord here is multi-target and direction-aware (forward or
// backward), with deterministic sorted node/arc iteration, an explicit
// negative-cycle flag instead of a panic, and epsilon-tolerant relaxation.
package preprocess

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/rcspp/graph"
)

// ErrNegativeCycle indicates BellmanFord detected a negative-weight cycle
// reachable from (forward) or reaching (backward) the target set; the
// returned Distance map is not a valid shortest-distance table.
var ErrNegativeCycle = errors.New("preprocess: graph contains a negative-weight cycle")

// Epsilon is the relaxation tolerance used throughout this package.
const Epsilon = 1e-9

// Distance maps a graph.Node.ID to its shortest distance to/from the target
// set BellmanFord was run with. Unreached nodes map to math.Inf(1).
type Distance map[uint64]float64

type arcRelaxation struct {
	originID, destID uint64
	weight           float64
}

// BellmanFord computes, for every node, its shortest distance to the
// nearest node in targets (forward=false: "distance from this node to any
// target") or from the nearest target to this node (forward=true:
// "distance from any target to this node"), using each arc's base Cost as
// its weight. Returns ErrNegativeCycle (with a partial, invalid Distance)
// if relaxation does not converge within len(nodes) rounds.
//
// Complexity: O(V*E). Deterministic: arcs are visited in ID order every
// round, independent of map iteration order.
func BellmanFord(g *graph.Graph, targets []uint64, forward bool) (Distance, error) {
	nodes := g.Nodes()
	dist := make(Distance, len(nodes))
	for _, n := range nodes {
		dist[n.ID] = math.Inf(1)
	}
	for _, t := range targets {
		dist[t] = 0
	}

	relaxations := buildRelaxations(g)
	if !forward {
		reverseRelaxations(relaxations)
	}

	for i := 0; i < len(nodes); i++ {
		modified := false
		lastRound := i == len(nodes)-1
		for _, r := range relaxations {
			if forward {
				if dist[r.originID]+r.weight < dist[r.destID]-Epsilon {
					dist[r.destID] = dist[r.originID] + r.weight
					modified = true
				}
			} else {
				if dist[r.destID]+r.weight < dist[r.originID]-Epsilon {
					dist[r.originID] = dist[r.destID] + r.weight
					modified = true
				}
			}
			if lastRound && modified {
				return dist, ErrNegativeCycle
			}
		}
		if !modified {
			break
		}
	}

	return dist, nil
}

func buildRelaxations(g *graph.Graph) []arcRelaxation {
	arcs := g.Arcs() // already ID-sorted
	out := make([]arcRelaxation, len(arcs))
	for i, a := range arcs {
		out[i] = arcRelaxation{originID: a.Origin.ID, destID: a.Dest.ID, weight: a.Cost}
	}

	return out
}

func reverseRelaxations(r []arcRelaxation) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

// Reachable reports whether node id was assigned a finite distance — i.e.
// some target in the set BellmanFord ran with can reach (forward) or be
// reached from (backward) it.
func (d Distance) Reachable(id uint64) bool {
	v, ok := d[id]

	return ok && !math.IsInf(v, 1)
}

// SortedIDs returns the node IDs present in d, ascending — a deterministic
// iteration helper for callers building reports or golden-output tests.
func (d Distance) SortedIDs() []uint64 {
	ids := make([]uint64, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
