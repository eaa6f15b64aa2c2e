// ConnectivityMatrix answers source/sink (and node/node) reachability
// queries in O(1) after a one-time O(V+E) build, by condensing the graph
// into strongly connected components and propagating a bitset of
// reachable node indices across the resulting DAG in reverse topological
// order: SCC condensation, a per-SCC 64-bit-word bitset, and reverse-topo
// OR-propagation. Tarjan's algorithm runs iteratively with an explicit
// frame stack rather than recursively, since Go gives no recursion-depth
// guard; math/bits.TrailingZeros64 drives bitset iteration, and node IDs are
// translated to dense indices through an explicit map, the same way an
// adjacency-matrix representation would.
package preprocess

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/rcspp/graph"
)

// ConnectivityMatrix is a precomputed reachability index over a graph.Graph
// snapshot. It holds a pointer to no live graph state after Build returns;
// callers must call Build again after topology changes (arc delete/restore,
// node addition) to keep queries accurate.
type ConnectivityMatrix struct {
	nodeIDs   []uint64
	indexOf   map[uint64]int
	sccOf     []int
	sccBits   [][]uint64 // sccBits[s] is a ceil(N/64)-word bitset: bit j set means SCC s reaches node index j
	words     int
	built     bool
	sourceIDs []uint64
	sinkIDs   []uint64
}

// NewConnectivityMatrix returns an empty, unbuilt ConnectivityMatrix. Call
// Build before issuing queries, or rely on Reachable's lazy build.
func NewConnectivityMatrix() *ConnectivityMatrix {
	return &ConnectivityMatrix{indexOf: make(map[uint64]int)}
}

// Build computes the reachability bitset for g's current topology: an
// iterative Tarjan pass finds strongly connected components, a condensed
// DAG is formed over them, and reachability is propagated to every SCC by
// OR-ing children's bitsets into their parents' in reverse topological
// order. Nodes in the same SCC share one bitset row, so memory is
// proportional to (#SCCs * ceil(N/64)) words rather than N^2 bits.
//
// Complexity: O(V+E) to condense, O(E_scc * ceil(N/64)) to propagate.
func (c *ConnectivityMatrix) Build(g *graph.Graph) {
	nodes := g.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	n := len(nodes)
	c.nodeIDs = make([]uint64, n)
	c.indexOf = make(map[uint64]int, n)
	for i, nd := range nodes {
		c.nodeIDs[i] = nd.ID
		c.indexOf[nd.ID] = i
	}
	c.sourceIDs = g.SourceIDs()
	c.sinkIDs = g.SinkIDs()

	if n == 0 {
		c.sccOf = nil
		c.sccBits = nil
		c.words = 0
		c.built = true
		return
	}

	adj := make([][]int, n)
	for i, nd := range nodes {
		for _, a := range nd.OutArcs {
			if j, ok := c.indexOf[a.Dest.ID]; ok {
				adj[i] = append(adj[i], j)
			}
		}
	}

	sccOf, sccCount := tarjanSCC(adj)
	c.words = (n + 63) / 64

	members := make([][]int, sccCount)
	for v, s := range sccOf {
		members[s] = append(members[s], v)
	}

	condAdj := make([][]int, sccCount)
	seen := make([]map[int]bool, sccCount)
	for s := range seen {
		seen[s] = make(map[int]bool)
	}
	for u := range adj {
		su := sccOf[u]
		for _, v := range adj[u] {
			sv := sccOf[v]
			if su != sv && !seen[su][sv] {
				seen[su][sv] = true
				condAdj[su] = append(condAdj[su], sv)
			}
		}
	}

	sccBits := make([][]uint64, sccCount)
	for s := range sccBits {
		sccBits[s] = make([]uint64, c.words)
		for _, v := range members[s] {
			sccBits[s][v>>6] |= 1 << uint(v&63)
		}
	}

	topo := kahnTopo(condAdj, sccCount)
	for i := len(topo) - 1; i >= 0; i-- {
		u := topo[i]
		for _, v := range condAdj[u] {
			for w := 0; w < c.words; w++ {
				sccBits[u][w] |= sccBits[v][w]
			}
		}
	}

	c.sccOf = sccOf
	c.sccBits = sccBits
	c.built = true
}

// Reachable reports whether node from can reach node to (from == to is
// always reachable: a node trivially reaches itself). Builds lazily from g
// if Build has not yet run. Returns false if either id is unknown to g.
func (c *ConnectivityMatrix) Reachable(g *graph.Graph, from, to uint64) bool {
	if !c.built {
		c.Build(g)
	}
	if from == to {
		if _, ok := c.indexOf[from]; ok {
			return true
		}
		return false
	}

	fi, ok := c.indexOf[from]
	if !ok {
		return false
	}
	ti, ok := c.indexOf[to]
	if !ok {
		return false
	}

	s := c.sccOf[fi]
	word := c.sccBits[s][ti>>6]

	return (word>>uint(ti&63))&1 != 0
}

// SourceSinkMap returns, for every registered source node, the sorted list
// of sink node IDs it can reach — the precomputed table a pricing driver
// consults to skip a source/sink pair outright without running a sweep.
// Builds lazily from g if Build has not yet run.
func (c *ConnectivityMatrix) SourceSinkMap(g *graph.Graph) map[uint64][]uint64 {
	if !c.built {
		c.Build(g)
	}
	sinkSet := make(map[uint64]bool, len(c.sinkIDs))
	for _, id := range c.sinkIDs {
		sinkSet[id] = true
	}

	out := make(map[uint64][]uint64, len(c.sourceIDs))
	for _, src := range c.sourceIDs {
		si, ok := c.indexOf[src]
		if !ok {
			continue
		}
		var reached []uint64
		s := c.sccOf[si]
		row := c.sccBits[s]
		for w := 0; w < c.words; w++ {
			word := row[w]
			base := w * 64
			for word != 0 {
				tz := bits.TrailingZeros64(word)
				j := base + tz
				if j < len(c.nodeIDs) && sinkSet[c.nodeIDs[j]] {
					reached = append(reached, c.nodeIDs[j])
				}
				word &= word - 1
			}
		}
		sort.Slice(reached, func(i, j int) bool { return reached[i] < reached[j] })
		out[src] = reached
	}

	return out
}

// tarjanSCC computes strongly connected components of the graph described
// by adj (adjacency by node index), iteratively with an explicit frame stack
// to avoid recursion depth limits on long chains. Returns a per-node SCC id
// slice and the SCC count.
func tarjanSCC(adj [][]int) ([]int, int) {
	n := len(adj)
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	sccOf := make([]int, n)
	for i := range index {
		index[i] = -1
		sccOf[i] = -1
	}
	var stack []int
	nextIndex := 0
	sccCount := 0

	type frame struct {
		v, next int
	}
	for start := 0; start < n; start++ {
		if index[start] != -1 {
			continue
		}

		var dfs []frame
		dfs = append(dfs, frame{v: start, next: 0})
		for len(dfs) > 0 {
			top := &dfs[len(dfs)-1]
			v := top.v

			if index[v] == -1 {
				index[v] = nextIndex
				low[v] = nextIndex
				nextIndex++
				stack = append(stack, v)
				onStack[v] = true
			}

			if top.next < len(adj[v]) {
				w := adj[v][top.next]
				top.next++
				if index[w] == -1 {
					dfs = append(dfs, frame{v: w, next: 0})
					continue
				}
				if onStack[w] && index[w] < low[v] {
					low[v] = index[w]
				}
				continue
			}

			dfs = dfs[:len(dfs)-1]
			if len(dfs) > 0 {
				parent := &dfs[len(dfs)-1]
				if low[v] < low[parent.v] {
					low[parent.v] = low[v]
				}
			}

			if low[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					sccOf[w] = sccCount
					if w == v {
						break
					}
				}
				sccCount++
			}
		}
	}

	return sccOf, sccCount
}

// kahnTopo returns a topological order of the condensed DAG condAdj (no
// cycles by construction — SCCs already collapsed every cycle).
func kahnTopo(condAdj [][]int, count int) []int {
	indeg := make([]int, count)
	for _, adj := range condAdj {
		for _, v := range adj {
			indeg[v]++
		}
	}

	var queue []int
	for i := 0; i < count; i++ {
		if indeg[i] == 0 {
			queue = append(queue, i)
		}
	}

	topo := make([]int, 0, count)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		topo = append(topo, u)
		for _, v := range condAdj[u] {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return topo
}
