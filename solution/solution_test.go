package solution_test

import (
	"testing"

	"github.com/katalvlaran/rcspp/dominance"
	"github.com/katalvlaran/rcspp/graph"
	"github.com/katalvlaran/rcspp/label"
	"github.com/katalvlaran/rcspp/resource"
	"github.com/katalvlaran/rcspp/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildChain constructs source(0) -3-> mid(1) -4-> sink(2), a single-kind
// additive-cost factory, and returns the graph alongside the factory's
// zero-valued template (every node shares it here).
func buildChain(t *testing.T) (*graph.Graph, resource.Composition) {
	t.Helper()

	f := resource.NewFactory()
	f.AddKind("cost",
		func(uint64, interface{}) resource.Component { return resource.NewAdditive(0, true) },
		func(ctx resource.ArcContext) resource.Operator { return resource.AdditiveOperator(ctx.Cost) },
	)
	tmpl, err := f.BuildTemplate(0, nil)
	require.NoError(t, err)

	g := graph.NewGraph()
	_, err = g.AddNode(0, true, false, tmpl)
	require.NoError(t, err)
	_, err = g.AddNode(1, false, false, tmpl)
	require.NoError(t, err)
	_, err = g.AddNode(2, false, true, tmpl)
	require.NoError(t, err)

	ext1, err := f.BuildExtender(resource.ArcContext{OriginID: 0, DestID: 1, Cost: 3})
	require.NoError(t, err)
	_, err = g.AddArc(0, 1, nil, 3, ext1, nil)
	require.NoError(t, err)

	ext2, err := f.BuildExtender(resource.ArcContext{OriginID: 1, DestID: 2, Cost: 4})
	require.NoError(t, err)
	_, err = g.AddArc(1, 2, nil, 4, ext2, nil)
	require.NoError(t, err)

	return g, tmpl
}

// walkChain runs the sweep (by hand, without package rcspp's driver) and
// returns the tracker that ends up holding the non-dominated labels at
// every node, plus the sink's surviving label.
func walkChain(t *testing.T, g *graph.Graph) (*dominance.Tracker, *label.Label) {
	t.Helper()

	pool := label.NewPool(0)
	tracker := dominance.NewTracker()

	srcNode, err := g.GetNode(0)
	require.NoError(t, err)
	root := pool.Acquire(0, srcNode.Template)
	accepted, _ := tracker.Update(root)
	require.True(t, accepted)

	arc01, err := g.GetArc(findArc(t, g, 0, 1))
	require.NoError(t, err)
	next1, err := root.Extend(arc01.ID, 1, arc01.Extender)
	require.NoError(t, err)
	l1 := pool.AcquireExtension(1, arc01.ID, next1.Resource)
	accepted, _ = tracker.Update(l1)
	require.True(t, accepted)

	arc12, err := g.GetArc(findArc(t, g, 1, 2))
	require.NoError(t, err)
	next2, err := l1.Extend(arc12.ID, 2, arc12.Extender)
	require.NoError(t, err)
	sink := pool.AcquireExtension(2, arc12.ID, next2.Resource)
	accepted, _ = tracker.Update(sink)
	require.True(t, accepted)

	return tracker, sink
}

func findArc(t *testing.T, g *graph.Graph, origin, dest uint64) uint64 {
	t.Helper()
	for _, a := range g.Arcs() {
		if a.Origin.ID == origin && a.Dest.ID == dest {
			return a.ID
		}
	}
	t.Fatalf("no arc %d->%d", origin, dest)

	return 0
}

func TestReconstruct_TrivialChain(t *testing.T) {
	g, _ := buildChain(t)
	tracker, sink := walkChain(t, g)

	sol, err := solution.Reconstruct(g, tracker, sink)
	require.NoError(t, err)

	assert.Equal(t, 7.0, sol.Cost)
	assert.Equal(t, []uint64{0, 1, 2}, sol.NodePath)
	assert.Len(t, sol.ArcPath, 2)
}

func TestReconstructAll_SinglePathWhenNoTies(t *testing.T) {
	g, _ := buildChain(t)
	tracker, sink := walkChain(t, g)

	sols, err := solution.ReconstructAll(g, tracker, sink)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Equal(t, []uint64{0, 1, 2}, sols[0].NodePath)
}
