package rcspp

import (
	"github.com/katalvlaran/rcspp/graph"
	"github.com/katalvlaran/rcspp/resource"
	"github.com/katalvlaran/rcspp/solution"
)

// Problem is the external facade: graph construction, resource
// registration, solving, and dual-cost updates in one entry point — a single
// struct wiring sub-packages together behind a small surface, with options
// resolved once at Solve time.
type Problem struct {
	graph   *graph.Graph
	factory *resource.Factory
}

// NewProblem returns an empty Problem ready for AddResource/AddNode/AddArc
// calls. Resource kinds must be registered via AddResource before the first
// AddNode or AddArc call, since both build a Composition/Extender against
// the Factory's current arity.
func NewProblem() *Problem {
	return &Problem{graph: graph.NewGraph(), factory: resource.NewFactory()}
}

// AddResource registers a resource kind, returning its 0-based index in the
// composition. Must be called before any AddNode or
// AddArc call that should carry this kind.
func (p *Problem) AddResource(name string, onNode resource.NodeBuilder, onArc resource.ArcBuilder) int {
	return p.factory.AddKind(name, onNode, onArc)
}

// SetCostComponent switches cost computation to delegate entirely to the
// kind at idx, instead of the default sum over every kind.
func (p *Problem) SetCostComponent(idx int) {
	p.factory.SetCostComponent(idx)
}

// AddNode registers a node, building its resource template from every
// registered kind's NodeBuilder. payloads is keyed by kind name; a kind
// absent from payloads receives a nil payload.
func (p *Problem) AddNode(id uint64, source, sink bool, payloads map[string]interface{}) (*graph.Node, error) {
	tmpl, err := p.factory.BuildTemplate(id, payloads)
	if err != nil {
		return nil, err
	}

	return p.graph.AddNode(id, source, sink, tmpl)
}

// AddArc registers a directed arc, building its Extender from every
// registered kind's ArcBuilder. id may be nil to assign the next monotonic
// arc ID. dualRows feeds UpdateReducedCosts.
func (p *Problem) AddArc(originID, destID uint64, id *uint64, cost float64, payloads map[string]interface{}, dualRows []resource.DualRow) (*graph.Arc, error) {
	ext, err := p.factory.BuildExtender(resource.ArcContext{
		OriginID: originID,
		DestID:   destID,
		Cost:     cost,
		Payload:  payloads,
	})
	if err != nil {
		return nil, err
	}

	return p.graph.AddArc(originID, destID, id, cost, ext, dualRows)
}

// SortNodes assigns a stable Node.Pos ordering, required before Solve is
// called with WithVariant(Pushing) or WithVariant(Pulling). cmp may be nil
// to use graph.DefaultComparator.
func (p *Problem) SortNodes(cmp graph.Comparator) {
	p.graph.SortNodes(cmp)
}

// Graph returns the underlying graph.Graph, for callers that need to hand
// it to an external preprocessor (preprocess.BellmanFord,
// preprocess.ConnectivityMatrix).
func (p *Problem) Graph() *graph.Graph {
	return p.graph
}

// Solve runs the label-setting sweep, applying opts over DefaultConfig.
func (p *Problem) Solve(opts ...SolveOption) ([]solution.Solution, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return solve(p.graph, p.factory, cfg)
}

// UpdateReducedCosts recomputes every arc's cost-kind operator as
// arc.Cost - Σ coef*duals[row] over that arc's DualRows. Idempotent: calling
// it twice with the same duals leaves every arc's cost payload unchanged on
// the second call.
func (p *Problem) UpdateReducedCosts(duals []float64) error {
	costIdx := p.factory.CostKindIndex()
	for _, a := range p.graph.Arcs() {
		if err := resource.UpdateReducedCosts(a.Extender, costIdx, a.Cost, a.DualRows, duals); err != nil {
			return err
		}
	}

	return nil
}
