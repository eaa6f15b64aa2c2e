package resource

// ArcContext carries the information an arc-level kind builder needs to
// produce its Operator: the arc's endpoints, its base cost, and a per-kind
// payload map keyed by kind name, giving every arc a per-kind payload tuple
// of matching arity and shape.
type ArcContext struct {
	OriginID uint64
	DestID   uint64
	Cost     float64
	Payload  map[string]interface{}
}

// NodeBuilder produces a kind's per-node template Component, capturing any
// per-node configuration (time-window bounds, forbidden set, ...) at
// registration time — the resource attached to a node.
type NodeBuilder func(nodeID uint64, payload interface{}) Component

// ArcBuilder produces a kind's per-arc Operator from the arc's context — the
// extender attached to an arc.
type ArcBuilder func(ctx ArcContext) Operator

// kindRegistration is one AddKind call's immutable record; Factory records
// never change after a kind has been registered.
type kindRegistration struct {
	kind   Kind
	onNode NodeBuilder
	onArc  ArcBuilder
}

// Factory owns the ordered list of resource kinds a Problem uses and
// produces node templates / arc extenders consistent with that order. The
// arity of every Composition/Extender the Factory builds equals the number of
// AddKind calls, in registration order.
type Factory struct {
	regs     []kindRegistration
	costMode CostMode
	costIdx  int
}

// NewFactory returns an empty Factory. By default Cost is the sum of every
// kind's Cost() (CostSum); call SetCostComponent to delegate to one kind
// instead.
func NewFactory() *Factory {
	return &Factory{costMode: CostSum}
}

// AddKind registers a new resource kind, returning its 0-based index in the
// composition (the order AddKind was called in). onNode and onArc must not
// be nil.
func (f *Factory) AddKind(name string, onNode NodeBuilder, onArc ArcBuilder) int {
	f.regs = append(f.regs, kindRegistration{kind: Kind{Name: name}, onNode: onNode, onArc: onArc})

	return len(f.regs) - 1
}

// SetCostComponent switches the Factory to CostComponent mode, delegating
// Composition.Cost to the kind at idx.
func (f *Factory) SetCostComponent(idx int) { f.costMode = CostComponent; f.costIdx = idx }

// Arity returns the number of registered kinds.
func (f *Factory) Arity() int { return len(f.regs) }

// KindNames returns the registered kind names in registration order, for
// diagnostics and error messages.
func (f *Factory) KindNames() []string {
	names := make([]string, len(f.regs))
	for i, r := range f.regs {
		names[i] = r.kind.Name
	}

	return names
}

// BuildTemplate assembles the Composition a fresh label at node nodeID
// starts from, by calling every registered kind's NodeBuilder with its
// per-kind payload (payloads keyed by kind name; a kind with no entry gets a
// nil payload). Returns ErrNoKinds if no kind has been registered.
func (f *Factory) BuildTemplate(nodeID uint64, payloads map[string]interface{}) (Composition, error) {
	if len(f.regs) == 0 {
		return Composition{}, ErrNoKinds
	}
	values := make([]Component, len(f.regs))
	kinds := make([]Kind, len(f.regs))
	for i, r := range f.regs {
		values[i] = r.onNode(nodeID, payloads[r.kind.Name])
		kinds[i] = r.kind
	}

	return Composition{Kinds: kinds, Values: values, CostMode: f.costMode, CostIdx: f.costIdx}, nil
}

// BuildExtender assembles the per-arc Extender by calling every registered
// kind's ArcBuilder with the shared ArcContext.
func (f *Factory) BuildExtender(ctx ArcContext) (*Extender, error) {
	if len(f.regs) == 0 {
		return nil, ErrNoKinds
	}
	ops := make([]Operator, len(f.regs))
	for i, r := range f.regs {
		ops[i] = r.onArc(ctx)
	}

	return &Extender{Ops: ops}, nil
}

// CostKindIndex returns the index UpdateReducedCosts should target: CostIdx
// when in CostComponent mode, or the index of the first kind named "cost"
// otherwise (falls back to 0 if none is named "cost"). Callers that set up
// their own convention should call SetCostComponent instead of relying on
// the name fallback.
func (f *Factory) CostKindIndex() int {
	if f.costMode == CostComponent {
		return f.costIdx
	}
	for i, r := range f.regs {
		if r.kind.Name == "cost" {
			return i
		}
	}

	return 0
}
