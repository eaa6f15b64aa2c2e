package resource

// Extender is the per-arc, per-kind operator bundle: one Operator per
// resource kind, indexed consistently with the Composition tuple it will be
// applied to. Building an extender for a new arc means supplying one
// Operator per kind, carrying that arc's numeric payload (travel time,
// demand units, the origin node ID for ng-set union, a precomputed
// time-window lower clamp, ...).
type Extender struct {
	Ops []Operator
}

// BuildExtender validates that ops has one entry per kind in template and
// returns the Extender bundle. template is typically a node's
// resource.Template or any Composition sharing the intended arity.
func BuildExtender(template Composition, ops []Operator) (*Extender, error) {
	if len(ops) != template.Arity() {
		return nil, ErrArityMismatch
	}
	cloned := make([]Operator, len(ops))
	copy(cloned, ops)

	return &Extender{Ops: cloned}, nil
}

// Apply advances c across this extender, delegating to Composition.Extend.
func (e *Extender) Apply(c Composition) (Composition, error) {
	return c.Extend(e.Ops)
}

// SetCostOperator overwrites the Operator at costKindIndex with a fresh
// additive amount. Used by UpdateReducedCosts to recompute an arc's cost
// payload between column-generation sweeps without rebuilding the arc or
// any other kind's operator.
func (e *Extender) SetCostOperator(costKindIndex int, amount float64) error {
	if costKindIndex < 0 || costKindIndex >= len(e.Ops) {
		return ErrUnknownKindIndex
	}
	e.Ops[costKindIndex] = AdditiveOperator(amount)

	return nil
}

// DualRow pairs a master-problem row index with this arc's coefficient in
// that row. package graph's Arc.DualRows is typed directly as []DualRow, so
// there is a single definition shared by both packages.
type DualRow struct {
	RowIdx int
	Coef   float64
}

// UpdateReducedCosts recomputes extender's cost-kind Operator as
// baseCost - Σ coef*duals[row] over rows. It does not touch any other kind's
// operator and never rebuilds topology. Idempotent: calling it twice with
// the same (baseCost, rows, duals) yields the same operator both times.
func UpdateReducedCosts(extender *Extender, costKindIndex int, baseCost float64, rows []DualRow, duals []float64) error {
	reduced := baseCost
	for _, r := range rows {
		if r.RowIdx >= 0 && r.RowIdx < len(duals) {
			reduced -= r.Coef * duals[r.RowIdx]
		}
	}

	return extender.SetCostOperator(costKindIndex, reduced)
}
