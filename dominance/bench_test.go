package dominance_test

import (
	"testing"

	"github.com/katalvlaran/rcspp/dominance"
	"github.com/katalvlaran/rcspp/label"
	"github.com/katalvlaran/rcspp/resource"
)

func costComposition(value float64) resource.Composition {
	return resource.Composition{
		Kinds:  []resource.Kind{{Name: "cost"}},
		Values: []resource.Component{resource.NewAdditive(value, true)},
	}
}

// tradeoffComposition builds a two-kind composition where the first value
// rises and the second falls as a moves up, so no two labels built this way
// ever dominate one another — the Pareto antichain a dominance bucket grows
// unbounded against in the worst case.
func tradeoffComposition(a int) resource.Composition {
	return resource.Composition{
		Kinds: []resource.Kind{{Name: "cost"}, {Name: "other"}},
		Values: []resource.Component{
			resource.NewAdditive(float64(a), true),
			resource.NewAdditive(-float64(a), false),
		},
	}
}

// BenchmarkTracker_UpdateGrowingBucket measures Update against a bucket that
// keeps growing — every candidate is part of a Pareto antichain, so nothing
// it accepts ever evicts an existing member — the worst case for the
// O(|bucket|) scan, since the bucket is as large as possible at every step.
func BenchmarkTracker_UpdateGrowingBucket(b *testing.B) {
	tr := dominance.NewTracker()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l := &label.Label{ID: uint64(i), EndNode: 1, Resource: tradeoffComposition(i)}
		tr.Update(l)
	}
}

// BenchmarkTracker_UpdateRejectFast measures Update's short-circuit path: a
// single dominating label is seeded once, then every candidate is rejected
// on the first bucket comparison.
func BenchmarkTracker_UpdateRejectFast(b *testing.B) {
	tr := dominance.NewTracker()
	best := &label.Label{ID: 0, EndNode: 1, Resource: costComposition(-1e18)}
	tr.Update(best)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l := &label.Label{ID: uint64(i + 1), EndNode: 1, Resource: costComposition(0)}
		tr.Update(l)
	}
}
