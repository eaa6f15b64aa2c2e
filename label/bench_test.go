package label_test

import (
	"testing"

	"github.com/katalvlaran/rcspp/label"
	"github.com/katalvlaran/rcspp/resource"
)

func costTemplate() resource.Composition {
	return resource.Composition{
		Kinds:  []resource.Kind{{Name: "cost"}},
		Values: []resource.Component{resource.NewAdditive(0, true)},
	}
}

// BenchmarkPool_AcquireRelease measures the steady-state acquire/release
// cycle a solve loop runs for every extended label: one Acquire paired with
// one Release, so only the first Acquire allocates a fresh label and every
// subsequent Acquire reuses the slot the previous iteration released.
func BenchmarkPool_AcquireRelease(b *testing.B) {
	p := label.NewPool(1024)
	tmpl := costTemplate()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l := p.Acquire(uint64(i%1024), tmpl)
		p.Release(l)
	}
}

// BenchmarkPool_AcquireExtension measures AcquireExtension, the path the
// main loop actually calls per out-arc, against a Pool with no free list
// (WithoutReuse), isolating pure allocation cost from reuse.
func BenchmarkPool_AcquireExtension(b *testing.B) {
	p := label.NewPool(0, label.WithoutReuse())
	res := costTemplate().Clone()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.AcquireExtension(uint64(i), uint64(i), res)
	}
}
