package emplace

import (
	"testing"

	"github.com/emplacekit/emplace/arena"
)

type benchPayload struct {
	A, B, C, D int64
}

func BenchmarkOnHeap(b *testing.B) {
	init := ValueOf(benchPayload{A: 1, B: 2, C: 3, D: 4})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := OnHeap(init); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOnStack(b *testing.B) {
	init := ValueOf(benchPayload{A: 1})
	fn := func(in *Init[benchPayload]) int64 { return in.Value().A }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := OnStack(init, fn); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInArena(b *testing.B) {
	a := arena.New()
	defer a.Release()
	init := ValueOf(benchPayload{A: 1})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := InArena(a, init); err != nil {
			b.Fatal(err)
		}
		if a.AllocatedBytes() > 1<<20 {
			a.Reset()
		}
	}
}

func BenchmarkMintBrand(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = mintBrand()
	}
}
