package emplace

import (
	"testing"
)

type pair struct {
	X, Y int
}

// pairInit is an infallible Initializer.
type pairInit struct {
	x, y int
}

func (p pairInit) Init(slot *Uninit[pair]) *Init[pair] {
	in, err := slot.Write(pair{X: p.x, Y: p.y})
	if err != nil {
		panic(err)
	}
	return in
}

func TestInfallibleAdapterRoundTrip(t *testing.T) {
	// Calling the initializer through the adapter must produce a value
	// identical to calling it directly.
	var direct pair
	u1 := newUninit(&direct, mintBrand())
	in1 := pairInit{x: 3, y: 4}.Init(u1)

	adapted, err := OnHeap(Infallible[pair](pairInit{x: 3, y: 4}))
	if err != nil {
		t.Fatalf("adapter returned error: %v", err)
	}

	if *in1.Value() != *adapted {
		t.Errorf("direct %v != adapted %v", *in1.Value(), *adapted)
	}
}

func TestValueOf(t *testing.T) {
	got, err := OnHeap(ValueOf(pair{X: 1, Y: 2}))
	if err != nil {
		t.Fatal(err)
	}
	if *got != (pair{X: 1, Y: 2}) {
		t.Errorf("got %v, want {1 2}", *got)
	}
}

func TestTryInitFunc(t *testing.T) {
	got, err := OnHeap[int](TryInitFunc[int](
		func(slot *Uninit[int]) (*Init[int], error) {
			return slot.Write(5)
		}))
	if err != nil {
		t.Fatal(err)
	}
	if *got != 5 {
		t.Errorf("got %d, want 5", *got)
	}
}

func TestInitFuncIsBothInterfaces(t *testing.T) {
	f := InitFunc[int](func(slot *Uninit[int]) *Init[int] {
		in, err := slot.Write(9)
		if err != nil {
			panic(err)
		}
		return in
	})

	// As a TryInitializer.
	var _ TryInitializer[int] = f
	got, err := OnHeap[int](f)
	if err != nil {
		t.Fatal(err)
	}
	if *got != 9 {
		t.Errorf("TryInitializer path: got %d, want 9", *got)
	}

	// As an Initializer.
	var _ Initializer[int] = f
	if got := MustOnHeap[int](f); *got != 9 {
		t.Errorf("Initializer path: got %d, want 9", *got)
	}
}
