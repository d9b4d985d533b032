package emplace

import (
	stderrors "errors"
	"testing"
)

// selfRef keeps a pointer into its own memory: current points at either
// first or second.
type selfRef struct {
	first   int32
	second  int32
	current *int32
}

func newSelfRef(value int32) (*PinnedValue[selfRef], error) {
	return Pinned[selfRef](TryInitFunc[selfRef](
		func(slot *Uninit[selfRef]) (*Init[selfRef], error) {
			s := slot.Ptr()
			s.first = value
			s.second = 0
			s.current = &s.first
			return slot.Finish(slot.Brand())
		}))
}

func TestPinnedSelfReferential(t *testing.T) {
	p, err := newSelfRef(10)
	if err != nil {
		t.Fatalf("Pinned: %v", err)
	}
	defer p.Unpin()

	s := p.Value()

	// The self-pointer must point into the pinned value itself.
	if s.current != &s.first {
		t.Fatal("self-pointer does not target the value's own memory")
	}
	if *s.current != 10 {
		t.Errorf("*current = %d, want 10", *s.current)
	}

	s.current = &s.second
	if *s.current != 0 {
		t.Errorf("*current = %d, want 0", *s.current)
	}
	s.current = &s.first
	if *s.current != 10 {
		t.Errorf("*current = %d, want 10", *s.current)
	}
}

func TestPinnedAddrStable(t *testing.T) {
	p, err := newSelfRef(1)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Unpin()

	addr := p.Addr()
	if addr == 0 {
		t.Fatal("pinned value has no address")
	}
	if p.Addr() != addr {
		t.Error("address changed between reads")
	}
}

func TestPinnedFailureUnpins(t *testing.T) {
	p, err := Pinned[selfRef](TryInitFunc[selfRef](
		func(slot *Uninit[selfRef]) (*Init[selfRef], error) {
			return nil, errOverflow
		}))
	if !stderrors.Is(err, errOverflow) {
		t.Fatalf("err = %v, want errOverflow", err)
	}
	if p != nil {
		t.Error("failed pin should not return a handle")
	}
}

func TestUnpinInvalidates(t *testing.T) {
	p, err := newSelfRef(5)
	if err != nil {
		t.Fatal(err)
	}

	p.Unpin()
	if p.Value() != nil {
		t.Error("Value should be nil after Unpin")
	}
	if p.Addr() != 0 {
		t.Error("Addr should be 0 after Unpin")
	}

	// Idempotent.
	p.Unpin()
}
