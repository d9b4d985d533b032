package emplace

import (
	"sync/atomic"
	"unsafe"

	"github.com/emplacekit/emplace/errors"
)

// Init is the evidence that a location holds a fully valid T. The only
// way to obtain one is Uninit.Finish on the slot reserved for that
// location; it carries the same brand, which is how the driver verifies
// the evidence refers to the memory it reserved and not to some other
// allocation.
type Init[T any] struct {
	ptr     *T
	brand   Brand
	state   atomic.Uint32
	cleanup []func()
}

// Value dereferences through to the now-valid value for reads and
// writes. After the evidence has been released (the driver converted it
// into an owned value, or a stack-scoped call returned) Value returns
// nil.
func (in *Init[T]) Value() *T {
	if in.state.Load() != slotReady {
		return nil
	}
	return in.ptr
}

// Addr returns the address the evidence refers to.
func (in *Init[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(in.ptr))
}

// Brand returns the brand carried forward from the originating Uninit.
func (in *Init[T]) Brand() Brand {
	return in.brand
}

// onRelease registers a hook run when the evidence is released, on
// every exit path. Hooks run in reverse registration order.
func (in *Init[T]) onRelease(f func()) {
	in.cleanup = append(in.cleanup, f)
}

// intoOwned releases the evidence wrapper and returns the plain pointer
// to the caller. The evidence is single-use: a second conversion fails
// with a slot_consumed protocol violation.
func (in *Init[T]) intoOwned() (*T, error) {
	if !in.state.CompareAndSwap(slotReady, slotConsumed) {
		return nil, errors.SlotConsumed(errors.PhaseConvert, typeName[T](), in.Addr())
	}
	ptr := in.ptr
	in.runCleanup()
	in.ptr = nil
	return ptr, nil
}

// release discards the evidence without handing ownership anywhere,
// used by scoped drivers when the continuation returns. Idempotent.
func (in *Init[T]) release() {
	if !in.state.CompareAndSwap(slotReady, slotConsumed) {
		return
	}
	in.runCleanup()
	in.ptr = nil
}

func (in *Init[T]) runCleanup() {
	for i := len(in.cleanup) - 1; i >= 0; i-- {
		in.cleanup[i]()
	}
	in.cleanup = nil
}
