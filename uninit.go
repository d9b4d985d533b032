package emplace

import (
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/emplacekit/emplace/errors"
)

// Slot handle states. A handle moves from ready to consumed exactly
// once; every later use is a detected protocol violation.
const (
	slotReady uint32 = iota
	slotConsumed
)

// Uninit is the exclusive capability over a reserved location that does
// not yet hold a valid T. It is created only by driver entry points and
// must be consumed exactly once, by Finish or Write.
//
// Go cannot make a value move-only, so exclusivity is enforced with an
// atomically checked consumed flag: the second consumption attempt
// fails with a slot_consumed protocol violation instead of going
// unnoticed.
type Uninit[T any] struct {
	ptr   *T
	brand Brand
	state atomic.Uint32
}

func newUninit[T any](ptr *T, brand Brand) *Uninit[T] {
	return &Uninit[T]{ptr: ptr, brand: brand}
}

// Ptr exposes the reserved location for writes by the initializer.
// Reading through it before initialization observes whatever the
// location already holds; the protocol never zeroes or validates bytes.
func (u *Uninit[T]) Ptr() *T {
	return u.ptr
}

// Addr returns the address of the reserved location.
func (u *Uninit[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(u.ptr))
}

// Brand returns the brand this slot was reserved under. An initializer
// passes it back to Finish to complete the handshake.
func (u *Uninit[T]) Brand() Brand {
	return u.brand
}

// Finish consumes the slot and yields the evidence that its location
// now holds a valid T. The provided brand must be the one the slot was
// reserved under; a mismatch or a second consumption fails with a
// protocol violation and no evidence is ever produced for the location.
//
// Finish performs no check of the bytes at the location. Whether they
// form a valid T is the caller's claim; the protocol only pins down
// which location that claim is about.
func (u *Uninit[T]) Finish(brand Brand) (*Init[T], error) {
	if !u.state.CompareAndSwap(slotReady, slotConsumed) {
		return nil, errors.SlotConsumed(errors.PhaseFinish, typeName[T](), u.Addr())
	}
	if !u.brand.Matches(brand) {
		return nil, errors.BrandMismatch(typeName[T](), u.Addr())
	}
	return &Init[T]{ptr: u.ptr, brand: u.brand}, nil
}

// Write stores v at the reserved location and finishes the slot with
// its own brand. It is the whole job of most infallible initializers.
func (u *Uninit[T]) Write(v T) (*Init[T], error) {
	if u.state.Load() != slotReady {
		return nil, errors.SlotConsumed(errors.PhaseFinish, typeName[T](), u.Addr())
	}
	*u.ptr = v
	return u.Finish(u.brand)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
