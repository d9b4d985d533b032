package emplace

import (
	"runtime"
	"unsafe"
)

// PinnedValue owns a value that must never be relocated, typically
// because a field points into the value's own memory. The handle
// exposes the value only by pointer; there is no accessor that copies
// the value out, and the handle itself must not be copied (go vet's
// copylocks check flags attempts).
//
// The underlying allocation is pinned with runtime.Pinner until Unpin
// is called, so its address is stable even across cgo boundaries.
type PinnedValue[T any] struct {
	noCopy noCopy

	ptr    *T
	pinner *runtime.Pinner
}

// Value returns the pinned value. After Unpin it returns nil.
func (p *PinnedValue[T]) Value() *T {
	return p.ptr
}

// Addr returns the stable address of the pinned value, or 0 after
// Unpin.
func (p *PinnedValue[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(p.ptr))
}

// Unpin releases the pin and invalidates the handle. The value itself
// stays alive as long as ordinary references to it do, but its
// self-referential guarantees end here. Idempotent.
func (p *PinnedValue[T]) Unpin() {
	if p.ptr == nil {
		return
	}
	p.ptr = nil
	p.pinner.Unpin()
	p.pinner = nil
}

// Pinned constructs a T in place in a pinned heap allocation. The
// initializer may take the slot's address and store it inside the value
// being built: the driver guarantees the returned handle refers to that
// same address, and the pin guarantees the address stays put.
func Pinned[T any](init TryInitializer[T]) (*PinnedValue[T], error) {
	if init == nil {
		return nil, nilInitializer[T]()
	}

	ptr := new(T)
	pinner := new(runtime.Pinner)
	pinner.Pin(ptr)

	u := reserve(ptr)
	res, rerr := tryInit(init, u)
	in, err := complete(u, res, rerr)
	if err != nil {
		pinner.Unpin()
		return nil, err
	}

	owned, err := in.intoOwned()
	if err != nil {
		pinner.Unpin()
		return nil, err
	}
	return &PinnedValue[T]{ptr: owned, pinner: pinner}, nil
}

// noCopy triggers go vet's copylocks check when embedded in a struct
// that must not be copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
