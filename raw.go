package emplace

import (
	"unsafe"

	"github.com/emplacekit/emplace/errors"
	"github.com/emplacekit/emplace/layout"
)

// Allocator supplies raw memory of a requested size and alignment. The
// arena package provides the canonical implementation; any allocator
// whose Alloc failures should surface as allocation errors fits.
type Allocator interface {
	Alloc(size, align uintptr) (unsafe.Pointer, error)
	Free(ptr unsafe.Pointer, size, align uintptr)
}

// At constructs a T in place at a caller-supplied location. The caller
// is responsible for the location staying allocated and unaliased for
// the duration of the call; the driver checks only that the pointer is
// non-nil and satisfies T's alignment.
//
// The location is not zeroed first. If the memory was not obtained from
// a Go heap allocation of type T, the target type must not contain Go
// pointers; see InArena.
func At[T any](ptr unsafe.Pointer, init TryInitializer[T]) (*T, error) {
	info := layout.Of[T]()
	if ptr == nil {
		return nil, errors.New(errors.PhaseReserve, errors.KindNilPointer).
			GoType(typeName[T]()).
			Detail("nil location").
			Build()
	}
	if !layout.Aligned(uintptr(ptr), info.Align) {
		return nil, errors.New(errors.PhaseReserve, errors.KindBadAlign).
			GoType(typeName[T]()).
			Addr(uintptr(ptr)).
			Detail("location must be %d-byte aligned", info.Align).
			Build()
	}
	if init == nil {
		return nil, nilInitializer[T]()
	}

	u := reserve((*T)(ptr))
	res, rerr := tryInit(init, u)
	in, err := complete(u, res, rerr)
	if err != nil {
		return nil, err
	}
	return in.intoOwned()
}

// InArena constructs a T in place in memory obtained from the given
// allocator. The allocator's failure is surfaced as an allocation
// error with the cause attached; on initializer failure the memory is
// returned to the allocator and the error propagates verbatim.
//
// Allocator memory has no pointer bitmap, so the garbage collector
// never scans it. Types containing Go pointers are rejected up front.
func InArena[T any](a Allocator, init TryInitializer[T]) (*T, error) {
	if a == nil {
		return nil, errors.New(errors.PhaseAlloc, errors.KindNilPointer).
			GoType(typeName[T]()).
			Detail("nil allocator").
			Build()
	}

	info := layout.Of[T]()
	if info.HasPointers {
		return nil, errors.New(errors.PhaseAlloc, errors.KindLayout).
			GoType(typeName[T]()).
			Detail("type contains Go pointers; allocator memory is not scanned by the GC").
			Build()
	}

	p, err := a.Alloc(info.Size, info.Align)
	if err != nil {
		return nil, errors.AllocationFailed(info.Size, info.Align, err)
	}

	v, err := At[T](p, init)
	if err != nil {
		a.Free(p, info.Size, info.Align)
		return nil, err
	}
	return v, nil
}
