// Package emplace constructs values directly at a caller-chosen memory
// location, with a checked guarantee that the location the driver
// reserved is exactly the location that ends up holding a fully valid
// value - even when construction can fail.
//
// In-place construction matters for self-referential values, large
// aggregates, and values living in memory the Go heap does not manage
// (arenas, caller-supplied buffers). The hard part is not writing the
// bytes; it is ruling out the classic unsoundness where a wrapper
// "initializes" a slot by building the value somewhere else and handing
// back evidence for the wrong memory. This library makes that a
// detected protocol violation.
//
// # Architecture Overview
//
// The library is organized into a small core and three collaborators:
//
//	emplace/         Core protocol: Brand, Uninit, Init, initializer
//	                 interfaces, and the driver entry points
//	├── arena/       Chunked bump allocator (raw placement target)
//	├── layout/      Size/alignment/offset metadata for target types
//	├── metrics/     Prometheus collector for slot lifecycle events
//	└── errors/      Structured error types for debugging
//
// # The Handshake
//
// Every driver call runs the same protocol:
//
//	driver ──mint──▶ Brand (fresh, never matches another call's)
//	       ──build─▶ Uninit(location, brand)   exclusive, single-use
//	       ──call──▶ initializer.TryInit(slot)
//	                   │ writes T through slot.Ptr()
//	                   └ slot.Finish(brand) ──▶ Init(location, brand)
//	       ──check─▶ evidence brand and address match the reservation
//	       ──────── ▶ owned value, or the initializer's error verbatim
//
// An Init can only come from Uninit.Finish, carries the brand and
// address of its slot, and is re-verified by the driver. Evidence
// minted in a different driver call - the only way to fabricate any -
// fails the brand check. On failure no evidence for the location ever
// exists and the slot is poisoned against late finishing.
//
// # Entry Points
//
//	OnHeap     fresh heap allocation, returns the owned *T
//	MustOnHeap infallible variant
//	OnStack    call-scoped slot, evidence cannot outlive the call
//	Pinned     address-stable allocation for self-referential values
//	At         caller-supplied raw location
//	InArena    location obtained from an Allocator
//	Slice      element-wise in-place initialization of a []T
//
// # Writing Initializers
//
// Most initializers are a function:
//
//	pair, err := emplace.OnHeap[Pair](emplace.TryInitFunc[Pair](
//	    func(slot *emplace.Uninit[Pair]) (*emplace.Init[Pair], error) {
//	        return slot.Write(Pair{X: 1, Y: 2})
//	    }))
//
// or just a value:
//
//	pair, err := emplace.OnHeap(emplace.ValueOf(Pair{X: 1, Y: 2}))
//
// Self-referential construction takes the slot's address first:
//
//	node, err := emplace.Pinned[Node](emplace.TryInitFunc[Node](
//	    func(slot *emplace.Uninit[Node]) (*emplace.Init[Node], error) {
//	        n := slot.Ptr()
//	        n.value = 10
//	        n.current = &n.value // points into the slot itself
//	        return slot.Finish(slot.Brand())
//	    }))
//
// # Concurrency
//
// A slot is single-threaded by construction: the Uninit is exclusive
// and consumed exactly once. Independent driver calls may run
// concurrently; the only shared state is the atomic brand counter and
// the observer list. The protocol is synchronous - an initializer that
// suspends must not let its slot become reachable from another
// goroutine meanwhile.
//
// # Failure Semantics
//
// The initializer's own error is always propagated verbatim, never
// wrapped. Allocation failures and protocol violations are structured
// errors from the errors package. There is no automatic rollback of
// partial writes: a failing initializer cleans up after itself before
// returning, and the protocol guarantees only that the location is
// never exposed as valid.
package emplace
