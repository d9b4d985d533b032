// Package arena implements a chunked bump allocator.
//
// The arena hands out raw, aligned memory from large chunks and
// reclaims everything at once. It is the allocator collaborator for
// raw placement: the placement drivers can construct values directly
// into arena memory instead of fresh heap allocations.
//
//	a := arena.New()
//	defer a.Release()
//
//	p, err := a.Alloc(size, align)
//	...
//	a.Reset() // recycle all memory at once
//
// # Allocation Strategy
//
//	┌──────────── chunk (64 KiB) ────────────┐
//	│ alloc │ pad │ alloc │ alloc │   free   │
//	└────────────────────────────────────────┘
//	                               ↑ bump offset
//
// Allocation bumps an offset inside the current chunk, inserting
// padding as needed to satisfy alignment. When a chunk fills up a new
// one is made; requests larger than the chunk size get a dedicated
// chunk. Free is a no-op. Reset zeroes and recycles the chunks;
// Release drops them.
//
// # Garbage Collector Visibility
//
// Chunks are plain byte slices with no pointer bitmap, so the garbage
// collector never scans arena memory. Values placed in an arena must
// not contain Go pointers; the placement drivers enforce this with the
// layout package's pointer detection.
//
// # Thread Safety
//
// An Arena is not safe for concurrent use. Give each goroutine its own
// arena, or synchronize externally.
package arena
