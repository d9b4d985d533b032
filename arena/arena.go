package arena

import (
	"fmt"
	"unsafe"

	"github.com/emplacekit/emplace/layout"
)

// DefaultChunkSize is the chunk size used when none is configured.
const DefaultChunkSize = 64 << 10

// Option configures an Arena.
type Option func(*Arena)

// WithChunkSize sets the size of the chunks the arena grows by.
// Requests larger than the chunk size get a dedicated chunk.
func WithChunkSize(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.chunkSize = n
		}
	}
}

// Arena is a chunked bump allocator. Memory is handed out sequentially
// from large chunks; there is no per-allocation free. Reset recycles
// all chunks at once, Release drops them.
//
// Not safe for concurrent use.
type Arena struct {
	chunks    [][]byte
	cur       []byte
	off       uintptr
	chunkSize int
	allocated int
}

// New creates an arena.
func New(opts ...Option) *Arena {
	a := &Arena{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Alloc returns a pointer to size bytes aligned to align. align must be
// a power of two. The returned memory is zeroed and remains valid until
// Reset or Release.
func (a *Arena) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if align == 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("arena: alignment %d is not a power of two", align)
	}
	if size == 0 {
		size = 1
	}

	if p := a.bump(size, align); p != nil {
		return p, nil
	}

	if err := a.grow(size, align); err != nil {
		return nil, err
	}

	p := a.bump(size, align)
	if p == nil {
		return nil, fmt.Errorf("arena: could not place %d bytes (align %d) in fresh chunk", size, align)
	}
	return p, nil
}

// Free is a no-op; arena memory is reclaimed in bulk by Reset or
// Release. It exists so the arena satisfies allocator interfaces that
// include a free operation.
func (a *Arena) Free(ptr unsafe.Pointer, size, align uintptr) {}

func (a *Arena) bump(size, align uintptr) unsafe.Pointer {
	if a.cur == nil {
		return nil
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.cur)))
	off := layout.AlignTo(base+a.off, align) - base
	if off+size > uintptr(len(a.cur)) {
		return nil
	}
	a.off = off + size
	a.allocated += int(size)
	return unsafe.Pointer(&a.cur[off])
}

func (a *Arena) grow(size, align uintptr) error {
	// Worst case the aligned start sits align-1 bytes into the chunk.
	need := int(size + align - 1)
	n := a.chunkSize
	if need > n {
		n = need
	}
	chunk := make([]byte, n)
	a.chunks = append(a.chunks, chunk)
	a.cur = chunk
	a.off = 0
	return nil
}

// Reset makes all arena memory available for reuse without returning
// chunks to the runtime. Previously returned pointers become invalid.
func (a *Arena) Reset() {
	for _, c := range a.chunks {
		clear(c)
	}
	if len(a.chunks) > 0 {
		a.cur = a.chunks[0]
	}
	a.off = 0
	a.allocated = 0
	// Keep only the first chunk to bound retained memory.
	if len(a.chunks) > 1 {
		a.chunks = a.chunks[:1]
	}
}

// Release drops all chunks. The arena is reusable afterwards; the next
// Alloc grows a fresh chunk.
func (a *Arena) Release() {
	a.chunks = nil
	a.cur = nil
	a.off = 0
	a.allocated = 0
}

// AllocatedBytes reports the bytes handed out since the last Reset or
// Release, excluding alignment padding.
func (a *Arena) AllocatedBytes() int {
	return a.allocated
}

// Chunks reports the number of chunks currently held.
func (a *Arena) Chunks() int {
	return len(a.chunks)
}
