package emplace

import (
	"github.com/emplacekit/emplace/errors"
)

// Writer initializes the elements of a slice in place, front to back.
// Each element gets its own branded slot, so a misbehaving element
// initializer is caught per element. The destination is only exposed
// by Finish, and only once every element has been initialized; a
// failure anywhere leaves the whole slice unexposed.
type Writer[T any] struct {
	dst    []T
	next   int
	failed bool
}

// NewWriter creates a writer over a fresh slice of n elements.
func NewWriter[T any](n int) *Writer[T] {
	if n < 0 {
		n = 0
	}
	return &Writer[T]{dst: make([]T, n)}
}

// Append initializes the next element. The element initializer's error
// is returned verbatim and marks the writer failed; every later Append
// and the Finish fail too.
func (w *Writer[T]) Append(init TryInitializer[T]) error {
	if w.failed {
		return errors.New(errors.PhaseSlice, errors.KindIncomplete).
			GoType(typeName[T]()).
			Detail("writer already failed at element %d", w.next).
			Build()
	}
	if w.dst == nil {
		return errors.SlotConsumed(errors.PhaseSlice, typeName[T](), 0)
	}
	if w.next >= len(w.dst) {
		return errors.New(errors.PhaseSlice, errors.KindOutOfRange).
			GoType(typeName[T]()).
			Detail("all %d elements already initialized", len(w.dst)).
			Build()
	}

	u := reserve(&w.dst[w.next])
	res, rerr := tryInit(init, u)
	in, err := complete(u, res, rerr)
	if err != nil {
		w.failed = true
		return err
	}
	in.release()
	w.next++
	return nil
}

// Initialized reports how many elements have been initialized so far.
func (w *Writer[T]) Initialized() int {
	return w.next
}

// Len reports the writer's element count.
func (w *Writer[T]) Len() int {
	return len(w.dst)
}

// Finish consumes the writer and returns the fully initialized slice.
// It fails if any element failed or has not been initialized yet; the
// partial slice is never exposed.
func (w *Writer[T]) Finish() ([]T, error) {
	if w.dst == nil {
		return nil, errors.SlotConsumed(errors.PhaseSlice, typeName[T](), 0)
	}
	if w.failed || w.next < len(w.dst) {
		total := len(w.dst)
		w.dst = nil
		return nil, errors.New(errors.PhaseSlice, errors.KindIncomplete).
			GoType(typeName[T]()).
			Detail("%d of %d elements initialized", w.next, total).
			Build()
	}
	dst := w.dst
	w.dst = nil
	return dst, nil
}

// Slice constructs a slice of n elements in place, asking per for the
// initializer of each element. On the first element failure the error
// is returned verbatim and nothing is exposed.
func Slice[T any](n int, per func(i int) TryInitializer[T]) ([]T, error) {
	if n < 0 {
		return nil, errors.New(errors.PhaseSlice, errors.KindOutOfRange).
			GoType(typeName[T]()).
			Detail("negative length %d", n).
			Build()
	}
	if per == nil {
		return nil, errors.New(errors.PhaseSlice, errors.KindNilPointer).
			GoType(typeName[T]()).
			Detail("nil element initializer factory").
			Build()
	}

	w := NewWriter[T](n)
	for i := 0; i < n; i++ {
		if err := w.Append(per(i)); err != nil {
			return nil, err
		}
	}
	return w.Finish()
}

// Repeat constructs a slice of n elements in place, all initialized by
// the same initializer.
func Repeat[T any](n int, init TryInitializer[T]) ([]T, error) {
	return Slice(n, func(int) TryInitializer[T] { return init })
}
