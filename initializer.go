package emplace

// TryInitializer is the capability interface implemented by anything
// that knows how to fill a slot, fallibly or not.
//
// Contract: given the exclusive slot, either write a valid T into its
// location and return the evidence obtained from slot.Finish
// (slot.Write does both), or return an error and leave the slot
// unfinished. A wrapper that delegates to another initializer must pass
// along the exact slot it was given and forward the returned evidence
// unmodified; evidence fabricated from any other allocation carries the
// wrong brand and the driver rejects it as a protocol violation.
//
// On failure there is no automatic rollback of partial writes; if a
// failing initializer wrote anything that needs cleaning up, it cleans
// up before returning its error.
type TryInitializer[T any] interface {
	TryInit(slot *Uninit[T]) (*Init[T], error)
}

// Initializer is the infallible variant. Implementations must finish
// the slot they are given and return its evidence.
type Initializer[T any] interface {
	Init(slot *Uninit[T]) *Init[T]
}

// Infallible adapts an Initializer into a TryInitializer that never
// fails. Unwrapping its success is identical to calling the initializer
// directly.
func Infallible[T any](init Initializer[T]) TryInitializer[T] {
	return infallible[T]{init: init}
}

type infallible[T any] struct {
	init Initializer[T]
}

func (a infallible[T]) TryInit(slot *Uninit[T]) (*Init[T], error) {
	return a.init.Init(slot), nil
}

// TryInitFunc adapts a function into a TryInitializer.
type TryInitFunc[T any] func(slot *Uninit[T]) (*Init[T], error)

func (f TryInitFunc[T]) TryInit(slot *Uninit[T]) (*Init[T], error) {
	return f(slot)
}

// InitFunc adapts an infallible function into both Initializer and
// TryInitializer.
type InitFunc[T any] func(slot *Uninit[T]) *Init[T]

func (f InitFunc[T]) Init(slot *Uninit[T]) *Init[T] {
	return f(slot)
}

func (f InitFunc[T]) TryInit(slot *Uninit[T]) (*Init[T], error) {
	return f(slot), nil
}

// ValueOf returns an initializer that writes a fixed value into the
// slot. It is the plain-value case: emplacing a value you already have.
func ValueOf[T any](v T) TryInitializer[T] {
	return valueInit[T]{v: v}
}

type valueInit[T any] struct {
	v T
}

func (i valueInit[T]) TryInit(slot *Uninit[T]) (*Init[T], error) {
	return slot.Write(i.v)
}
