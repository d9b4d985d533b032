package emplace

import (
	"go.uber.org/zap"

	"github.com/emplacekit/emplace/errors"
)

// reserve mints a fresh brand and builds the exclusive Uninit over ptr.
func reserve[T any](ptr *T) *Uninit[T] {
	u := newUninit(ptr, mintBrand())
	notify(Event{Type: EventReserved, Brand: u.brand, Addr: u.Addr(), GoType: typeName[T]()})
	Logger().Debug("slot reserved",
		zap.Stringer("brand", u.brand),
		zap.String("type", typeName[T]()))
	return u
}

// complete verifies the initializer's outcome against the reserved
// slot. The initializer's own error is propagated verbatim; evidence
// that does not carry the slot's brand and address is rejected as a
// protocol violation, so the location is never exposed as valid unless
// it is exactly the one the driver reserved.
func complete[T any](u *Uninit[T], in *Init[T], err error) (*Init[T], error) {
	if err != nil {
		fail[T](u, err)
		return nil, err
	}
	if in == nil {
		verr := errors.New(errors.PhaseInit, errors.KindNilPointer).
			GoType(typeName[T]()).
			Addr(u.Addr()).
			Detail("initializer returned neither evidence nor an error").
			Build()
		fail[T](u, verr)
		return nil, verr
	}
	if !in.brand.Matches(u.brand) {
		verr := errors.New(errors.PhaseInit, errors.KindForeignInit).
			GoType(typeName[T]()).
			Addr(in.Addr()).
			Detail("evidence carries %v, slot was reserved under %v", in.brand, u.brand).
			Build()
		fail[T](u, verr)
		return nil, verr
	}
	if in.ptr != u.ptr {
		verr := errors.ForeignInit(typeName[T](), u.Addr(), in.Addr())
		fail[T](u, verr)
		return nil, verr
	}
	notify(Event{Type: EventInitialized, Brand: u.brand, Addr: u.Addr(), GoType: typeName[T]()})
	Logger().Debug("slot initialized",
		zap.Stringer("brand", u.brand),
		zap.String("type", typeName[T]()))
	// Scoped cleanup: the release event fires on every exit path,
	// whether the evidence is converted or discarded.
	in.onRelease(func() { released(u) })
	return in, nil
}

// fail poisons the slot so no evidence can be produced for the
// location after a failure, then reports the event.
func fail[T any](u *Uninit[T], err error) {
	u.state.CompareAndSwap(slotReady, slotConsumed)
	notify(Event{Type: EventFailed, Err: err, Brand: u.brand, Addr: u.Addr(), GoType: typeName[T]()})
	Logger().Debug("slot initialization failed",
		zap.Stringer("brand", u.brand),
		zap.String("type", typeName[T]()),
		zap.Error(err))
}

func released[T any](u *Uninit[T]) {
	notify(Event{Type: EventReleased, Brand: u.brand, Addr: u.Addr(), GoType: typeName[T]()})
}

// OnHeap constructs a T in place in a fresh heap allocation and returns
// the owned value. On initializer failure the error is returned
// verbatim and the allocation is never exposed.
func OnHeap[T any](init TryInitializer[T]) (*T, error) {
	if init == nil {
		return nil, nilInitializer[T]()
	}

	u := reserve(new(T))
	res, rerr := tryInit(init, u)
	in, err := complete(u, res, rerr)
	if err != nil {
		return nil, err
	}

	owned, err := in.intoOwned()
	if err != nil {
		return nil, err
	}
	return owned, nil
}

// MustOnHeap is OnHeap for infallible initializers. A protocol
// violation inside the initializer still panics: an Initializer that
// cannot produce evidence for its slot is a bug, not a runtime
// condition.
func MustOnHeap[T any](init Initializer[T]) *T {
	v, err := OnHeap(Infallible(init))
	if err != nil {
		panic(err)
	}
	return v
}

// OnStack constructs a T in place in a call-scoped slot and passes the
// evidence to fn. The evidence is released when fn returns: it cannot
// usefully outlive the call, and a retained Init yields nil from Value
// afterwards. The result of fn is returned.
func OnStack[T, R any](init TryInitializer[T], fn func(*Init[T]) R) (R, error) {
	var zero R
	if init == nil {
		return zero, nilInitializer[T]()
	}
	if fn == nil {
		return zero, errors.New(errors.PhaseInit, errors.KindNilPointer).
			GoType(typeName[T]()).
			Detail("nil continuation").
			Build()
	}

	var slot T
	u := reserve(&slot)
	res, rerr := tryInit(init, u)
	in, err := complete(u, res, rerr)
	if err != nil {
		return zero, err
	}

	defer in.release()
	return fn(in), nil
}

// tryInit guards against initializers that panic with the slot
// half-consumed; the panic propagates, but the slot is poisoned first
// so a recovering caller cannot finish it later.
func tryInit[T any](init TryInitializer[T], u *Uninit[T]) (in *Init[T], err error) {
	done := false
	defer func() {
		if !done {
			u.state.CompareAndSwap(slotReady, slotConsumed)
		}
	}()
	in, err = init.TryInit(u)
	done = true
	return in, err
}

func nilInitializer[T any]() error {
	return errors.New(errors.PhaseInit, errors.KindNilPointer).
		GoType(typeName[T]()).
		Detail("nil initializer").
		Build()
}
