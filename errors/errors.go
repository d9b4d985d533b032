package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the initialization protocol the error occurred
type Phase string

const (
	PhaseAlloc   Phase = "alloc"   // obtaining a location
	PhaseReserve Phase = "reserve" // building the uninit slot
	PhaseInit    Phase = "init"    // running the initializer
	PhaseFinish  Phase = "finish"  // slot handshake
	PhaseConvert Phase = "convert" // releasing evidence into an owned value
	PhasePin     Phase = "pin"     // pinned placement
	PhaseSlice   Phase = "slice"   // element-wise slice initialization
)

// Kind categorizes the error
type Kind string

const (
	KindAllocation    Kind = "allocation"     // allocator could not supply memory
	KindBrandMismatch Kind = "brand_mismatch" // finish called with a brand from another call
	KindSlotConsumed  Kind = "slot_consumed"  // slot or evidence used more than once
	KindForeignInit   Kind = "foreign_init"   // evidence refers to memory the driver never reserved
	KindBadAlign      Kind = "bad_align"      // caller-supplied location is misaligned
	KindNilPointer    Kind = "nil_pointer"    // nil location or capability
	KindIncomplete    Kind = "incomplete"     // slice finished before every element was initialized
	KindOutOfRange    Kind = "out_of_range"   // slice writer advanced past its length
	KindLayout        Kind = "layout"         // target type layout unsuitable for the location
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Detail string
	Addr   uintptr
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.GoType != "" {
		b.WriteString(": type ")
		b.WriteString(e.GoType)
	}

	if e.Addr != 0 {
		b.WriteString(" at ")
		fmt.Fprintf(&b, "0x%x", e.Addr)
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Addr != 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsProtocolViolation reports whether err is any of the handshake
// violations: brand mismatch, handle reuse, or foreign evidence. These
// are the errors the dynamic brand check exists to raise; an
// initializer's own failure is never a protocol violation.
func IsProtocolViolation(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	switch e.Kind {
	case KindBrandMismatch, KindSlotConsumed, KindForeignInit:
		return true
	}
	return false
}

// IsAllocation reports whether err is an allocator failure.
func IsAllocation(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindAllocation
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// GoType sets the Go type name of the target
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Addr sets the address of the location involved
func (b *Builder) Addr(a uintptr) *Builder {
	b.err.Addr = a
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// AllocationFailed creates an allocation failure error
func AllocationFailed(size, align uintptr, cause error) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindAllocation,
		Cause:  cause,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// BrandMismatch creates a finish-handshake brand error
func BrandMismatch(goType string, addr uintptr) *Error {
	return &Error{
		Phase:  PhaseFinish,
		Kind:   KindBrandMismatch,
		GoType: goType,
		Addr:   addr,
		Detail: "provided brand was minted by a different driver call",
	}
}

// SlotConsumed creates a reuse error
func SlotConsumed(phase Phase, goType string, addr uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSlotConsumed,
		GoType: goType,
		Addr:   addr,
		Detail: "handle was already consumed",
	}
}

// ForeignInit creates an error for evidence that does not match the reserved slot
func ForeignInit(goType string, want, got uintptr) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindForeignInit,
		GoType: goType,
		Addr:   got,
		Detail: fmt.Sprintf("initializer returned evidence for 0x%x, reserved slot is 0x%x", got, want),
	}
}
