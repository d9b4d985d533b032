// Package errors provides structured error types for the emplace library.
//
// Errors are categorized by Phase (where in the initialization protocol
// the error occurred) and Kind (error category). The Error type carries
// the Go type name of the target and the address of the location
// involved, which makes handshake failures diagnosable.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseFinish, errors.KindBrandMismatch).
//		GoType("main.Node").
//		Addr(addr).
//		Detail("provided brand was minted by a different driver call").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.AllocationFailed(size, align, cause)
//	err := errors.ForeignInit("main.Node", want, got)
//
// The brand_mismatch, slot_consumed and foreign_init kinds together form
// the protocol-violation family; test for the family with
// IsProtocolViolation. An initializer's own failure is never wrapped in
// an Error - the driver propagates it verbatim.
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
