// Package layout computes size, alignment and field-offset information
// for Go types. It is the metadata provider the placement drivers use
// when the target location is raw memory rather than a typed allocation.
//
// # Layout Information
//
// Info carries everything a driver needs to validate a location:
//
//	Type            Size    Align
//	─────────────────────────────
//	bool, int8      1       1
//	int16           2       2
//	int32, float32  4       4
//	int64, float64  8       8 (4 on some 32-bit targets)
//	struct          sum     max field align
//
// Struct layouts additionally include per-field byte offsets.
//
// # Pointer Detection
//
// Info.HasPointers reports whether a type contains Go pointers
// anywhere in its representation (pointers, maps, channels, slices,
// strings, interfaces, funcs, or aggregates containing them). Raw and
// arena placement reject pointer-carrying types: memory obtained
// outside the Go heap's typed allocations has no pointer bitmap, so
// the garbage collector would not see pointers stored there.
//
// # Caching
//
// The Calculator caches computed layouts per reflect.Type and is safe
// for concurrent use. The generic Of[T] helper uses a package-level
// calculator.
package layout
