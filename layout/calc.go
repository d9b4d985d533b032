package layout

import (
	"reflect"
	"sync"
)

// Info describes the memory layout of a target type.
type Info struct {
	FieldOffs   map[string]uintptr
	Size        uintptr
	Align       uintptr
	HasPointers bool
}

// Calculator computes and caches layout information for Go types.
// Safe for concurrent use.
type Calculator struct {
	cache map[reflect.Type]Info
	mu    sync.RWMutex
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[reflect.Type]Info),
	}
}

// Calculate returns the layout of t. Struct layouts include per-field
// offsets. Results are cached per type.
func (c *Calculator) Calculate(t reflect.Type) Info {
	c.mu.RLock()
	if cached, ok := c.cache[t]; ok {
		c.mu.RUnlock()
		return cached
	}
	c.mu.RUnlock()

	info := c.calculate(t)

	c.mu.Lock()
	c.cache[t] = info
	c.mu.Unlock()
	return info
}

func (c *Calculator) calculate(t reflect.Type) Info {
	info := Info{
		Size:        t.Size(),
		Align:       uintptr(t.Align()),
		HasPointers: containsPointers(t),
	}

	if t.Kind() == reflect.Struct {
		fieldOffs := make(map[string]uintptr, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fieldOffs[f.Name] = f.Offset
		}
		info.FieldOffs = fieldOffs
	}

	return info
}

func containsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Slice, reflect.String, reflect.Interface, reflect.Func:
		return true
	case reflect.Array:
		return t.Len() > 0 && containsPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if containsPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

var defaultCalc = NewCalculator()

// Of returns the layout of T using the package-level calculator.
func Of[T any]() Info {
	return defaultCalc.Calculate(reflect.TypeOf((*T)(nil)).Elem())
}

// Slice returns the layout of a contiguous run of n elements with the
// given element layout. Element size is already a multiple of element
// alignment in Go, so the stride equals the size.
func Slice(elem Info, n int) Info {
	return Info{
		Size:        elem.Size * uintptr(n),
		Align:       elem.Align,
		HasPointers: elem.HasPointers,
	}
}

// AlignTo rounds n up to the next multiple of align. align must be a
// power of two.
func AlignTo(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// Aligned reports whether addr satisfies align. align must be a power
// of two.
func Aligned(addr, align uintptr) bool {
	return addr&(align-1) == 0
}
