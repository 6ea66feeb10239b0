// File: internal/layout/layout.go
// Author: momentics <momentics@gmail.com>
//
// Element-type layout introspection shared by the allocation strategies:
// element sizing, pointer-free layout checks, and the per-type default
// block-size heuristic.

package layout

import (
	"reflect"
	"sync"
)

const (
	// blockTargetBytes is the storage target a default block should
	// occupy, independent of element size.
	blockTargetBytes = 64 * 1024

	// minBlockElems floors the block size for very large element types.
	minBlockElems = 64

	// fallbackBlockElems is used when the element size cannot be
	// determined. Never surfaced as an error.
	fallbackBlockElems = 16 * 1024
)

// blockElems memoizes BlockElems results per element type for the
// process lifetime. Read-mostly: one store per distinct type.
var blockElems sync.Map // reflect.Type -> int

// SizeOf reports the in-memory size of one element of t in bytes.
// Returns 0 when the size cannot be determined.
func SizeOf(t reflect.Type) uintptr {
	if t == nil {
		return 0
	}
	return t.Size()
}

// BlockElems computes the default element count for chunk-grown storage
// of type t: enough elements to fill blockTargetBytes, floored at
// minBlockElems for pathologically large elements. Types without a
// determinable size get fallbackBlockElems.
//
// The result is computed once per type and cached.
func BlockElems(t reflect.Type) int {
	if v, ok := blockElems.Load(t); ok {
		return v.(int)
	}
	n := computeBlockElems(SizeOf(t))
	v, _ := blockElems.LoadOrStore(t, n)
	return v.(int)
}

func computeBlockElems(elemSize uintptr) int {
	if elemSize == 0 {
		return fallbackBlockElems
	}
	count := blockTargetBytes / int(elemSize)
	if count <= minBlockElems {
		return minBlockElems
	}
	return count
}

// Blittable reports whether t has a fixed, pointer-free layout and is
// therefore safe to address as raw memory outside the Go heap.
func Blittable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return Blittable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !Blittable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointers, maps, chans, slices, strings, interfaces, funcs:
		// the GC must see these, so they never leave the Go heap.
		return false
	}
}
