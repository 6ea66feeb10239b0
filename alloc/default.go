// File: alloc/default.go
// Author: momentics <momentics@gmail.com>

package alloc

import (
	"reflect"
	"sync"

	"github.com/momentics/hioload-alloc/pool"
)

// Process-wide shared strategy instances, one per element type,
// constructed lazily so call sites need not wire their own.
var (
	pooledShared sync.Map // reflect.Type -> *PooledAllocator[T]
	rawShared    sync.Map // reflect.Type -> *RawAllocator[T]
)

// Pooled returns the shared pooled allocator for element type T,
// backed by the shared per-type buffer pool.
func Pooled[T any]() *PooledAllocator[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := pooledShared.Load(t); ok {
		return v.(*PooledAllocator[T])
	}
	v, _ := pooledShared.LoadOrStore(t, NewPooled[T](pool.For[T]()))
	return v.(*PooledAllocator[T])
}

// Raw returns the shared raw allocator for element type T. Panics if
// T is not blittable: selecting the raw strategy for a pointer-carrying
// type is a wiring error, not a runtime condition.
func Raw[T any]() *RawAllocator[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := rawShared.Load(t); ok {
		return v.(*RawAllocator[T])
	}
	a, err := NewRaw[T]()
	if err != nil {
		panic(err)
	}
	v, _ := rawShared.LoadOrStore(t, a)
	return v.(*RawAllocator[T])
}
