// File: pool/default.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"reflect"
	"sync"
)

// shared holds the lazily-constructed process-wide pool per element
// type, so all call sites reuse the same cache instead of fragmenting
// allocations.
var shared sync.Map // reflect.Type -> *Pool[T]

// For returns the process-wide shared pool for element type T,
// constructing it on first use.
func For[T any]() *Pool[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := shared.Load(t); ok {
		return v.(*Pool[T])
	}
	v, _ := shared.LoadOrStore(t, New[T](DefaultMaxIdle))
	return v.(*Pool[T])
}
