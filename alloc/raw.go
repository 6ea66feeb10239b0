// File: alloc/raw.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw allocation strategy: element storage mapped directly from the
// process heap, bypassing the Go GC. Restricted to blittable element
// types. A finalizer acts as a best-effort safety net against leaked
// mappings; deterministic Release remains the documented contract.

package alloc

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-alloc/api"
	"github.com/momentics/hioload-alloc/internal/layout"
	"github.com/momentics/hioload-alloc/internal/mem"
)

// RawAllocator maps length*elemSize bytes per allocation outside the
// Go heap. The returned view is pinned by construction: the mapping
// never moves.
type RawAllocator[T any] struct {
	elemSize uintptr
	stats    counters
}

var _ api.Allocator[int] = (*RawAllocator[int])(nil)

// NewRaw creates a raw allocator for T. Fails for element types whose
// layout the GC must track (pointers, maps, slices, strings, ...).
func NewRaw[T any]() (*RawAllocator[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if !layout.Blittable(t) {
		return nil, fmt.Errorf("alloc: raw allocator for %s: %w", t, api.ErrNotSupported)
	}
	return &RawAllocator[T]{elemSize: t.Size()}, nil
}

// DefaultBlockSize reports the per-type default block size in elements.
func (a *RawAllocator[T]) DefaultBlockSize() int {
	return BlockSizeFor[T]()
}

// Allocate maps storage for exactly length elements. Zero-length (and
// zero-sized-element) requests need no mapping and release cleanly.
func (a *RawAllocator[T]) Allocate(length int) (api.Owned[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("alloc: raw allocate %d elements: %w", length, api.ErrInvalidArgument)
	}
	b := &rawBuffer[T]{stats: &a.stats}

	if length == 0 || a.elemSize == 0 {
		b.view = make([]T, length)
		b.region.Store(&emptyRegion)
	} else {
		byteLen := uintptr(length) * a.elemSize
		if byteLen/a.elemSize != uintptr(length) || byteLen > uintptr(math.MaxInt) {
			return nil, fmt.Errorf("alloc: raw allocate %d elements of %d bytes: %w",
				length, a.elemSize, api.ErrInvalidArgument)
		}
		region, err := mem.Map(int(byteLen))
		if err != nil {
			return nil, api.NewError(api.ErrCodeResourceExhausted, "raw allocation failed").
				WithContext("elements", length).
				WithContext("bytes", int(byteLen)).
				WithContext("cause", err.Error())
		}
		b.view = unsafe.Slice((*T)(unsafe.Pointer(&region[0])), length)
		b.region.Store(&region)
	}

	a.stats.alloc()
	runtime.SetFinalizer(b, (*rawBuffer[T]).sweep)
	return b, nil
}

// Clear zeroes the first length elements of the buffer's view.
func (a *RawAllocator[T]) Clear(buf api.Owned[T], length int) {
	ZeroFill(buf.View(), length)
}

// Stats exposes allocation accounting for this strategy instance.
func (a *RawAllocator[T]) Stats() api.Stats {
	return a.stats.snapshot()
}

// emptyRegion stands in for mappings of zero bytes so the release
// accounting stays uniform.
var emptyRegion = []byte{}

// rawBuffer is the owned handle for off-heap storage.
type rawBuffer[T any] struct {
	stats  *counters
	region atomic.Pointer[[]byte]
	view   []T
}

// View returns the element span. Nil after an explicit Release.
func (b *rawBuffer[T]) View() []T {
	return b.view
}

// Release frees the mapping exactly once and drops the safety-net
// finalizer. Safe to call repeatedly.
func (b *rawBuffer[T]) Release() {
	runtime.SetFinalizer(b, nil)
	if b.free() {
		b.view = nil
	}
}

// sweep is the finalizer path for handles dropped without Release.
// Cleanup timing is whatever the GC decides; callers must not rely on
// it for resource pressure.
func (b *rawBuffer[T]) sweep() {
	b.free()
}

// free unmaps the region exactly once. Swap-and-check on the region
// pointer, never read-then-free: the sweep may run concurrently with
// an explicit release, and only the swap winner acts.
func (b *rawBuffer[T]) free() bool {
	prev := b.region.Swap(nil)
	if prev == nil {
		return false
	}
	b.stats.release()
	if err := mem.Unmap(*prev); err != nil {
		// Release paths cannot report errors; log and move on.
		slog.Error("hioload-alloc: unmap failed", "error", err)
	}
	return true
}
