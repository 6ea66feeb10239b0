// File: alloc/pooled.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pooled allocation strategy: buffers are rented from a reusable-buffer
// cache and handed back on release.

package alloc

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/hioload-alloc/api"
)

// PooledAllocator rents buffers from an api.BufferSource and returns
// them to it on release. Thread-safety of Get/Put is the source's
// concern; the allocator adds no locking of its own.
type PooledAllocator[T any] struct {
	source api.BufferSource[T]
	stats  counters
}

var _ api.Allocator[int] = (*PooledAllocator[int])(nil)

// NewPooled creates a pooled allocator on top of source.
func NewPooled[T any](source api.BufferSource[T]) *PooledAllocator[T] {
	return &PooledAllocator[T]{source: source}
}

// DefaultBlockSize reports the per-type default block size in elements.
func (a *PooledAllocator[T]) DefaultBlockSize() int {
	return BlockSizeFor[T]()
}

// Allocate rents a buffer of at least length elements and wraps it in
// an owned handle whose view is exactly length elements long. A source
// rejection propagates to the caller.
func (a *PooledAllocator[T]) Allocate(length int) (api.Owned[T], error) {
	buf, err := a.source.Get(length)
	if err != nil {
		return nil, fmt.Errorf("alloc: pooled allocate %d elements: %w", length, err)
	}
	b := &pooledBuffer[T]{
		source: a.source,
		stats:  &a.stats,
		view:   buf[:length],
	}
	b.backing.Store(&buf)
	a.stats.alloc()
	return b, nil
}

// Clear zeroes the first length elements of the buffer's view.
func (a *PooledAllocator[T]) Clear(buf api.Owned[T], length int) {
	ZeroFill(buf.View(), length)
}

// Stats exposes allocation accounting for this strategy instance.
func (a *PooledAllocator[T]) Stats() api.Stats {
	return a.stats.snapshot()
}

// pooledBuffer is the owned handle for pool-backed storage.
type pooledBuffer[T any] struct {
	source  api.BufferSource[T]
	stats   *counters
	backing atomic.Pointer[[]T]
	view    []T
}

// View returns the element span. Nil after Release.
func (b *pooledBuffer[T]) View() []T {
	return b.view
}

// Release returns the backing buffer to the source exactly once.
// Swap-and-check on the backing pointer: late or concurrent callers
// observe nothing to return and no-op instead of returning the same
// buffer twice.
func (b *pooledBuffer[T]) Release() {
	prev := b.backing.Swap(nil)
	if prev == nil {
		return
	}
	b.view = nil
	b.stats.release()
	b.source.Put(*prev)
}
