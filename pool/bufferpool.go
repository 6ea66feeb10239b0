// File: pool/bufferpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Typed reusable-buffer cache with size-classed fresh allocation and a
// bounded idle list.

package pool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-alloc/api"
)

// Fresh buffer capacities are rounded up to one of these element
// counts. This table can be tuned for deployment needs.
var sizeClasses = [...]int{
	64,
	256,
	1024,
	4096,
	16384,
	65536,
}

// sizeClassUpperBound returns the smallest class >= the requested
// element count, or the count itself beyond the largest class.
func sizeClassUpperBound(n int) int {
	for _, c := range sizeClasses {
		if n <= c {
			return c
		}
	}
	return n
}

// DefaultMaxIdle bounds how many returned buffers a pool keeps.
const DefaultMaxIdle = 1024

// Pool is a thread-safe reusable-buffer cache for element type T.
// It implements api.BufferSource[T].
type Pool[T any] struct {
	mu      sync.Mutex
	free    *queue.Queue // of []T
	maxIdle int

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	reused     atomic.Int64
}

// New creates a pool keeping at most maxIdle returned buffers.
// Non-positive maxIdle selects DefaultMaxIdle.
func New[T any](maxIdle int) *Pool[T] {
	if maxIdle <= 0 {
		maxIdle = DefaultMaxIdle
	}
	return &Pool[T]{
		free:    queue.New(),
		maxIdle: maxIdle,
	}
}

// Get returns a buffer of at least minLen elements, reusing a cached
// buffer when one is large enough. The returned slice is at full
// backing capacity; callers slice it down themselves.
func (p *Pool[T]) Get(minLen int) ([]T, error) {
	if minLen < 0 {
		return nil, fmt.Errorf("pool: get %d elements: %w", minLen, api.ErrInvalidArgument)
	}

	p.mu.Lock()
	var buf []T
	if p.free.Length() > 0 {
		buf = p.free.Remove().([]T)
	}
	p.mu.Unlock()

	p.totalAlloc.Add(1)
	if buf != nil && cap(buf) >= minLen {
		p.reused.Add(1)
		return buf[:cap(buf)], nil
	}
	// Cached buffer absent or too small: allocate fresh, rounded up to
	// a size class. A dequeued undersized buffer goes back to the GC.
	return make([]T, sizeClassUpperBound(minLen)), nil
}

// Put returns a buffer for reuse. Buffers past the idle bound are
// dropped for the GC to reclaim.
func (p *Pool[T]) Put(buf []T) {
	if cap(buf) == 0 {
		return
	}
	p.totalFree.Add(1)

	p.mu.Lock()
	if p.free.Length() < p.maxIdle {
		p.free.Add(buf[:cap(buf)])
	}
	p.mu.Unlock()
}

// Idle reports how many buffers the pool currently caches.
func (p *Pool[T]) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.free.Length()
}

// Reused reports how many Get calls were served from the cache.
func (p *Pool[T]) Reused() int64 {
	return p.reused.Load()
}

// Stats exposes allocation accounting for observability.
func (p *Pool[T]) Stats() api.Stats {
	alloc := p.totalAlloc.Load()
	free := p.totalFree.Load()
	return api.Stats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
	}
}
