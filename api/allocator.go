// File: api/allocator.go
// Author: momentics <momentics@gmail.com>
//
// Capability interfaces for fixed-length element buffer allocation.
//
// An Allocator hands out exclusively-owned contiguous element buffers.
// Backing storage may be pooled Go-heap arrays or raw off-heap mappings;
// callers see the same contract either way.

package api

// Allocator supplies contiguous, fixed-length element buffers.
//
// Implementations are immutable after construction and safe for
// concurrent use.
type Allocator[T any] interface {
	// DefaultBlockSize reports the preferred element count for callers
	// that grow storage in chunks. Computed once per element type.
	DefaultBlockSize() int

	// Allocate returns an owned buffer whose view holds exactly length
	// elements. Internal capacity may be larger. Fails if the backing
	// strategy cannot satisfy the request.
	Allocate(length int) (Owned[T], error)

	// Clear zeroes the first length elements of the buffer's view.
	// Elements beyond length are left untouched.
	Clear(buf Owned[T], length int)
}

// Owned grants exclusive access to a contiguous run of elements.
//
// The holder owns the buffer until Release. Release is idempotent in
// effect: repeated calls, even concurrent ones, never return or free
// the backing storage twice. Using the view after Release is a
// contract violation.
type Owned[T any] interface {
	// View returns the mutable element span, exactly as long as the
	// length passed to Allocate. Returns nil after Release.
	View() []T

	// Release hands the backing storage back to its strategy.
	// Safe to call zero or more times.
	Release()
}

// BufferSource is a reusable-buffer cache keyed by element type.
// It backs the pooled allocation strategy.
//
// Implementations must support concurrent Get and Put.
type BufferSource[T any] interface {
	// Get returns a buffer of at least minLen elements.
	Get(minLen int) ([]T, error)

	// Put returns a buffer for reuse. The caller must not use the
	// buffer afterwards.
	Put(buf []T)
}

// Stats aggregates allocation accounting for a strategy or pool.
type Stats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
