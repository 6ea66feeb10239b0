// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Concrete allocation strategies for fixed-length element buffers.
//
// Two strategies implement api.Allocator: PooledAllocator rents and
// returns reusable arrays through an api.BufferSource to amortize
// allocation cost; RawAllocator takes memory straight from the process
// heap, outside the Go GC, for blittable element types. Shared
// process-wide instances are available via Pooled and Raw.
//
// Allocation and release are synchronous, CPU-bound operations. The
// holder of an owned buffer must release it exactly once; the release
// path tolerates repeated and concurrent calls.
package alloc
