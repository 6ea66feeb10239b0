// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reusable typed buffer caches backing the pooled allocation strategy.
// Pools are keyed by element type, hand out buffers of at least the
// requested length, and reclaim returned buffers up to a bounded idle
// count. See bufferpool.go and default.go.
package pool
