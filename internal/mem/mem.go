// File: internal/mem/mem.go
// Author: momentics <momentics@gmail.com>
//
// Anonymous off-heap memory mappings for the raw allocation strategy.
// Platform-specific backends live in mem_unix.go, mem_windows.go and
// mem_stub.go; all public API is OS-agnostic.

package mem

// Map allocates n bytes of zeroed memory outside the Go heap.
// The returned slice spans exactly n bytes and never moves.
func Map(n int) ([]byte, error) {
	return mapRegion(n)
}

// Unmap releases a region previously returned by Map. The slice must
// be the original one, not a reslice.
func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unmapRegion(b)
}
