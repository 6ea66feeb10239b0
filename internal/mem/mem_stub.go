//go:build !unix && !windows

// File: internal/mem/mem_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback backend for platforms without mapping primitives: plain Go
// allocations. Keeps the raw strategy's contract, loses the off-heap
// property.

package mem

func mapRegion(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func unmapRegion(_ []byte) error {
	return nil
}
