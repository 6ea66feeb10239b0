//go:build unix

// File: internal/mem/mem_unix.go
// Author: momentics <momentics@gmail.com>
//
// Unix backend: anonymous private mmap, invisible to the Go GC.

package mem

import "golang.org/x/sys/unix"

func mapRegion(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
}

func unmapRegion(b []byte) error {
	return unix.Munmap(b)
}
