//go:build windows

// File: internal/mem/mem_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows backend: VirtualAlloc committed pages, released with
// VirtualFree(MEM_RELEASE).

package mem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func mapRegion(n int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(n),
		windows.MEM_COMMIT|windows.MEM_RESERVE,
		windows.PAGE_READWRITE,
	)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n), nil
}

func unmapRegion(b []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(&b[0])), 0, windows.MEM_RELEASE)
}
