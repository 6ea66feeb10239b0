// File: alloc/clear.go
// Author: momentics <momentics@gmail.com>

package alloc

// ZeroFill zeroes the first n elements of view. It is the shared
// default Clear implementation; any strategy may substitute a stronger
// erase in its own Clear method. n is clamped to the view length and
// negative n is a no-op.
func ZeroFill[T any](view []T, n int) {
	if n < 0 {
		return
	}
	if n > len(view) {
		n = len(view)
	}
	clear(view[:n])
}
