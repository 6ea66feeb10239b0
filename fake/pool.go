// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake buffer source implementations for testing.

package fake

import (
	"fmt"
	"sync"

	"github.com/momentics/hioload-alloc/api"
)

// BufferSource is a counting implementation of api.BufferSource. Each
// returned buffer is remembered and handed to the next Get that fits,
// so tests can observe reuse.
type BufferSource[T any] struct {
	mu   sync.Mutex
	gets int
	puts int
	idle [][]T
}

var _ api.BufferSource[int] = (*BufferSource[int])(nil)

// Get returns a buffer of at least minLen elements, preferring a
// previously returned one.
func (s *BufferSource[T]) Get(minLen int) ([]T, error) {
	if minLen < 0 {
		return nil, fmt.Errorf("fake: get %d elements: %w", minLen, api.ErrInvalidArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	for i, buf := range s.idle {
		if cap(buf) >= minLen {
			s.idle = append(s.idle[:i], s.idle[i+1:]...)
			return buf[:cap(buf)], nil
		}
	}
	return make([]T, minLen), nil
}

// Put records the returned buffer for reuse.
func (s *BufferSource[T]) Put(buf []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	s.idle = append(s.idle, buf)
}

// Gets reports how many Get calls were made.
func (s *BufferSource[T]) Gets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets
}

// Puts reports how many Put calls were made.
func (s *BufferSource[T]) Puts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

// Idle reports how many buffers were returned and not yet re-rented.
func (s *BufferSource[T]) Idle() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.idle)
}
