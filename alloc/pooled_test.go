package alloc_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-alloc/alloc"
	"github.com/momentics/hioload-alloc/api"
	"github.com/momentics/hioload-alloc/fake"
	"github.com/momentics/hioload-alloc/pool"
)

func TestPooledViewLength(t *testing.T) {
	a := alloc.NewPooled[byte](pool.New[byte](0))
	for _, length := range []int{0, 1, 3, 100, 1000, 70000} {
		buf, err := a.Allocate(length)
		require.NoError(t, err)
		// Exactly length elements, whatever capacity the pool provided.
		assert.Len(t, buf.View(), length)
		buf.Release()
	}
}

func TestPooledReuseAfterRelease(t *testing.T) {
	src := &fake.BufferSource[int]{}
	a := alloc.NewPooled[int](src)

	b1, err := a.Allocate(100)
	require.NoError(t, err)
	for i := range b1.View() {
		b1.View()[i] = 7
	}
	b1.Release()
	assert.Equal(t, 1, src.Puts())

	b2, err := a.Allocate(100)
	require.NoError(t, err)
	assert.Equal(t, 2, src.Gets())
	assert.Equal(t, 0, src.Idle(), "released buffer should be re-rented")
	// Same backing storage: previous contents still visible.
	assert.Equal(t, 7, b2.View()[0])
	b2.Release()
}

func TestPooledDoubleRelease(t *testing.T) {
	src := &fake.BufferSource[int]{}
	a := alloc.NewPooled[int](src)

	buf, err := a.Allocate(100)
	require.NoError(t, err)
	buf.Release()
	buf.Release()
	buf.Release()
	assert.Equal(t, 1, src.Puts(), "exactly one return regardless of release count")
	assert.Nil(t, buf.View())
}

func TestPooledConcurrentRelease(t *testing.T) {
	src := &fake.BufferSource[byte]{}
	a := alloc.NewPooled[byte](src)

	buf, err := a.Allocate(64)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf.Release()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, src.Puts())
}

func TestPooledNegativeLength(t *testing.T) {
	a := alloc.NewPooled[int](&fake.BufferSource[int]{})
	buf, err := a.Allocate(-1)
	assert.Nil(t, buf)
	assert.True(t, errors.Is(err, api.ErrInvalidArgument))
}

func TestPooledClearPartial(t *testing.T) {
	a := alloc.NewPooled[int](&fake.BufferSource[int]{})
	buf, err := a.Allocate(10)
	require.NoError(t, err)
	defer buf.Release()

	for i := range buf.View() {
		buf.View()[i] = 7
	}
	a.Clear(buf, 4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0, buf.View()[i])
	}
	for i := 4; i < 10; i++ {
		assert.Equal(t, 7, buf.View()[i])
	}
}

func TestPooledStats(t *testing.T) {
	a := alloc.NewPooled[int](&fake.BufferSource[int]{})

	b1, err := a.Allocate(8)
	require.NoError(t, err)
	b2, err := a.Allocate(8)
	require.NoError(t, err)

	assert.Equal(t, api.Stats{TotalAlloc: 2, TotalFree: 0, InUse: 2}, a.Stats())
	b1.Release()
	b1.Release() // no effect on accounting
	b2.Release()
	assert.Equal(t, api.Stats{TotalAlloc: 2, TotalFree: 2, InUse: 0}, a.Stats())
}
