package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-alloc/alloc"
	"github.com/momentics/hioload-alloc/fake"
)

type elem2000 struct {
	data [2000]byte
}

func TestBlockSizeFor(t *testing.T) {
	// 65536 bytes / element size.
	assert.Equal(t, 16384, alloc.BlockSizeFor[uint32]())
	assert.Equal(t, 8192, alloc.BlockSizeFor[uint64]())

	// 65536/2000 = 32 <= 64: floor protects huge element types.
	assert.Equal(t, 64, alloc.BlockSizeFor[elem2000]())

	// Size cannot drive the heuristic: fixed fallback.
	assert.Equal(t, 16384, alloc.BlockSizeFor[struct{}]())
}

func TestBlockSizeForStable(t *testing.T) {
	first := alloc.BlockSizeFor[int32]()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, alloc.BlockSizeFor[int32]())
	}
}

func TestDefaultBlockSizeMatchesHeuristic(t *testing.T) {
	pooled := alloc.NewPooled[uint64](&fake.BufferSource[uint64]{})
	assert.Equal(t, 8192, pooled.DefaultBlockSize())

	raw, err := alloc.NewRaw[uint32]()
	require.NoError(t, err)
	assert.Equal(t, 16384, raw.DefaultBlockSize())
}
