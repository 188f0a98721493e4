package memory

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCellStore(t *testing.T) {
	store := NewCellStore(8)

	for addr := range 8 {
		assert.Equal(t, 0, store.Read(addr))
	}

	store.Set(3)
	store.Set(5)
	assert.Equal(t, 1, store.Read(3))
	assert.Equal(t, 1, store.Read(5))
	assert.Equal(t, 0, store.Read(4))

	// setting an already set cell stays 1
	store.Set(3)
	assert.Equal(t, 1, store.Read(3))

	store.ZeroRange(2, 3)
	assert.Equal(t, 0, store.Read(3))
	assert.Equal(t, 1, store.Read(5))
}
