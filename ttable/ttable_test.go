package ttable_test

import (
	"testing"

	"chess-rules/ttable"

	"github.com/stretchr/testify/assert"
)

func TestProbeAfterStore(t *testing.T) {
	tt := ttable.New(1)
	tt.Store(0xABCDEF, 3, 8902)

	nodes, ok := tt.Probe(0xABCDEF, 3)
	assert.True(t, ok)
	assert.Equal(t, uint64(8902), nodes)

	_, ok = tt.Probe(0xABCDEF, 2)
	assert.False(t, ok, "depth must match")
	_, ok = tt.Probe(0x123456, 3)
	assert.False(t, ok)

	st := tt.Stats()
	assert.Equal(t, uint64(3), st.Probes)
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, uint64(1), st.Stores)
}

func TestStoreUpdatesInPlace(t *testing.T) {
	tt := ttable.New(1)
	tt.Store(42, 4, 1)
	tt.Store(42, 4, 2)
	nodes, ok := tt.Probe(42, 4)
	assert.True(t, ok)
	assert.Equal(t, uint64(2), nodes)
}

func TestReplaceShallowest(t *testing.T) {
	tt := ttable.New(0) // a single cluster of four slots
	assert.Equal(t, 4, tt.Len())

	tt.Store(1, 5, 100)
	tt.Store(2, 2, 200)
	tt.Store(3, 7, 300)
	tt.Store(4, 4, 400)
	tt.Store(5, 6, 500)

	_, ok := tt.Probe(2, 2)
	assert.False(t, ok, "shallowest entry evicted")
	for _, key := range []uint64{1, 3, 4, 5} {
		_, ok := tt.Probe(key, map[uint64]int8{1: 5, 3: 7, 4: 4, 5: 6}[key])
		assert.True(t, ok, "key %d", key)
	}
}

func TestClear(t *testing.T) {
	tt := ttable.New(1)
	tt.Store(9, 1, 9)
	tt.Clear()
	_, ok := tt.Probe(9, 1)
	assert.False(t, ok)
	assert.Equal(t, uint64(0), tt.Stats().Hits)
}

func TestZeroTable(t *testing.T) {
	var tt ttable.Table
	tt.Store(1, 1, 1)
	_, ok := tt.Probe(1, 1)
	assert.False(t, ok)
}
