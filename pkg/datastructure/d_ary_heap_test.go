package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapExtractsInRankOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ranks := make([]float64, 200)
	for i := range ranks {
		ranks[i] = rng.Float64() * 1000
	}

	h := NewFourAryHeap[int]()
	for i, r := range ranks {
		h.Insert(NewPriorityQueueNode(r, i))
	}

	sorted := append([]float64(nil), ranks...)
	sort.Float64s(sorted)

	for _, want := range sorted {
		node, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, want, node.GetRank())
	}
	assert.True(t, h.IsEmpty())

	_, err := h.ExtractMin()
	assert.Error(t, err)
}

func TestHeapDecreaseKey(t *testing.T) {
	h := NewBinaryHeap[string]()
	a := NewPriorityQueueNode(10.0, "a")
	b := NewPriorityQueueNode(20.0, "b")
	c := NewPriorityQueueNode(30.0, "c")
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	require.NoError(t, h.DecreaseKey(c, 5.0))

	node, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "c", node.GetItem())

	// increasing a key through DecreaseKey is rejected
	assert.Error(t, h.DecreaseKey(a, 100.0))
}
