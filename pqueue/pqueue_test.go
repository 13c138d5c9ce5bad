package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/arborist-go/steinertree/pqueue"
	"github.com/stretchr/testify/require"
)

// newImpls returns one fresh queue per Interface implementation so every
// test below runs against both the binary heap and the Fibonacci heap.
func newImpls(capacity int) map[string]pqueue.Interface {
	return map[string]pqueue.Interface{
		"binary":     pqueue.NewBinaryHeap(capacity),
		"fibonacci":  pqueue.NewFibonacciHeap(capacity),
	}
}

func TestPQueue_InsertExtractOrder(t *testing.T) {
	for name, pq := range newImpls(5) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, pq.Insert(0, 30))
			require.NoError(t, pq.Insert(1, 10))
			require.NoError(t, pq.Insert(2, 20))
			require.Equal(t, 3, pq.Len())

			item, key, err := pq.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, 1, item)
			require.Equal(t, int64(10), key)

			item, key, err = pq.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, 2, item)
			require.Equal(t, int64(20), key)

			item, key, err = pq.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, 0, item)
			require.Equal(t, int64(30), key)

			require.Equal(t, 0, pq.Len())
			_, _, err = pq.ExtractMin()
			require.ErrorIs(t, err, pqueue.ErrEmpty)
		})
	}
}

func TestPQueue_DecreaseKey(t *testing.T) {
	for name, pq := range newImpls(3) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, pq.Insert(0, 100))
			require.NoError(t, pq.Insert(1, 50))
			require.NoError(t, pq.DecreaseKey(0, 10))

			item, key, err := pq.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, 0, item)
			require.Equal(t, int64(10), key)

			require.ErrorIs(t, pq.DecreaseKey(0, 1), pqueue.ErrItemAbsent)
			require.ErrorIs(t, pq.DecreaseKey(1, 999), pqueue.ErrKeyIncreased)
		})
	}
}

func TestPQueue_InsertDuplicateRejected(t *testing.T) {
	for name, pq := range newImpls(2) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, pq.Insert(0, 1))
			require.ErrorIs(t, pq.Insert(0, 2), pqueue.ErrItemPresent)
		})
	}
}

// TestPQueue_HeapProperty randomizes insert/decrease-key/extract-min
// sequences and asserts extracted keys come out non-decreasing
// (spec.md §8, "Heap property").
func TestPQueue_HeapProperty(t *testing.T) {
	const n = 500
	r := rand.New(rand.NewSource(42))

	for name, pq := range newImpls(n) {
		t.Run(name, func(t *testing.T) {
			keys := make([]int64, n)
			for i := 0; i < n; i++ {
				keys[i] = int64(r.Intn(1_000_000))
				require.NoError(t, pq.Insert(i, keys[i]))
			}
			// Randomly decrease some keys before draining.
			for i := 0; i < n/2; i++ {
				item := r.Intn(n)
				delta := int64(r.Intn(int(keys[item]) + 1))
				newKey := keys[item] - delta
				if err := pq.DecreaseKey(item, newKey); err == nil {
					keys[item] = newKey
				}
			}

			var last int64 = -1
			for pq.Len() > 0 {
				_, key, err := pq.ExtractMin()
				require.NoError(t, err)
				require.GreaterOrEqual(t, key, last)
				last = key
			}
		})
	}
}
