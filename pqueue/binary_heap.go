package pqueue

// BinaryHeap is a 1-based indexed binary min-heap over item ids in
// [0, capacity). heap[1:len+1] holds (item, key) pairs; pos[item] is that
// item's current slot in heap, or -1 if the item is not queued. Keeping pos
// lets DecreaseKey locate an item in O(1) instead of scanning the heap,
// which is the whole point of an "indexed" heap over container/heap's
// lazy-decrease-key style (see dijkstra/dijkstra.go's nodePQ for the
// alternative that this module avoids at DP scale: the DP runs Dijkstra
// O(2^k) times, which makes the extra heap churn from lazy duplicates
// expensive).
type BinaryHeap struct {
	heap []entry // heap[0] unused; heap[1] is the root
	pos  []int   // pos[item] -> index in heap, or -1
}

type entry struct {
	item int
	key  int64
}

// NewBinaryHeap allocates an empty heap over item ids [0, capacity).
func NewBinaryHeap(capacity int) *BinaryHeap {
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = -1
	}
	return &BinaryHeap{
		heap: make([]entry, 1, capacity+1), // index 0 is a dummy slot
		pos:  pos,
	}
}

// Len returns the number of queued items.
func (h *BinaryHeap) Len() int { return len(h.heap) - 1 }

// Contains reports whether item is currently queued.
func (h *BinaryHeap) Contains(item int) bool {
	return item >= 0 && item < len(h.pos) && h.pos[item] != -1
}

// Insert adds item with the given key.
func (h *BinaryHeap) Insert(item int, key int64) error {
	if h.Contains(item) {
		return ErrItemPresent
	}
	h.heap = append(h.heap, entry{item: item, key: key})
	idx := len(h.heap) - 1
	h.pos[item] = idx
	h.siftUp(idx)
	return nil
}

// ExtractMin removes and returns the item with the smallest key.
func (h *BinaryHeap) ExtractMin() (int, int64, error) {
	if h.Len() == 0 {
		return 0, 0, ErrEmpty
	}
	top := h.heap[1]
	last := len(h.heap) - 1
	h.swap(1, last)
	h.heap = h.heap[:last]
	h.pos[top.item] = -1
	if len(h.heap) > 1 {
		h.siftDown(1)
	}
	return top.item, top.key, nil
}

// DecreaseKey lowers item's key to newKey.
func (h *BinaryHeap) DecreaseKey(item int, newKey int64) error {
	if !h.Contains(item) {
		return ErrItemAbsent
	}
	idx := h.pos[item]
	if newKey > h.heap[idx].key {
		return ErrKeyIncreased
	}
	h.heap[idx].key = newKey
	h.siftUp(idx)
	return nil
}

func (h *BinaryHeap) siftUp(idx int) {
	for idx > 1 {
		parent := idx / 2
		if h.heap[parent].key <= h.heap[idx].key {
			break
		}
		h.swap(parent, idx)
		idx = parent
	}
}

func (h *BinaryHeap) siftDown(idx int) {
	n := len(h.heap) - 1
	for {
		left, right := idx*2, idx*2+1
		smallest := idx
		if left <= n && h.heap[left].key < h.heap[smallest].key {
			smallest = left
		}
		if right <= n && h.heap[right].key < h.heap[smallest].key {
			smallest = right
		}
		if smallest == idx {
			break
		}
		h.swap(idx, smallest)
		idx = smallest
	}
}

func (h *BinaryHeap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].item] = i
	h.pos[h.heap[j].item] = j
}
