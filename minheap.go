package sparsetree

// heapEntry is one slot in the best-first priority queue used by
// nearest-neighbor search. It never holds a payload directly — idx
// references a slot in the query cache's node or object scratch
// vector, keeping heap entries small so swaps during sift stay cheap.
type heapEntry struct {
	distSq float32
	isNode bool
	idx    int32
}

// minHeap is a simple indexed binary min-heap ordered by ascending
// distSq. It owns no scratch of its own beyond the entry slice, and
// is reset (not reallocated) between queries by QueryCache.
type minHeap struct {
	data []heapEntry
}

func (h *minHeap) reset() {
	h.data = h.data[:0]
}

func (h *minHeap) push(e heapEntry) {
	h.data = append(h.data, e)
	i := len(h.data) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if h.data[parent].distSq <= h.data[i].distSq {
			break
		}
		h.data[parent], h.data[i] = h.data[i], h.data[parent]
		i = parent
	}
}

// pop returns the minimum entry, false if the heap is empty.
func (h *minHeap) pop() (heapEntry, bool) {
	if len(h.data) == 0 {
		return heapEntry{}, false
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	h.siftDown(0)
	return top, true
}

func (h *minHeap) siftDown(i int) {
	n := len(h.data)
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i
		if left < n && h.data[left].distSq < h.data[smallest].distSq {
			smallest = left
		}
		if right < n && h.data[right].distSq < h.data[smallest].distSq {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
