package sparsetree

import "testing"

func TestMinHeapOrdersAscending(t *testing.T) {
	var h minHeap
	dists := []float32{5, 1, 9, 3, 7, 0, 2}
	for i, d := range dists {
		h.push(heapEntry{distSq: d, idx: int32(i)})
	}

	var last float32 = -1
	count := 0
	for {
		e, ok := h.pop()
		if !ok {
			break
		}
		if e.distSq < last {
			t.Fatalf("pop returned %v after %v, heap order violated", e.distSq, last)
		}
		last = e.distSq
		count++
	}
	if count != len(dists) {
		t.Errorf("popped %d entries, want %d", count, len(dists))
	}
}

func TestMinHeapEmptyPop(t *testing.T) {
	var h minHeap
	if _, ok := h.pop(); ok {
		t.Error("pop on empty heap should report ok=false")
	}
}

func TestMinHeapReset(t *testing.T) {
	var h minHeap
	h.push(heapEntry{distSq: 1})
	h.push(heapEntry{distSq: 2})
	h.reset()
	if _, ok := h.pop(); ok {
		t.Error("pop after reset should report ok=false")
	}
}
