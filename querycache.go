package sparsetree

// nnNode3 is a node wrapper created on the fly during a 3-D
// nearest-neighbor descent; nodes are referenced from the heap by
// index into QueryCache3.nodes rather than by pointer.
type nnNode3 struct {
	id     nodeID
	depth  int
	count  int32
	bounds AABB3
}

// QueryCache3 holds the scratch state for Octree.NearestCached: the
// node and object vectors nearest-neighbor search promotes candidates
// into, and the min-heap ordering them. Two vectors are used instead
// of one tagged-union vector because the heap entries that reference
// them stay small, which dominates swap cost during sift.
//
// A QueryCache3 amortizes allocation across many queries against the
// same tree. It must not be used concurrently by more than one
// goroutine; construct one cache per goroutine, or use Octree.Nearest
// for a one-shot query that builds and discards its own cache.
type QueryCache3[T any] struct {
	nodes []nnNode3
	objs  []record3[T]
	heap  minHeap
}

// NewQueryCache3 returns an empty, reusable nearest-neighbor scratch
// cache for an Octree[T].
func NewQueryCache3[T any]() *QueryCache3[T] {
	return &QueryCache3[T]{}
}

func (c *QueryCache3[T]) reset() {
	c.nodes = c.nodes[:0]
	c.objs = c.objs[:0]
	c.heap.reset()
}

// nnNode2 is the 2-D counterpart of nnNode3.
type nnNode2 struct {
	id     nodeID
	depth  int
	count  int32
	bounds AABB2
}

// QueryCache2 is the 2-D counterpart of QueryCache3.
type QueryCache2[T any] struct {
	nodes []nnNode2
	objs  []record2[T]
	heap  minHeap
}

func NewQueryCache2[T any]() *QueryCache2[T] {
	return &QueryCache2[T]{}
}

func (c *QueryCache2[T]) reset() {
	c.nodes = c.nodes[:0]
	c.objs = c.objs[:0]
	c.heap.reset()
}
