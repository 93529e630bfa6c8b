package sparsetree

import (
	"fmt"
	"log/slog"
)

const quadtreeK = 2
const quadtreeC = 1 << quadtreeK

var quadtreeMaxDepth = maxDepthFor(32, quadtreeK)

type record2[T any] struct {
	Payload T
	Bounds  AABB2
}

// Quadtree is the 2-D counterpart of Octree. See Octree for the
// mutation/query concurrency contract.
type Quadtree[T any] struct {
	rootBounds     AABB2
	objectsPerNode int
	maxDepth       int
	nodes          map[nodeID]int32
	objects        map[nodeID][]record2[T]
	logger         *slog.Logger
}

// NewQuadtree constructs an empty quadtree. See NewOctree for
// parameter semantics; maxDepth may go up to 15 here (2 bits per
// level in a 32-bit node id).
func NewQuadtree[T any](rootBounds AABB2, objectsPerNode, maxDepth, initialCapacity int) (*Quadtree[T], error) {
	if !rootBounds.Valid() {
		return nil, ErrInvalidBounds
	}
	if objectsPerNode < 1 {
		return nil, ErrObjectsPerNodeOutOfRange
	}
	if maxDepth <= 1 || maxDepth > quadtreeMaxDepth {
		return nil, fmt.Errorf("sparsetree: max depth %d must be in (1, %d]: %w", maxDepth, quadtreeMaxDepth, ErrMaxDepthOutOfRange)
	}
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &Quadtree[T]{
		rootBounds:     rootBounds,
		objectsPerNode: objectsPerNode,
		maxDepth:       maxDepth,
		nodes:          make(map[nodeID]int32, initialCapacity),
		objects:        make(map[nodeID][]record2[T], initialCapacity),
	}, nil
}

func (t *Quadtree[T]) SetLogger(l *slog.Logger) {
	t.logger = l
}

func (t *Quadtree[T]) Bounds() AABB2 { return t.rootBounds }

func (t *Quadtree[T]) Len() int {
	n := 0
	for _, recs := range t.objects {
		n += len(recs)
	}
	return n
}

func (t *Quadtree[T]) Insert(payload T, bounds AABB2) {
	center := t.rootBounds.Center()
	mask := maskOf2(bounds, center)
	for c := 0; c < quadtreeC; c++ {
		if mask&quadChildMask[c] != quadChildMask[c] {
			continue
		}
		cid := childID(rootID, uint8(c), quadtreeK)
		childBounds := splitQuadrant(t.rootBounds, center, c)
		if !t.tryInsert(cid, 1, childBounds, payload, bounds) {
			t.insert(cid, 1, childBounds, payload, bounds)
		}
	}
}

func (t *Quadtree[T]) insert(id nodeID, depth int, bounds AABB2, payload T, objBounds AABB2) {
	center := bounds.Center()
	mask := maskOf2(objBounds, center)
	for c := 0; c < quadtreeC; c++ {
		if mask&quadChildMask[c] != quadChildMask[c] {
			continue
		}
		cid := childID(id, uint8(c), quadtreeK)
		childBounds := splitQuadrant(bounds, center, c)
		if !t.tryInsert(cid, depth+1, childBounds, payload, objBounds) {
			t.insert(cid, depth+1, childBounds, payload, objBounds)
		}
	}
}

func (t *Quadtree[T]) InsertPoint(payload T, p Vec2) {
	bounds := AABB2{Min: p, Max: p}
	id := rootID
	nodeBounds := t.rootBounds
	for depth := 1; depth <= t.maxDepth; depth++ {
		center := nodeBounds.Center()
		idx := pointToQuadrant(p, center)
		cid := childID(id, idx, quadtreeK)
		childBounds := splitQuadrant(nodeBounds, center, int(idx))
		if t.tryInsert(cid, depth, childBounds, payload, bounds) {
			return
		}
		id = cid
		nodeBounds = childBounds
	}
}

func pointToQuadrant(p, center Vec2) uint8 {
	var idx uint8
	if p.X >= center.X {
		idx |= 1
	}
	if p.Y >= center.Y {
		idx |= 2
	}
	return idx
}

func (t *Quadtree[T]) tryInsert(id nodeID, depth int, bounds AABB2, payload T, objBounds AABB2) bool {
	count := t.nodes[id]
	if int(count) > t.objectsPerNode && depth < t.maxDepth {
		return false
	}
	t.objects[id] = append(t.objects[id], record2[T]{Payload: payload, Bounds: objBounds})
	count++
	t.nodes[id] = count
	if int(count) > t.objectsPerNode && depth < t.maxDepth {
		t.subdivide(id, depth, bounds)
	}
	return true
}

func (t *Quadtree[T]) subdivide(id nodeID, depth int, bounds AABB2) {
	bucket := t.objects[id]
	delete(t.objects, id)

	logDebug(t.logger, "subdividing quadtree node", "depth", depth, "objects", len(bucket))

	center := bounds.Center()
	var childBuckets [quadtreeC][]record2[T]
	for _, rec := range bucket {
		m := maskOf2(rec.Bounds, center)
		for c := 0; c < quadtreeC; c++ {
			if m&quadChildMask[c] == quadChildMask[c] {
				childBuckets[c] = append(childBuckets[c], rec)
			}
		}
	}

	for c := 0; c < quadtreeC; c++ {
		if len(childBuckets[c]) == 0 {
			continue
		}
		cid := childID(id, uint8(c), quadtreeK)
		t.objects[cid] = childBuckets[c]
		count := int32(len(childBuckets[c]))
		t.nodes[cid] = count
		if int(count) > t.objectsPerNode && depth+1 < t.maxDepth {
			childBounds := splitQuadrant(bounds, center, c)
			t.subdivide(cid, depth+1, childBounds)
		}
	}
}

func (t *Quadtree[T]) Clear() {
	clear(t.nodes)
	clear(t.objects)
}

func (t *Quadtree[T]) CopyFrom(src *Quadtree[T]) error {
	if t.rootBounds != src.rootBounds || t.objectsPerNode != src.objectsPerNode || t.maxDepth != src.maxDepth {
		return ErrIncompatibleCopySource
	}
	t.Clear()
	for id, count := range src.nodes {
		t.nodes[id] = count
	}
	for id, recs := range src.objects {
		cp := make([]record2[T], len(recs))
		copy(cp, recs)
		t.objects[id] = cp
	}
	return nil
}
