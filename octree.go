package sparsetree

import (
	"fmt"
	"log/slog"
)

const octreeK = 3
const octreeC = 1 << octreeK

// octreeMaxDepth is the deepest level a 32-bit node id can address
// with 3 bits consumed per level, leaving the root's guard bit.
var octreeMaxDepth = maxDepthFor(32, octreeK)

// record3 is a stored object: a copy of the caller's payload plus the
// bounds it was inserted under.
type record3[T any] struct {
	Payload T
	Bounds  AABB3
}

// Octree is a generic, sparse 3-D spatial index. The zero value is
// not usable; construct with NewOctree. An Octree must not be mutated
// (Insert, InsertPoint, Clear, CopyFrom) concurrently with any other
// operation on the same instance, including queries.
type Octree[T any] struct {
	rootBounds     AABB3
	objectsPerNode int
	maxDepth       int
	nodes          map[nodeID]int32
	objects        map[nodeID][]record3[T]
	logger         *slog.Logger
}

// NewOctree constructs an empty octree over rootBounds. objectsPerNode
// is the per-leaf subdivision threshold (>=1); maxDepth bounds the
// recursion depth (1 < maxDepth <= 10 for 32-bit node ids);
// initialCapacity pre-sizes the backing maps.
func NewOctree[T any](rootBounds AABB3, objectsPerNode, maxDepth, initialCapacity int) (*Octree[T], error) {
	if !rootBounds.Valid() {
		return nil, ErrInvalidBounds
	}
	if objectsPerNode < 1 {
		return nil, ErrObjectsPerNodeOutOfRange
	}
	if maxDepth <= 1 || maxDepth > octreeMaxDepth {
		return nil, fmt.Errorf("sparsetree: max depth %d must be in (1, %d]: %w", maxDepth, octreeMaxDepth, ErrMaxDepthOutOfRange)
	}
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &Octree[T]{
		rootBounds:     rootBounds,
		objectsPerNode: objectsPerNode,
		maxDepth:       maxDepth,
		nodes:          make(map[nodeID]int32, initialCapacity),
		objects:        make(map[nodeID][]record3[T], initialCapacity),
	}, nil
}

// SetLogger attaches an optional debug logger. A nil logger (the
// default) disables logging entirely.
func (t *Octree[T]) SetLogger(l *slog.Logger) {
	t.logger = l
}

// Bounds returns the tree's root bounds.
func (t *Octree[T]) Bounds() AABB3 { return t.rootBounds }

// Len returns the total number of object insertions recorded by the
// tree. Because an AABB spanning multiple cells is replicated, this
// can exceed the number of distinct Insert calls.
func (t *Octree[T]) Len() int {
	n := 0
	for _, recs := range t.objects {
		n += len(recs)
	}
	return n
}

// Insert adds payload under bounds. An object whose bounds span
// multiple child cells is replicated into every overlapping leaf.
// Insertion never fails; bounds lying wholly outside the root are
// clamped into the nearest cells by the mask test.
func (t *Octree[T]) Insert(payload T, bounds AABB3) {
	center := t.rootBounds.Center()
	mask := maskOf3(bounds, center)
	for c := 0; c < octreeC; c++ {
		if mask&octChildMask[c] != octChildMask[c] {
			continue
		}
		cid := childID(rootID, uint8(c), octreeK)
		childBounds := splitOctant(t.rootBounds, center, c)
		if !t.tryInsert(cid, 1, childBounds, payload, bounds) {
			t.insert(cid, 1, childBounds, payload, bounds)
		}
	}
}

func (t *Octree[T]) insert(id nodeID, depth int, bounds AABB3, payload T, objBounds AABB3) {
	center := bounds.Center()
	mask := maskOf3(objBounds, center)
	for c := 0; c < octreeC; c++ {
		if mask&octChildMask[c] != octChildMask[c] {
			continue
		}
		cid := childID(id, uint8(c), octreeK)
		childBounds := splitOctant(bounds, center, c)
		if !t.tryInsert(cid, depth+1, childBounds, payload, objBounds) {
			t.insert(cid, depth+1, childBounds, payload, objBounds)
		}
	}
}

// InsertPoint is the point fast-path: a single descent driven by
// point-to-child-index lookups instead of a mask against all children.
// A point exactly on a node's center goes to the positive side on
// every axis, by the >= rule in pointToOctant.
func (t *Octree[T]) InsertPoint(payload T, p Vec3) {
	bounds := AABB3{Min: p, Max: p}
	id := rootID
	nodeBounds := t.rootBounds
	for depth := 1; depth <= t.maxDepth; depth++ {
		center := nodeBounds.Center()
		idx := pointToOctant(p, center)
		cid := childID(id, idx, octreeK)
		childBounds := splitOctant(nodeBounds, center, int(idx))
		if t.tryInsert(cid, depth, childBounds, payload, bounds) {
			return
		}
		id = cid
		nodeBounds = childBounds
	}
}

func pointToOctant(p, center Vec3) uint8 {
	var idx uint8
	if p.X >= center.X {
		idx |= 1
	}
	if p.Y >= center.Y {
		idx |= 2
	}
	if p.Z >= center.Z {
		idx |= 4
	}
	return idx
}

// tryInsert admits the object at node id if it is (or becomes) a
// leaf, subdividing when the threshold is exceeded. Returns false if
// the node is already internal, in which case the caller must recurse
// into id's children instead.
func (t *Octree[T]) tryInsert(id nodeID, depth int, bounds AABB3, payload T, objBounds AABB3) bool {
	count := t.nodes[id]
	if int(count) > t.objectsPerNode && depth < t.maxDepth {
		return false
	}
	t.objects[id] = append(t.objects[id], record3[T]{Payload: payload, Bounds: objBounds})
	count++
	t.nodes[id] = count
	if int(count) > t.objectsPerNode && depth < t.maxDepth {
		t.subdivide(id, depth, bounds)
	}
	return true
}

// subdivide redistributes id's bucket across its (up to 8) children,
// recursing into any child that itself ends up over threshold. id's
// own occupancy count is left as-is (already > objectsPerNode),
// marking it as no longer a leaf.
func (t *Octree[T]) subdivide(id nodeID, depth int, bounds AABB3) {
	bucket := t.objects[id]
	delete(t.objects, id)

	logDebug(t.logger, "subdividing octree node", "depth", depth, "objects", len(bucket))

	center := bounds.Center()
	var childBuckets [octreeC][]record3[T]
	for _, rec := range bucket {
		m := maskOf3(rec.Bounds, center)
		for c := 0; c < octreeC; c++ {
			if m&octChildMask[c] == octChildMask[c] {
				childBuckets[c] = append(childBuckets[c], rec)
			}
		}
	}

	for c := 0; c < octreeC; c++ {
		if len(childBuckets[c]) == 0 {
			continue
		}
		cid := childID(id, uint8(c), octreeK)
		t.objects[cid] = childBuckets[c]
		count := int32(len(childBuckets[c]))
		t.nodes[cid] = count
		if int(count) > t.objectsPerNode && depth+1 < t.maxDepth {
			childBounds := splitOctant(bounds, center, c)
			t.subdivide(cid, depth+1, childBounds)
		}
	}
}

// Clear empties the tree but retains the backing maps' capacity.
func (t *Octree[T]) Clear() {
	clear(t.nodes)
	clear(t.objects)
}

// CopyFrom replaces t's contents with a duplicate of src's. src must
// share t's root bounds, objects-per-node, and max depth.
func (t *Octree[T]) CopyFrom(src *Octree[T]) error {
	if t.rootBounds != src.rootBounds || t.objectsPerNode != src.objectsPerNode || t.maxDepth != src.maxDepth {
		return ErrIncompatibleCopySource
	}
	t.Clear()
	for id, count := range src.nodes {
		t.nodes[id] = count
	}
	for id, recs := range src.objects {
		cp := make([]record3[T], len(recs))
		copy(cp, recs)
		t.objects[id] = cp
	}
	return nil
}
