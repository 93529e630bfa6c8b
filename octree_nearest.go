package sparsetree

// Nearest performs a one-shot nearest-neighbor search, building and
// discarding its own QueryCache3. For repeated queries against the
// same tree, build a QueryCache3 once and call NearestCached instead.
func (t *Octree[T]) Nearest(point Vec3, maxDistance float32, visitor NearestVisitor3[T], distance DistanceProvider3[T]) {
	cache := NewQueryCache3[T]()
	t.NearestCached(cache, point, maxDistance, visitor, distance)
}

// NearestCached runs a best-first nearest-neighbor search, emitting
// stored objects to visitor in ascending order of cell-derived
// distance (which matches true ascending distance whenever distance
// returns true distances rather than lower bounds). Stops as soon as
// the heap is empty or visitor returns false.
func (t *Octree[T]) NearestCached(cache *QueryCache3[T], point Vec3, maxDistance float32, visitor NearestVisitor3[T], distance DistanceProvider3[T]) {
	cache.reset()
	maxSq := maxDistance * maxDistance

	center := t.rootBounds.Center()
	for c := 0; c < octreeC; c++ {
		cid := childID(rootID, uint8(c), octreeK)
		count, exists := t.nodes[cid]
		if !exists {
			continue
		}
		childBounds := splitOctant(t.rootBounds, center, c)
		d := childBounds.DistanceSquared(point)
		if d > maxSq {
			continue
		}
		idx := int32(len(cache.nodes))
		cache.nodes = append(cache.nodes, nnNode3{id: cid, depth: 1, count: count, bounds: childBounds})
		cache.heap.push(heapEntry{distSq: d, isNode: true, idx: idx})
	}

	for {
		entry, ok := cache.heap.pop()
		if !ok {
			return
		}

		if entry.isNode {
			n := cache.nodes[entry.idx]
			leaf := int(n.count) <= t.objectsPerNode || n.depth == t.maxDepth
			if leaf {
				for _, rec := range t.objects[n.id] {
					d := distance.DistanceSquared(point, rec.Payload, rec.Bounds)
					if d > maxSq {
						continue
					}
					oidx := int32(len(cache.objs))
					cache.objs = append(cache.objs, rec)
					cache.heap.push(heapEntry{distSq: d, isNode: false, idx: oidx})
				}
				continue
			}

			childCenter := n.bounds.Center()
			for c := 0; c < octreeC; c++ {
				cid := childID(n.id, uint8(c), octreeK)
				childCount, exists := t.nodes[cid]
				if !exists {
					continue
				}
				childBounds := splitOctant(n.bounds, childCenter, c)
				d := childBounds.DistanceSquared(point)
				if d > maxSq {
					continue
				}
				idx := int32(len(cache.nodes))
				cache.nodes = append(cache.nodes, nnNode3{id: cid, depth: n.depth + 1, count: childCount, bounds: childBounds})
				cache.heap.push(heapEntry{distSq: d, isNode: true, idx: idx})
			}
			continue
		}

		rec := cache.objs[entry.idx]
		if !visitor.Visit(rec.Payload) {
			return
		}
	}
}
