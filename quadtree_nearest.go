package sparsetree

// Nearest is the 2-D counterpart of Octree.Nearest.
func (t *Quadtree[T]) Nearest(point Vec2, maxDistance float32, visitor NearestVisitor2[T], distance DistanceProvider2[T]) {
	cache := NewQueryCache2[T]()
	t.NearestCached(cache, point, maxDistance, visitor, distance)
}

// NearestCached is the 2-D counterpart of Octree.NearestCached.
func (t *Quadtree[T]) NearestCached(cache *QueryCache2[T], point Vec2, maxDistance float32, visitor NearestVisitor2[T], distance DistanceProvider2[T]) {
	cache.reset()
	maxSq := maxDistance * maxDistance

	center := t.rootBounds.Center()
	for c := 0; c < quadtreeC; c++ {
		cid := childID(rootID, uint8(c), quadtreeK)
		count, exists := t.nodes[cid]
		if !exists {
			continue
		}
		childBounds := splitQuadrant(t.rootBounds, center, c)
		d := childBounds.DistanceSquared(point)
		if d > maxSq {
			continue
		}
		idx := int32(len(cache.nodes))
		cache.nodes = append(cache.nodes, nnNode2{id: cid, depth: 1, count: count, bounds: childBounds})
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
			for c := 0; c < quadtreeC; c++ {
				cid := childID(n.id, uint8(c), quadtreeK)
				childCount, exists := t.nodes[cid]
				if !exists {
					continue
				}
				childBounds := splitQuadrant(n.bounds, childCenter, c)
				d := childBounds.DistanceSquared(point)
				if d > maxSq {
					continue
				}
				idx := int32(len(cache.nodes))
				cache.nodes = append(cache.nodes, nnNode2{id: cid, depth: n.depth + 1, count: childCount, bounds: childBounds})
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
