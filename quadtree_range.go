package sparsetree

// Range is the 2-D counterpart of Octree.Range.
func (t *Quadtree[T]) Range(query AABB2, visitor RangeVisitor2[T]) {
	center := t.rootBounds.Center()
	mask := maskOf2(query, center)
	for c := 0; c < quadtreeC; c++ {
		if mask&quadChildMask[c] != quadChildMask[c] {
			continue
		}
		cid := childID(rootID, uint8(c), quadtreeK)
		count, exists := t.nodes[cid]
		if !exists {
			continue
		}
		childBounds := splitQuadrant(t.rootBounds, center, c)
		if !t.rangeNode(cid, 1, childBounds, count, query, visitor) {
			return
		}
	}
}

func (t *Quadtree[T]) rangeNode(id nodeID, depth int, bounds AABB2, count int32, query AABB2, visitor RangeVisitor2[T]) bool {
	leaf := int(count) <= t.objectsPerNode || depth == t.maxDepth
	if leaf {
		for _, rec := range t.objects[id] {
			if !visitor.Visit(rec.Payload, rec.Bounds, query) {
				return false
			}
		}
		return true
	}

	center := bounds.Center()
	mask := maskOf2(query, center)
	for c := 0; c < quadtreeC; c++ {
		if mask&quadChildMask[c] != quadChildMask[c] {
			continue
		}
		cid := childID(id, uint8(c), quadtreeK)
		childCount, exists := t.nodes[cid]
		if !exists {
			continue
		}
		childBounds := splitQuadrant(bounds, center, c)
		if !t.rangeNode(cid, depth+1, childBounds, childCount, query, visitor) {
			return false
		}
	}
	return true
}
