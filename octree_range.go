package sparsetree

// Range enumerates every stored object whose leaf cell potentially
// overlaps query, delivering each to visitor. The core's own overlap
// test is at node-cell granularity, not object-AABB vs query-AABB —
// the visitor is responsible for the finer check if it cares, and for
// deduplicating objects that span multiple leaves.
func (t *Octree[T]) Range(query AABB3, visitor RangeVisitor3[T]) {
	center := t.rootBounds.Center()
	mask := maskOf3(query, center)
	for c := 0; c < octreeC; c++ {
		if mask&octChildMask[c] != octChildMask[c] {
			continue
		}
		cid := childID(rootID, uint8(c), octreeK)
		count, exists := t.nodes[cid]
		if !exists {
			continue
		}
		childBounds := splitOctant(t.rootBounds, center, c)
		if !t.rangeNode(cid, 1, childBounds, count, query, visitor) {
			return
		}
	}
}

// rangeNode returns false if the visitor asked to stop.
func (t *Octree[T]) rangeNode(id nodeID, depth int, bounds AABB3, count int32, query AABB3, visitor RangeVisitor3[T]) bool {
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
	mask := maskOf3(query, center)
	for c := 0; c < octreeC; c++ {
		if mask&octChildMask[c] != octChildMask[c] {
			continue
		}
		cid := childID(id, uint8(c), octreeK)
		childCount, exists := t.nodes[cid]
		if !exists {
			continue
		}
		childBounds := splitOctant(bounds, center, c)
		if !t.rangeNode(cid, depth+1, childBounds, childCount, query, visitor) {
			return false
		}
	}
	return true
}
