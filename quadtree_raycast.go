package sparsetree

import (
	"math"
	"sort"
)

type rayResult2[T any] struct {
	payload T
	point   Vec2
}

type quadRayCandidate struct {
	idx    int
	tEnter float32
}

// Raycast is the 2-D counterpart of Octree.Raycast.
func (t *Quadtree[T]) Raycast(ray Ray2, intersecter Intersecter2[T], maxDistance float32) (payload T, point Vec2, ok bool) {
	hit, tEnter, _ := ray.IntersectAABB(t.rootBounds)
	if !hit {
		return
	}
	hasMax := maxDistance > 0
	if hasMax && tEnter > maxDistance {
		return
	}
	tEnter = max32(tEnter, 0)
	remaining := maxDistance - tEnter
	rootRay := ray.Reorigin(ray.At(tEnter))

	center := t.rootBounds.Center()
	candidates := make([]quadRayCandidate, 0, quadtreeC)
	for c := 0; c < quadtreeC; c++ {
		cid := childID(rootID, uint8(c), quadtreeK)
		if _, exists := t.nodes[cid]; !exists {
			continue
		}
		childBounds := splitQuadrant(t.rootBounds, center, c)
		chit, ct, _ := rootRay.IntersectAABB(childBounds)
		if !chit || (hasMax && ct > remaining) {
			continue
		}
		candidates = append(candidates, quadRayCandidate{c, ct})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].tEnter < candidates[j].tEnter })

	for _, cand := range candidates {
		cid := childID(rootID, uint8(cand.idx), quadtreeK)
		childBounds := splitQuadrant(t.rootBounds, center, cand.idx)
		advance := max32(cand.tEnter, 0)
		childRay := rootRay.Reorigin(rootRay.At(advance))
		childRemaining := remaining - advance
		count := t.nodes[cid]
		if res, found := t.raycastNode(cid, 1, childBounds, count, childRay, childRemaining, hasMax, intersecter); found {
			return res.payload, res.point, true
		}
	}
	return
}

func (t *Quadtree[T]) raycastNode(id nodeID, depth int, bounds AABB2, count int32, ray Ray2, remaining float32, hasMax bool, intersecter Intersecter2[T]) (rayResult2[T], bool) {
	leaf := int(count) <= t.objectsPerNode || depth == t.maxDepth
	if leaf {
		bestT := float32(math.MaxFloat32)
		var best rayResult2[T]
		found := false
		for _, rec := range t.objects[id] {
			hit, tt := intersecter.Intersect(ray, rec.Payload, rec.Bounds)
			if !hit || tt < 0 || tt >= bestT {
				continue
			}
			if hasMax && tt > remaining {
				continue
			}
			bestT = tt
			best = rayResult2[T]{payload: rec.Payload, point: ray.At(tt)}
			found = true
		}
		return best, found
	}

	center := bounds.Center()
	candidates := make([]quadRayCandidate, 0, quadtreeC)
	for c := 0; c < quadtreeC; c++ {
		cid := childID(id, uint8(c), quadtreeK)
		if _, exists := t.nodes[cid]; !exists {
			continue
		}
		childBounds := splitQuadrant(bounds, center, c)
		hit, tEnter, _ := ray.IntersectAABB(childBounds)
		if !hit || (hasMax && tEnter > remaining) {
			continue
		}
		candidates = append(candidates, quadRayCandidate{c, tEnter})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].tEnter < candidates[j].tEnter })

	for _, cand := range candidates {
		cid := childID(id, uint8(cand.idx), quadtreeK)
		childBounds := splitQuadrant(bounds, center, cand.idx)
		advance := max32(cand.tEnter, 0)
		childRay := ray.Reorigin(ray.At(advance))
		childRemaining := remaining - advance
		childCount := t.nodes[cid]
		if res, found := t.raycastNode(cid, depth+1, childBounds, childCount, childRay, childRemaining, hasMax, intersecter); found {
			return res, true
		}
	}
	return rayResult2[T]{}, false
}
