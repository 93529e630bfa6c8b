package sparsetree

import (
	"math"
	"sort"
)

type rayResult3[T any] struct {
	payload T
	point   Vec3
}

// octRayCandidate is a child octant whose cell the ray enters,
// together with its entry parameter; candidates are visited in
// ascending tEnter order so the first leaf hit found is the globally
// nearest (ray-entry-ordered descent, spec'd as Daeken-style plane
// ordering; here realized as sorting the overlapping children by
// entry distance rather than incrementally flipping plane crossings —
// both produce the same entry-order traversal).
type octRayCandidate struct {
	idx    int
	tEnter float32
}

// Raycast returns the stored object whose bounds the ray enters
// earliest, per the caller's Intersecter, along with the world-space
// hit point. maxDistance <= 0 means no cutoff. ok is false if nothing
// is hit within range.
func (t *Octree[T]) Raycast(ray Ray3, intersecter Intersecter3[T], maxDistance float32) (payload T, point Vec3, ok bool) {
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
	candidates := make([]octRayCandidate, 0, octreeC)
	for c := 0; c < octreeC; c++ {
		cid := childID(rootID, uint8(c), octreeK)
		if _, exists := t.nodes[cid]; !exists {
			continue
		}
		childBounds := splitOctant(t.rootBounds, center, c)
		chit, ct, _ := rootRay.IntersectAABB(childBounds)
		if !chit || (hasMax && ct > remaining) {
			continue
		}
		candidates = append(candidates, octRayCandidate{c, ct})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].tEnter < candidates[j].tEnter })

	for _, cand := range candidates {
		cid := childID(rootID, uint8(cand.idx), octreeK)
		childBounds := splitOctant(t.rootBounds, center, cand.idx)
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

func (t *Octree[T]) raycastNode(id nodeID, depth int, bounds AABB3, count int32, ray Ray3, remaining float32, hasMax bool, intersecter Intersecter3[T]) (rayResult3[T], bool) {
	leaf := int(count) <= t.objectsPerNode || depth == t.maxDepth
	if leaf {
		bestT := float32(math.MaxFloat32)
		var best rayResult3[T]
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
			best = rayResult3[T]{payload: rec.Payload, point: ray.At(tt)}
			found = true
		}
		return best, found
	}

	center := bounds.Center()
	candidates := make([]octRayCandidate, 0, octreeC)
	for c := 0; c < octreeC; c++ {
		cid := childID(id, uint8(c), octreeK)
		if _, exists := t.nodes[cid]; !exists {
			continue
		}
		childBounds := splitOctant(bounds, center, c)
		hit, tEnter, _ := ray.IntersectAABB(childBounds)
		if !hit || (hasMax && tEnter > remaining) {
			continue
		}
		candidates = append(candidates, octRayCandidate{c, tEnter})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].tEnter < candidates[j].tEnter })

	for _, cand := range candidates {
		cid := childID(id, uint8(cand.idx), octreeK)
		childBounds := splitOctant(bounds, center, cand.idx)
		advance := max32(cand.tEnter, 0)
		childRay := ray.Reorigin(ray.At(advance))
		childRemaining := remaining - advance
		childCount := t.nodes[cid]
		if res, found := t.raycastNode(cid, depth+1, childBounds, childCount, childRay, childRemaining, hasMax, intersecter); found {
			return res, true
		}
	}
	return rayResult3[T]{}, false
}
