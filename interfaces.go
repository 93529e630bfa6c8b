package sparsetree

// Intersecter3 is the caller-supplied 3-D raycast extension point. It
// decides what "intersects" means — often AABB first, then exact
// geometry — and returns the ray parameter t of the hit.
type Intersecter3[T any] interface {
	Intersect(ray Ray3, payload T, bounds AABB3) (hit bool, t float32)
}

// RangeVisitor3 receives every object whose leaf cell overlaps a
// range query. cont signals whether traversal should continue; once
// false, traversal unwinds and stops at the next opportunity. Objects
// spanning multiple leaves are delivered once per leaf — the visitor
// must deduplicate if uniqueness matters.
type RangeVisitor3[T any] interface {
	Visit(payload T, bounds AABB3, query AABB3) (cont bool)
}

// NearestVisitor3 receives stored payloads in ascending order of
// cell-derived distance during a nearest-neighbor search.
type NearestVisitor3[T any] interface {
	Visit(payload T) (cont bool)
}

// DistanceProvider3 computes the true distance² between point and a
// stored object, used to refine cell-distance lower bounds into
// per-object priority queue entries.
type DistanceProvider3[T any] interface {
	DistanceSquared(point Vec3, payload T, bounds AABB3) float32
}

// Intersecter2, RangeVisitor2, NearestVisitor2, and DistanceProvider2
// are the 2-D counterparts of the above.
type Intersecter2[T any] interface {
	Intersect(ray Ray2, payload T, bounds AABB2) (hit bool, t float32)
}

type RangeVisitor2[T any] interface {
	Visit(payload T, bounds AABB2, query AABB2) (cont bool)
}

type NearestVisitor2[T any] interface {
	Visit(payload T) (cont bool)
}

type DistanceProvider2[T any] interface {
	DistanceSquared(point Vec2, payload T, bounds AABB2) float32
}
