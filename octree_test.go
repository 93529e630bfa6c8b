package sparsetree

import (
	"math"
	"testing"
)

// pointPayload is a minimal stored value used across the octree
// scenario tests: an identifier plus the point it was inserted at.
type pointPayload struct {
	id int
	p  Vec3
}

// pointIntersecter runs the slab test against each stored object's
// bounds (a zero-size box for inserted points) and reports the midpoint
// of the entry/exit interval as the hit parameter.
type pointIntersecter struct{ radius float32 }

func (pi pointIntersecter) Intersect(ray Ray3, payload pointPayload, bounds AABB3) (bool, float32) {
	hit, tEnter, tExit := ray.IntersectAABB(bounds)
	if !hit {
		return false, 0
	}
	return true, max32(tEnter, 0) + (tExit-tEnter)/2
}

type pointDistance struct{}

func (pointDistance) DistanceSquared(point Vec3, payload pointPayload, bounds AABB3) float32 {
	d := payload.p.Sub(point)
	return d.Dot(d)
}

type collectVisitor struct {
	got []pointPayload
	max int // 0 means unlimited
}

func (v *collectVisitor) Visit(payload pointPayload) bool {
	v.got = append(v.got, payload)
	if v.max > 0 && len(v.got) >= v.max {
		return false
	}
	return true
}

// rangeCollector keeps only objects whose own bounds overlap the query:
// Range filters at leaf-cell granularity, so the object-level check is
// the visitor's job.
type rangeCollector struct {
	got []pointPayload
}

func (v *rangeCollector) Visit(payload pointPayload, bounds AABB3, query AABB3) bool {
	if bounds.Overlaps(query) {
		v.got = append(v.got, payload)
	}
	return true
}

func newTestOctree(t *testing.T) *Octree[pointPayload] {
	t.Helper()
	tree, err := NewOctree[pointPayload](NewAABB3(Vec3{-1, -1, -1}, Vec3{1, 1, 1}), 2, 8, 0)
	if err != nil {
		t.Fatalf("NewOctree: %v", err)
	}
	return tree
}

func TestOctreeInsertPointsRaycast(t *testing.T) {
	tree := newTestOctree(t)
	pts := []Vec3{{0.5, 0.5, 0.5}, {-0.5, -0.5, -0.5}, {0.9, 0.9, 0.9}}
	for i, p := range pts {
		tree.InsertPoint(pointPayload{id: i, p: p}, p)
	}
	if tree.Len() != len(pts) {
		t.Fatalf("Len() = %d, want %d", tree.Len(), len(pts))
	}

	ray := NewRay3(Vec3{5, 5, 5}, Vec3{-1, -1, -1})
	payload, _, ok := tree.Raycast(ray, pointIntersecter{}, 0)
	if !ok {
		t.Fatal("expected a hit")
	}
	if payload.id != 2 {
		t.Errorf("closest point along the ray should be id 2 (0.9,0.9,0.9), got id %d", payload.id)
	}
}

func TestOctreeRaycastMiss(t *testing.T) {
	tree := newTestOctree(t)
	tree.InsertPoint(pointPayload{id: 0, p: Vec3{0.5, 0.5, 0.5}}, Vec3{0.5, 0.5, 0.5})

	ray := NewRay3(Vec3{5, 5, 5}, Vec3{1, 0, 0})
	_, _, ok := tree.Raycast(ray, pointIntersecter{}, 0)
	if ok {
		t.Error("ray pointing away from every stored object should miss")
	}
}

func TestOctreeRangeQuery(t *testing.T) {
	tree := newTestOctree(t)
	inside := []Vec3{{0.1, 0.1, 0.1}, {-0.1, -0.1, -0.1}, {0.2, -0.2, 0.1}}
	outside := Vec3{0.95, 0.95, 0.95}
	for i, p := range inside {
		tree.InsertPoint(pointPayload{id: i, p: p}, p)
	}
	tree.InsertPoint(pointPayload{id: 99, p: outside}, outside)

	var v rangeCollector
	tree.Range(NewAABB3(Vec3{-0.3, -0.3, -0.3}, Vec3{0.3, 0.3, 0.3}), &v)

	seen := map[int]bool{}
	for _, p := range v.got {
		seen[p.id] = true
	}
	for i := range inside {
		if !seen[i] {
			t.Errorf("range query missed point id %d", i)
		}
	}
	if seen[99] {
		t.Error("range query returned a point outside the query box")
	}
}

func TestOctreeNearestWithCutoff(t *testing.T) {
	tree := newTestOctree(t)
	// 3x3x3 grid inside [-1,1]^3.
	n := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				p := Vec3{float32(x) * 0.3, float32(y) * 0.3, float32(z) * 0.3}
				tree.InsertPoint(pointPayload{id: n, p: p}, p)
				n++
			}
		}
	}

	var v collectVisitor
	v.max = 1
	tree.Nearest(Vec3{0, 0, 0}, 10, &v, pointDistance{})
	if len(v.got) != 1 {
		t.Fatalf("expected exactly one nearest result, got %d", len(v.got))
	}
	if v.got[0].p != (Vec3{0, 0, 0}) {
		t.Errorf("nearest to origin should be the grid point at the origin, got %+v", v.got[0].p)
	}

	var tight collectVisitor
	tree.Nearest(Vec3{0, 0, 0}, 0.01, &tight, pointDistance{})
	if len(tight.got) != 1 {
		t.Errorf("tiny cutoff should only match the coincident point, got %d matches", len(tight.got))
	}
}

func TestOctreeObjectSpanningMultipleCells(t *testing.T) {
	tree := newTestOctree(t)
	spanning := NewAABB3(Vec3{-0.1, -0.1, -0.1}, Vec3{0.1, 0.1, 0.1})
	tree.Insert(pointPayload{id: 0, p: Vec3{0, 0, 0}}, spanning)

	var v rangeCollector
	tree.Range(NewAABB3(Vec3{-1, -1, -1}, Vec3{1, 1, 1}), &v)

	if len(v.got) < 2 {
		t.Errorf("object straddling the root center should be replicated into multiple octants, got %d hits", len(v.got))
	}
}

func TestOctreeClearThenReinsert(t *testing.T) {
	tree := newTestOctree(t)
	for i := 0; i < 1000; i++ {
		p := Vec3{
			float32(math.Mod(float64(i)*0.618, 2)) - 1,
			float32(math.Mod(float64(i)*0.381, 2)) - 1,
			float32(math.Mod(float64(i)*0.217, 2)) - 1,
		}
		tree.InsertPoint(pointPayload{id: i, p: p}, p)
	}
	if tree.Len() != 1000 {
		t.Fatalf("Len() = %d before clear, want 1000", tree.Len())
	}

	tree.Clear()
	if tree.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", tree.Len())
	}

	tree.InsertPoint(pointPayload{id: 0, p: Vec3{0, 0, 0}}, Vec3{0, 0, 0})
	if tree.Len() != 1 {
		t.Errorf("Len() = %d after reinsert, want 1", tree.Len())
	}
}

func TestOctreeObjectsPerNodeThreshold(t *testing.T) {
	tree := newTestOctree(t)
	// All points identical so they all land in the same leaf bucket:
	// exactly objectsPerNode (2) should not trigger subdivision, the
	// third insertion should.
	same := Vec3{0.9, 0.9, 0.9}
	tree.InsertPoint(pointPayload{id: 0, p: same}, same)
	tree.InsertPoint(pointPayload{id: 1, p: same}, same)

	leafID := childID(rootID, pointToOctant(same, tree.rootBounds.Center()), octreeK)
	if _, exists := tree.objects[leafID]; !exists {
		t.Fatal("expected bucket at two objects, tree not yet subdivided")
	}

	tree.InsertPoint(pointPayload{id: 2, p: same}, same)
	// Once over threshold, the bucket is redistributed into children
	// (and, since all points are identical, straight back into a
	// single grandchild bucket) so the original leaf's own bucket is
	// gone even though its occupancy count remains set.
	if _, exists := tree.objects[leafID]; exists {
		t.Error("leaf bucket should have been cleared by subdivide")
	}
	if tree.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tree.Len())
	}
}

func TestOctreeInsertAtMaxDepth(t *testing.T) {
	tree, err := NewOctree[pointPayload](NewAABB3(Vec3{-1, -1, -1}, Vec3{1, 1, 1}), 1, 2, 0)
	if err != nil {
		t.Fatalf("NewOctree: %v", err)
	}
	same := Vec3{0.9, 0.9, 0.9}
	for i := 0; i < 10; i++ {
		tree.InsertPoint(pointPayload{id: i, p: same}, same)
	}
	if tree.Len() != 10 {
		t.Errorf("Len() = %d, want 10 (max-depth leaf must accept over-threshold objects)", tree.Len())
	}
}

func TestOctreeConstructorValidation(t *testing.T) {
	t.Run("InvalidBounds", func(t *testing.T) {
		_, err := NewOctree[int](NewAABB3(Vec3{1, 1, 1}, Vec3{-1, -1, -1}), 1, 4, 0)
		if err == nil {
			t.Error("expected ErrInvalidBounds")
		}
	})
	t.Run("ObjectsPerNodeTooSmall", func(t *testing.T) {
		_, err := NewOctree[int](NewAABB3(Vec3{-1, -1, -1}, Vec3{1, 1, 1}), 0, 4, 0)
		if err == nil {
			t.Error("expected ErrObjectsPerNodeOutOfRange")
		}
	})
	t.Run("MaxDepthTooLarge", func(t *testing.T) {
		_, err := NewOctree[int](NewAABB3(Vec3{-1, -1, -1}, Vec3{1, 1, 1}), 1, 999, 0)
		if err == nil {
			t.Error("expected ErrMaxDepthOutOfRange")
		}
	})
}

func TestOctreeCopyFrom(t *testing.T) {
	src := newTestOctree(t)
	src.InsertPoint(pointPayload{id: 0, p: Vec3{0.1, 0.1, 0.1}}, Vec3{0.1, 0.1, 0.1})

	dst := newTestOctree(t)
	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if dst.Len() != src.Len() {
		t.Errorf("dst.Len() = %d, want %d", dst.Len(), src.Len())
	}

	other, _ := NewOctree[pointPayload](NewAABB3(Vec3{0, 0, 0}, Vec3{5, 5, 5}), 2, 8, 0)
	if err := dst.CopyFrom(other); err != ErrIncompatibleCopySource {
		t.Errorf("CopyFrom with mismatched bounds = %v, want ErrIncompatibleCopySource", err)
	}
}
