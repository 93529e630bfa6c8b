package sparsetree

// Ray3 bundles a ray's origin, direction, and the component-wise
// reciprocal direction used by the slab method. InvDir may hold ±Inf
// when a direction component is exactly zero; IEEE-754 semantics make
// the slab test below handle that correctly without a branch.
type Ray3 struct {
	Origin, Dir, InvDir Vec3
}

// NewRay3 precomputes InvDir from dir. dir is not required to be
// normalized; ray-parameter units are then in units of dir's length.
func NewRay3(origin, dir Vec3) Ray3 {
	return Ray3{
		Origin: origin,
		Dir:    dir,
		InvDir: Vec3{X: 1 / dir.X, Y: 1 / dir.Y, Z: 1 / dir.Z},
	}
}

// Reorigin returns a ray with the same direction and InvDir, shifted
// to a new origin. Used to transpose the ray to the entry point of a
// node during traversal without recomputing InvDir.
func (r Ray3) Reorigin(newOrigin Vec3) Ray3 {
	return Ray3{Origin: newOrigin, Dir: r.Dir, InvDir: r.InvDir}
}

// At returns the point at ray parameter t.
func (r Ray3) At(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectAABB performs the slab-method ray/AABB test. hit is true
// iff tExit >= tEnter; tEnter is clamped to 0 (a ray starting inside
// the box enters at t=0). A ray component exactly on a face may
// report a false positive; this is accepted for performance, as
// documented by the package's callers (the object-level intersecter
// is the final authority).
func (r Ray3) IntersectAABB(b AABB3) (hit bool, tEnter, tExit float32) {
	t1x := (b.Min.X - r.Origin.X) * r.InvDir.X
	t2x := (b.Max.X - r.Origin.X) * r.InvDir.X
	tMin, tMax := min32(t1x, t2x), max32(t1x, t2x)

	t1y := (b.Min.Y - r.Origin.Y) * r.InvDir.Y
	t2y := (b.Max.Y - r.Origin.Y) * r.InvDir.Y
	tMin = max32(tMin, min32(t1y, t2y))
	tMax = min32(tMax, max32(t1y, t2y))

	t1z := (b.Min.Z - r.Origin.Z) * r.InvDir.Z
	t2z := (b.Max.Z - r.Origin.Z) * r.InvDir.Z
	tMin = max32(tMin, min32(t1z, t2z))
	tMax = min32(tMax, max32(t1z, t2z))

	tEnter = max32(0, tMin)
	tExit = tMax
	return tExit >= tEnter, tEnter, tExit
}
