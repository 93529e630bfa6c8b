package sparsetree

// Ray2 is the 2-D counterpart of Ray3. See Ray3 for field semantics.
type Ray2 struct {
	Origin, Dir, InvDir Vec2
}

func NewRay2(origin, dir Vec2) Ray2 {
	return Ray2{
		Origin: origin,
		Dir:    dir,
		InvDir: Vec2{X: 1 / dir.X, Y: 1 / dir.Y},
	}
}

func (r Ray2) Reorigin(newOrigin Vec2) Ray2 {
	return Ray2{Origin: newOrigin, Dir: r.Dir, InvDir: r.InvDir}
}

func (r Ray2) At(t float32) Vec2 {
	return r.Origin.Add(r.Dir.Scale(t))
}

func (r Ray2) IntersectAABB(b AABB2) (hit bool, tEnter, tExit float32) {
	t1x := (b.Min.X - r.Origin.X) * r.InvDir.X
	t2x := (b.Max.X - r.Origin.X) * r.InvDir.X
	tMin, tMax := min32(t1x, t2x), max32(t1x, t2x)

	t1y := (b.Min.Y - r.Origin.Y) * r.InvDir.Y
	t2y := (b.Max.Y - r.Origin.Y) * r.InvDir.Y
	tMin = max32(tMin, min32(t1y, t2y))
	tMax = min32(tMax, max32(t1y, t2y))

	tEnter = max32(0, tMin)
	tExit = tMax
	return tExit >= tEnter, tEnter, tExit
}
