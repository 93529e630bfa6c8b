package sparsetree

// AABB2 is an axis-aligned bounding box in 2-space. See AABB3 for the
// validity invariant.
type AABB2 struct {
	Min, Max Vec2
}

func NewAABB2(min, max Vec2) AABB2 {
	return AABB2{Min: min, Max: max}
}

func NewAABB2FromPoints(points []Vec2) AABB2 {
	if len(points) == 0 {
		return AABB2{}
	}
	b := AABB2{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = min32(b.Min.X, p.X)
		b.Min.Y = min32(b.Min.Y, p.Y)
		b.Max.X = max32(b.Max.X, p.X)
		b.Max.Y = max32(b.Max.Y, p.Y)
	}
	return b
}

func (b AABB2) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y
}

func (b AABB2) Center() Vec2 {
	return Vec2{X: (b.Min.X + b.Max.X) * 0.5, Y: (b.Min.Y + b.Max.Y) * 0.5}
}

func (b AABB2) Size() Vec2 {
	return Vec2{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y}
}

func (b AABB2) Overlaps(o AABB2) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

func (b AABB2) ContainsPoint(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b AABB2) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: clamp32(p.X, b.Min.X, b.Max.X),
		Y: clamp32(p.Y, b.Min.Y, b.Max.Y),
	}
}

func (b AABB2) DistanceSquared(p Vec2) float32 {
	c := b.ClosestPoint(p)
	d := p.Sub(c)
	return d.Dot(d)
}

func (b AABB2) Merge(o AABB2) AABB2 {
	return AABB2{
		Min: Vec2{min32(b.Min.X, o.Min.X), min32(b.Min.Y, o.Min.Y)},
		Max: Vec2{max32(b.Max.X, o.Max.X), max32(b.Max.Y, o.Max.Y)},
	}
}

func (b AABB2) Expand(amount float32) AABB2 {
	return AABB2{
		Min: Vec2{b.Min.X - amount, b.Min.Y - amount},
		Max: Vec2{b.Max.X + amount, b.Max.Y + amount},
	}
}

// splitQuadrant returns the bounds of child quadrant idx (bit0=x,
// bit1=y; 0 = negative half, 1 = positive half).
func splitQuadrant(parent AABB2, center Vec2, idx int) AABB2 {
	min, max := parent.Min, parent.Max
	if idx&1 != 0 {
		min.X = center.X
	} else {
		max.X = center.X
	}
	if idx&2 != 0 {
		min.Y = center.Y
	} else {
		max.Y = center.Y
	}
	return AABB2{Min: min, Max: max}
}
