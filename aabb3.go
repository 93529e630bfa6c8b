package sparsetree

// AABB3 is an axis-aligned bounding box in 3-space. Min must be
// component-wise <= Max; the tree validates this only at
// construction time (the root bounds), per the package's ownership
// invariants — callers are responsible for building valid AABBs
// everywhere else.
type AABB3 struct {
	Min, Max Vec3
}

// NewAABB3 builds an AABB3 from min/max corners.
func NewAABB3(min, max Vec3) AABB3 {
	return AABB3{Min: min, Max: max}
}

// NewAABB3FromPoints returns the smallest AABB3 enclosing every point.
// Returns the zero AABB3 if points is empty.
func NewAABB3FromPoints(points []Vec3) AABB3 {
	if len(points) == 0 {
		return AABB3{}
	}
	b := AABB3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = min32(b.Min.X, p.X)
		b.Min.Y = min32(b.Min.Y, p.Y)
		b.Min.Z = min32(b.Min.Z, p.Z)
		b.Max.X = max32(b.Max.X, p.X)
		b.Max.Y = max32(b.Max.Y, p.Y)
		b.Max.Z = max32(b.Max.Z, p.Z)
	}
	return b
}

func (b AABB3) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

func (b AABB3) Center() Vec3 {
	return Vec3{
		X: (b.Min.X + b.Max.X) * 0.5,
		Y: (b.Min.Y + b.Max.Y) * 0.5,
		Z: (b.Min.Z + b.Max.Z) * 0.5,
	}
}

func (b AABB3) Size() Vec3 {
	return Vec3{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y, b.Max.Z - b.Min.Z}
}

// Overlaps reports whether b and o share any volume, inclusive of
// touching faces.
func (b AABB3) Overlaps(o AABB3) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

func (b AABB3) ContainsPoint(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

func (b AABB3) ClosestPoint(p Vec3) Vec3 {
	return Vec3{
		X: clamp32(p.X, b.Min.X, b.Max.X),
		Y: clamp32(p.Y, b.Min.Y, b.Max.Y),
		Z: clamp32(p.Z, b.Min.Z, b.Max.Z),
	}
}

func (b AABB3) DistanceSquared(p Vec3) float32 {
	c := b.ClosestPoint(p)
	d := p.Sub(c)
	return d.Dot(d)
}

func (b AABB3) Merge(o AABB3) AABB3 {
	return AABB3{
		Min: Vec3{min32(b.Min.X, o.Min.X), min32(b.Min.Y, o.Min.Y), min32(b.Min.Z, o.Min.Z)},
		Max: Vec3{max32(b.Max.X, o.Max.X), max32(b.Max.Y, o.Max.Y), max32(b.Max.Z, o.Max.Z)},
	}
}

func (b AABB3) Expand(amount float32) AABB3 {
	return AABB3{
		Min: Vec3{b.Min.X - amount, b.Min.Y - amount, b.Min.Z - amount},
		Max: Vec3{b.Max.X + amount, b.Max.Y + amount, b.Max.Z + amount},
	}
}

// splitOctant returns the bounds of child octant idx (bit0=x, bit1=y,
// bit2=z; 0 = negative half, 1 = positive half) given the parent
// bounds and its precomputed center.
func splitOctant(parent AABB3, center Vec3, idx int) AABB3 {
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
	if idx&4 != 0 {
		min.Z = center.Z
	} else {
		max.Z = center.Z
	}
	return AABB3{Min: min, Max: max}
}
